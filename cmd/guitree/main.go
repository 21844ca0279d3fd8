package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm/guitree"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "vet":
		if err := runVet(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "refs":
		if err := runRefs(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("guitree version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`guitree - declarative GUI structure tooling

Usage:
  guitree <command> [arguments]

Commands:
  vet <files>           Validate structure description files (.json/.yaml)
  refs <files>          List the ref paths a structure file declares
  version               Print version
  help                  Show this help

Vet checks what the builder would reject or silently mis-handle: nodes
declaring both handlers and actions, duplicate ref paths, tab pairs
missing a side, and missing constructor kinds.

Examples:
  guitree vet ui/settings.yaml            Validate one file
  guitree vet ui/*.yaml                   Validate several
  guitree refs ui/settings.yaml           Show the reference table shape`)
}

func runVet(args []string) error {
	if len(args) == 0 {
		return errors.New("vet: no files given")
	}
	for _, path := range args {
		structures, err := loadStructures(path)
		if err != nil {
			return err
		}
		if err := guitree.ValidateAll(structures); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: ok (%d top-level structures)\n", path, len(structures))
	}
	return nil
}

func runRefs(args []string) error {
	if len(args) == 0 {
		return errors.New("refs: no files given")
	}
	for _, path := range args {
		structures, err := loadStructures(path)
		if err != nil {
			return err
		}
		for _, s := range structures {
			printRefs(s)
		}
	}
	return nil
}

func printRefs(s *guitree.Structure) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		fmt.Printf("%s\t%s\n", s.Ref, s.Kind)
	}
	for _, child := range s.Children {
		printRefs(child)
	}
	for _, tp := range s.Tabs {
		printRefs(tp.Tab)
		printRefs(tp.Content)
	}
}

// loadStructures reads a structure description file. The top level may be
// either a list of structures or a single one.
func loadStructures(path string) ([]*guitree.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	unmarshal := json.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
	default:
		return nil, fmt.Errorf("%s: unsupported extension (want .json, .yaml, or .yml)", path)
	}

	var list []*guitree.Structure
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single guitree.Structure
	if err := unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []*guitree.Structure{&single}, nil
}
