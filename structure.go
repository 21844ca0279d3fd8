package guitree

import "fmt"

// Structure describes one element subtree to build declaratively.
//
// A Structure is pure data: it carries constructor fields, property
// mutations, routing tags, a reference path, and nested child/tab
// structures. Because it contains no callables it can be loaded from JSON
// or YAML files (the guitree CLI lints such files before they reach a
// host).
//
// Routing is declared through three fields that all write the element's
// metadata namespace:
//
//   - Tags replaces the entire namespace wholesale.
//   - Handlers merges {category: handlerName} under the routing key.
//   - Actions merges {category: payload} under the same routing key.
//
// Handlers and Actions share one routing slot, so declaring both on the
// same node is rejected at build time with [ErrRoutingConflict].
type Structure struct {
	// Kind selects the host constructor for this element.
	Kind string `json:"kind" yaml:"kind"`

	// Fields are the constructor fields passed to [Host.Create].
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`

	// StyleMods are per-name style assignments, order-independent.
	StyleMods map[string]any `json:"style_mods,omitempty" yaml:"style_mods,omitempty"`

	// ElemMods are per-name element property assignments, order-independent.
	ElemMods map[string]any `json:"elem_mods,omitempty" yaml:"elem_mods,omitempty"`

	// Tags replaces the element's whole metadata namespace.
	Tags map[string]any `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Handlers maps event categories to registered handler names.
	Handlers map[string]string `json:"handlers,omitempty" yaml:"handlers,omitempty"`

	// Actions maps event categories to raw payloads returned by action mode.
	Actions map[string]any `json:"actions,omitempty" yaml:"actions,omitempty"`

	// Ref is a dotted path under which the built element is stored in the
	// returned [Refs] table, e.g. "dialog.buttons.save".
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`

	// Children are built under this element in order.
	Children []*Structure `json:"children,omitempty" yaml:"children,omitempty"`

	// Tabs are tab/content pairs built and registered in declaration order.
	Tabs []TabStructure `json:"tabs,omitempty" yaml:"tabs,omitempty"`
}

// TabStructure describes one tab/content pair; both subtrees are parented
// to the owning element.
type TabStructure struct {
	Tab     *Structure `json:"tab" yaml:"tab"`
	Content *Structure `json:"content" yaml:"content"`
}

// Update describes a partial mutation of an existing live tree.
//
// It is the [Structure] shape minus constructor fields and routing:
// tag/handler/action mutation is unsupported at this entry point, since
// reshaping routing on a live tree would silently desynchronize it from
// the handlers registered for it. Recursion is by structural position -
// child and tab entries are matched to the live tree by index, and any
// entry without a live counterpart is skipped without error.
type Update struct {
	// Callback, if set, is invoked with the live element before any other
	// mutation in this Update.
	Callback func(Element) `json:"-" yaml:"-"`

	StyleMods map[string]any `json:"style_mods,omitempty" yaml:"style_mods,omitempty"`
	ElemMods  map[string]any `json:"elem_mods,omitempty" yaml:"elem_mods,omitempty"`

	// Children are matched against live children by index; nil entries and
	// indices beyond the live child count are no-ops.
	Children []*Update `json:"children,omitempty" yaml:"children,omitempty"`

	// Tabs are matched against live tab/content pairs by index.
	Tabs []TabUpdate `json:"tabs,omitempty" yaml:"tabs,omitempty"`
}

// TabUpdate describes updates for one live tab/content pair. Either side
// may be nil to leave it untouched.
type TabUpdate struct {
	Tab     *Update `json:"tab,omitempty" yaml:"tab,omitempty"`
	Content *Update `json:"content,omitempty" yaml:"content,omitempty"`
}

// Validate checks a structure tree for problems the builder would either
// reject or silently mis-handle: handler/action conflicts, tab pairs with a
// missing side, empty constructor kinds, and duplicate ref paths. Returned
// errors wrap [ErrBadStructure] or [ErrRoutingConflict] and name the
// offending node by position, e.g. "children[2].tabs[0].tab".
func (s *Structure) Validate() error {
	seen := make(map[string]string)
	return s.validate("root", seen)
}

// ValidateAll validates an ordered list of structures as one build call,
// catching ref collisions across sibling subtrees.
func ValidateAll(structures []*Structure) error {
	seen := make(map[string]string)
	for i, s := range structures {
		if s == nil {
			continue
		}
		if err := s.validate(fmt.Sprintf("[%d]", i), seen); err != nil {
			return err
		}
	}
	return nil
}

func (s *Structure) validate(path string, seenRefs map[string]string) error {
	if s.Kind == "" {
		return fmt.Errorf("%w: %s: missing kind", ErrBadStructure, path)
	}
	if len(s.Handlers) > 0 && len(s.Actions) > 0 {
		return fmt.Errorf("%w: %s", ErrRoutingConflict, path)
	}
	if s.Ref != "" {
		if prev, ok := seenRefs[s.Ref]; ok {
			return fmt.Errorf("%w: %s: ref %q already used at %s", ErrBadStructure, path, s.Ref, prev)
		}
		seenRefs[s.Ref] = path
	}
	for i, child := range s.Children {
		if child == nil {
			continue
		}
		if err := child.validate(fmt.Sprintf("%s.children[%d]", path, i), seenRefs); err != nil {
			return err
		}
	}
	for i, tp := range s.Tabs {
		tabPath := fmt.Sprintf("%s.tabs[%d]", path, i)
		if tp.Tab == nil || tp.Content == nil {
			return fmt.Errorf("%w: %s: tab pair missing a side", ErrBadStructure, tabPath)
		}
		if err := tp.Tab.validate(tabPath+".tab", seenRefs); err != nil {
			return err
		}
		if err := tp.Content.validate(tabPath+".content", seenRefs); err != nil {
			return err
		}
	}
	return nil
}
