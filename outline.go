package guitree

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Outline renders a debug HTML outline of the live tree rooted at e: one
// nested list entry per element showing its kind (when the host element
// implements [Kinder]) and this Kit's namespace content. Useful as a
// devtools-style dump when diagnosing routing or drift problems; it never
// mutates the tree.
func (k *Kit) Outline(e Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul class="guitree-outline">`); err != nil {
			return err
		}
		if err := k.writeOutline(w, e); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func (k *Kit) writeOutline(w io.Writer, e Element) error {
	if e == nil {
		return nil
	}

	kind := "element"
	if kk, ok := e.(Kinder); ok {
		kind = kk.Kind()
	}
	if _, err := fmt.Fprintf(w, `<li><span class="kind">%s</span>`, html.EscapeString(kind)); err != nil {
		return err
	}

	if tags := k.codec.Get(e); len(tags) > 0 {
		if _, err := fmt.Fprintf(w, ` <code>%s</code>`, html.EscapeString(tagsJSON(tags))); err != nil {
			return err
		}
	}

	if children := e.Children(); len(children) > 0 {
		if _, err := io.WriteString(w, `<ul>`); err != nil {
			return err
		}
		for _, child := range children {
			if err := k.writeOutline(w, child); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
	}

	if tabs := e.Tabs(); len(tabs) > 0 {
		if _, err := io.WriteString(w, `<ul class="tabs">`); err != nil {
			return err
		}
		for _, tp := range tabs {
			if _, err := io.WriteString(w, `<li class="tab-pair"><ul>`); err != nil {
				return err
			}
			if err := k.writeOutline(w, tp.Tab); err != nil {
				return err
			}
			if err := k.writeOutline(w, tp.Content); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</ul></li>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</li>`)
	return err
}

// tagsJSON renders namespace content as compact JSON. Escaping is left to
// the HTML layer, so the encoder's own HTML escaping is off.
func tagsJSON(tags map[string]any) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tags); err != nil {
		return fmt.Sprintf("%v", tags)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
