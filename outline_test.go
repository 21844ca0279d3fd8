package guitree

import (
	"context"
	"strings"
	"testing"
)

func TestOutline(t *testing.T) {
	kit, _, _ := newTestKit()
	root := &TestElement{ElemKind: "window"}

	_, err := kit.Build(root, []*Structure{{
		Kind:     "panel",
		Tags:     map[string]any{"note": "<script>"},
		Children: []*Structure{{Kind: "button"}},
		Tabs: []TabStructure{{
			Tab:     &Structure{Kind: "tab"},
			Content: &Structure{Kind: "page"},
		}},
	}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var sb strings.Builder
	if err := kit.Outline(root).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		`<span class="kind">window</span>`,
		`<span class="kind">panel</span>`,
		`<span class="kind">button</span>`,
		`<ul class="tabs">`,
		`&lt;script&gt;`, // tag values are escaped
	} {
		if !strings.Contains(html, want) {
			t.Errorf("outline missing %q in:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Error("outline contains unescaped tag value")
	}
}

func TestOutlineNilElement(t *testing.T) {
	kit, _, _ := newTestKit()
	var sb strings.Builder
	if err := kit.Outline(nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := sb.String(); got != `<ul class="guitree-outline"></ul>` {
		t.Errorf("Render() = %q, want empty outline", got)
	}
}
