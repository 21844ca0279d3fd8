package guitree

import (
	"errors"
	"reflect"
	"testing"
)

// buildLiveTree constructs a small live tree: a panel with one child button
// and one tab pair.
func buildLiveTree(t *testing.T) (*Kit, Refs) {
	t.Helper()
	kit, _, _ := newTestKit()
	root := &TestElement{ElemKind: "root"}

	refs, err := kit.Build(root, []*Structure{{
		Kind: "panel",
		Ref:  "panel",
		Children: []*Structure{
			{Kind: "button", Ref: "button"},
		},
		Tabs: []TabStructure{{
			Tab:     &Structure{Kind: "tab", Ref: "tab"},
			Content: &Structure{Kind: "page", Ref: "page"},
		}},
	}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return kit, refs
}

func TestUpdateAppliesMods(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")

	err := kit.Update(panel, &Update{
		StyleMods: map[string]any{"color": "blue"},
		ElemMods:  map[string]any{"visible": false},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	e := panel.(*TestElement)
	if got := e.Styles["color"]; got != "blue" {
		t.Errorf("style color = %v, want blue", got)
	}
	if got := e.Props["visible"]; got != false {
		t.Errorf("prop visible = %v, want false", got)
	}
}

func TestUpdateCallbackRunsFirst(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")

	var sawStyle any
	err := kit.Update(panel, &Update{
		Callback: func(e Element) {
			// The callback must observe the element before this
			// Update's own mutations.
			sawStyle = e.(*TestElement).Styles["color"]
		},
		StyleMods: map[string]any{"color": "blue"},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if sawStyle != nil {
		t.Errorf("callback saw color = %v, want unset", sawStyle)
	}
}

func TestUpdateChildrenByIndex(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")
	button, _ := refs.Element("button")

	// Three entries against one live child: index 0 patches, 1-2 are
	// silent no-ops. A nil entry is skipped too.
	err := kit.Update(panel, &Update{
		Children: []*Update{
			{ElemMods: map[string]any{"label": "patched"}},
			nil,
			{ElemMods: map[string]any{"label": "never"}},
		},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got := button.(*TestElement).Props["label"]; got != "patched" {
		t.Errorf("child label = %v, want patched", got)
	}
}

func TestUpdateTabsByIndex(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")
	tab, _ := refs.Element("tab")
	page, _ := refs.Element("page")

	err := kit.Update(panel, &Update{
		Tabs: []TabUpdate{
			{
				Tab:     &Update{ElemMods: map[string]any{"title": "General"}},
				Content: &Update{ElemMods: map[string]any{"loaded": true}},
			},
			{Tab: &Update{ElemMods: map[string]any{"title": "never"}}}, // out of range
		},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got := tab.(*TestElement).Props["title"]; got != "General" {
		t.Errorf("tab title = %v, want General", got)
	}
	if got := page.(*TestElement).Props["loaded"]; got != true {
		t.Errorf("page loaded = %v, want true", got)
	}
}

func TestUpdateTabSideOmitted(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")
	tab, _ := refs.Element("tab")

	err := kit.Update(panel, &Update{
		Tabs: []TabUpdate{{Content: &Update{ElemMods: map[string]any{"loaded": true}}}},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if props := tab.(*TestElement).Props; len(props) != 0 {
		t.Errorf("tab props = %#v, want untouched", props)
	}
}

func TestUpdateNilArguments(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")

	if err := kit.Update(nil, &Update{}); err != nil {
		t.Errorf("Update(nil, u) error: %v", err)
	}
	if err := kit.Update(panel, nil); err != nil {
		t.Errorf("Update(e, nil) error: %v", err)
	}
}

func TestUpdateHostFailurePropagates(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")
	boom := errors.New("host refused")
	panel.(*TestElement).FieldErr = boom

	err := kit.Update(panel, &Update{ElemMods: map[string]any{"x": 1}})
	if !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, want host error unmodified", err)
	}
}

func TestUpdateLeavesTagsAlone(t *testing.T) {
	kit, refs := buildLiveTree(t)
	panel, _ := refs.Element("panel")
	if err := kit.SetTags(panel, map[string]any{"routing": map[string]any{"click": "save"}}); err != nil {
		t.Fatalf("SetTags() error: %v", err)
	}

	before := kit.Tags(panel)
	err := kit.Update(panel, &Update{StyleMods: map[string]any{"color": "blue"}})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if after := kit.Tags(panel); !reflect.DeepEqual(after, before) {
		t.Errorf("Update() changed tags: %#v -> %#v", before, after)
	}
}
