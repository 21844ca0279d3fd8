package guitree

import (
	"errors"
	"reflect"
	"testing"
)

func newTaggedElement(t *testing.T, c Codec, tags map[string]any) *TestElement {
	t.Helper()
	e := &TestElement{}
	if err := c.Set(e, tags); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	return e
}

func TestCodecSetGet(t *testing.T) {
	c := Codec{}
	want := map[string]any{"theme": "dark", "routing": map[string]any{"click": "save"}}
	e := newTaggedElement(t, c, want)

	if got := c.Get(e); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %#v, want %#v", got, want)
	}
}

func TestCodecGetAbsent(t *testing.T) {
	c := Codec{}

	tests := []struct {
		name string
		elem Element
	}{
		{"nil element", nil},
		{"empty blob", &TestElement{}},
		{"undefined blob", &TestElement{Meta: undefinedBlob}},
		{"foreign namespace only", newTaggedElement(t, Codec{Namespace: "other"}, map[string]any{"a": "1"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Get(tt.elem)
			if len(got) != 0 {
				t.Errorf("Get() = %#v, want empty map", got)
			}
		})
	}
}

func TestCodecDelete(t *testing.T) {
	c := Codec{}
	e := newTaggedElement(t, c, map[string]any{"a": "1"})

	if err := c.Delete(e); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got := c.Get(e); len(got) != 0 {
		t.Errorf("Get() after Delete() = %#v, want empty map", got)
	}

	// Delete on an absent namespace is a no-op, and must not touch
	// the blob at all.
	blob := e.Metadata()
	if err := c.Delete(e); err != nil {
		t.Fatalf("second Delete() error: %v", err)
	}
	if !reflect.DeepEqual(e.Metadata(), blob) {
		t.Error("Delete() on absent namespace rewrote the blob")
	}
}

func TestCodecMerge(t *testing.T) {
	c := Codec{}

	tests := []struct {
		name    string
		initial map[string]any
		patch   map[string]any
		want    map[string]any
	}{
		{
			name:    "overwrites and keeps",
			initial: map[string]any{"a": "0", "b": "2"},
			patch:   map[string]any{"a": "1"},
			want:    map[string]any{"a": "1", "b": "2"},
		},
		{
			name:  "creates namespace when absent",
			patch: map[string]any{"a": "1"},
			want:  map[string]any{"a": "1"},
		},
		{
			name:    "shallow - nested values replaced wholesale",
			initial: map[string]any{"routing": map[string]any{"click": "save", "change": "sync"}},
			patch:   map[string]any{"routing": map[string]any{"click": "other"}},
			want:    map[string]any{"routing": map[string]any{"click": "other"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &TestElement{}
			if tt.initial != nil {
				if err := c.Set(e, tt.initial); err != nil {
					t.Fatalf("Set() error: %v", err)
				}
			}
			if err := c.Merge(e, tt.patch); err != nil {
				t.Fatalf("Merge() error: %v", err)
			}
			if got := c.Get(e); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Get() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCodecPreservesForeignBlobKeys(t *testing.T) {
	mine := Codec{Namespace: "mine"}
	other := Codec{Namespace: "other"}
	e := &TestElement{}

	if err := other.Set(e, map[string]any{"kept": "yes"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := mine.Set(e, map[string]any{"a": "1"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := mine.Merge(e, map[string]any{"b": "2"}); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if err := mine.Delete(e); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	want := map[string]any{"kept": "yes"}
	if got := other.Get(e); !reflect.DeepEqual(got, want) {
		t.Errorf("foreign namespace = %#v, want %#v", got, want)
	}
}

func TestCodecMutatorsRefuseUndecodableBlob(t *testing.T) {
	c := Codec{}
	ops := []struct {
		name string
		op   func(Element) error
	}{
		{"Set", func(e Element) error { return c.Set(e, map[string]any{"a": "1"}) }},
		{"Delete", func(e Element) error { return c.Delete(e) }},
		{"Merge", func(e Element) error { return c.Merge(e, map[string]any{"a": "1"}) }},
	}

	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			e := &TestElement{Meta: undefinedBlob}
			err := tt.op(e)
			if !errors.Is(err, ErrInvalidBlob) {
				t.Errorf("%s error = %v, want ErrInvalidBlob", tt.name, err)
			}
			// The corrupt blob must not be clobbered.
			if !reflect.DeepEqual(e.Meta, undefinedBlob) {
				t.Errorf("%s rewrote an undecodable blob", tt.name)
			}
		})
	}
}

func TestCodecRejectsNonSerializableValues(t *testing.T) {
	c := Codec{}
	e := &TestElement{}
	if err := c.Set(e, map[string]any{"cb": func() {}}); err == nil {
		t.Error("Set() with func value succeeded, want error")
	}
}
