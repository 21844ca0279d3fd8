package guitree

// Element is an opaque node in the host-managed UI tree.
//
// Elements are created by [Host.Create] and owned by the host thereafter -
// guitree never destroys them. The metadata blob is the only channel this
// module persists state through: it is an atomic value (msgpack bytes) that
// the host serializes across process restarts, so anything written there
// must survive encoding. Routing information lives inside it under a
// namespace key (see [Codec]).
type Element interface {
	// Children returns the element's direct children in order.
	Children() []Element

	// Tabs returns the element's tab/content pairs in registration order.
	Tabs() []TabPair

	// SetStyle assigns a single named style property.
	SetStyle(name string, value any) error

	// SetField assigns a single named element property.
	SetField(name string, value any) error

	// Metadata returns the element's metadata blob as an atomic value.
	// A freshly constructed element may hold an undefined blob; the
	// builder resets it before writing anything.
	Metadata() []byte

	// SetMetadata replaces the entire metadata blob.
	SetMetadata(blob []byte) error
}

// TabPair is one tab/content association on an element.
type TabPair struct {
	Tab     Element
	Content Element
}

// Host constructs and associates elements. All failures are the host's own
// and are propagated unmodified by this module.
type Host interface {
	// Create instantiates an element of the given kind under parent,
	// applying the constructor fields.
	Create(parent Element, kind string, fields map[string]any) (Element, error)

	// AddTab registers tab and content (both already children of owner)
	// as a tab/content pair on owner.
	AddTab(owner, tab, content Element) error
}

// EventType is the host's numeric event identifier.
type EventType int64

// Event is the host's event record. It carries at least the firing element
// and its numeric type; hosts typically attach more, which handlers can get
// at via type assertion.
type Event interface {
	Type() EventType
	Target() Element
}

// EventBus is the host's event subscription surface.
type EventBus interface {
	// Subscribe registers fn for events of type t. Multiple subscriptions
	// for the same type are all delivered.
	Subscribe(t EventType, fn func(Event))

	// Types enumerates the host's event types by human-readable name.
	// Names ending in the "GUI" suffix denote GUI categories (see
	// [Category]).
	Types() map[EventType]string
}

// Kinder is optionally implemented by host elements that can report their
// constructor kind. The debug [Kit.Outline] uses it when available.
type Kinder interface {
	Kind() string
}
