package guitree

// In-memory host, bus, and event implementations for exercising trees
// without a real runtime. They are exported because downstream modules need
// the same fakes to test their own structures and handlers.

// undefinedBlob simulates the undefined metadata state a host leaves on a
// freshly constructed element. 0xc1 is the one byte msgpack never uses, so
// any read before the builder's reset fails to decode.
var undefinedBlob = []byte{0xc1}

// TestElement is an in-memory [Element]. Mutations are recorded in exported
// fields so tests can assert on them directly.
type TestElement struct {
	ElemKind string
	Fields   map[string]any
	Styles   map[string]any
	Props    map[string]any
	Meta     []byte
	Kids     []Element
	TabPairs []TabPair

	// Optional fault injection: when non-nil, the corresponding setter
	// returns the error instead of recording.
	StyleErr error
	FieldErr error
	MetaErr  error
}

// Kind implements [Kinder].
func (e *TestElement) Kind() string { return e.ElemKind }

// Children implements [Element].
func (e *TestElement) Children() []Element { return e.Kids }

// Tabs implements [Element].
func (e *TestElement) Tabs() []TabPair { return e.TabPairs }

// SetStyle implements [Element].
func (e *TestElement) SetStyle(name string, value any) error {
	if e.StyleErr != nil {
		return e.StyleErr
	}
	if e.Styles == nil {
		e.Styles = map[string]any{}
	}
	e.Styles[name] = value
	return nil
}

// SetField implements [Element].
func (e *TestElement) SetField(name string, value any) error {
	if e.FieldErr != nil {
		return e.FieldErr
	}
	if e.Props == nil {
		e.Props = map[string]any{}
	}
	e.Props[name] = value
	return nil
}

// Metadata implements [Element].
func (e *TestElement) Metadata() []byte { return e.Meta }

// SetMetadata implements [Element].
func (e *TestElement) SetMetadata(blob []byte) error {
	if e.MetaErr != nil {
		return e.MetaErr
	}
	e.Meta = blob
	return nil
}

// TestHost is an in-memory [Host]. Constructed elements carry an undefined
// metadata blob, matching real hosts, so builder behavior around the reset
// step is exercised faithfully.
type TestHost struct {
	// CreateErr, when non-nil, is consulted per constructor kind to
	// simulate host construction failures.
	CreateErr func(kind string) error

	// Created records every element in construction order.
	Created []*TestElement
}

// NewTestHost creates an empty in-memory host.
func NewTestHost() *TestHost {
	return &TestHost{}
}

// Create implements [Host].
func (h *TestHost) Create(parent Element, kind string, fields map[string]any) (Element, error) {
	if h.CreateErr != nil {
		if err := h.CreateErr(kind); err != nil {
			return nil, err
		}
	}
	e := &TestElement{
		ElemKind: kind,
		Fields:   fields,
		Meta:     undefinedBlob,
	}
	if parent != nil {
		p := parent.(*TestElement)
		p.Kids = append(p.Kids, e)
	}
	h.Created = append(h.Created, e)
	return e, nil
}

// AddTab implements [Host].
func (h *TestHost) AddTab(owner, tab, content Element) error {
	o := owner.(*TestElement)
	o.TabPairs = append(o.TabPairs, TabPair{Tab: tab, Content: content})
	return nil
}

// TestBus is an in-memory [EventBus]. Fire delivers an event to every
// subscriber of its type, synchronously and in subscription order, the way
// a cooperative host does.
type TestBus struct {
	Names map[EventType]string
	subs  map[EventType][]func(Event)
}

// NewTestBus creates a bus with the given type enumeration.
func NewTestBus(names map[EventType]string) *TestBus {
	return &TestBus{
		Names: names,
		subs:  map[EventType][]func(Event){},
	}
}

// Subscribe implements [EventBus].
func (b *TestBus) Subscribe(t EventType, fn func(Event)) {
	b.subs[t] = append(b.subs[t], fn)
}

// Types implements [EventBus].
func (b *TestBus) Types() map[EventType]string { return b.Names }

// Fire delivers ev to its type's subscribers and returns how many ran.
func (b *TestBus) Fire(ev Event) int {
	fns := b.subs[ev.Type()]
	for _, fn := range fns {
		fn(ev)
	}
	return len(fns)
}

// SubscriberCount reports how many subscriptions exist for a type.
func (b *TestBus) SubscriberCount(t EventType) int {
	return len(b.subs[t])
}

// TestEvent is a minimal [Event] record.
type TestEvent struct {
	EventType EventType
	Element   Element
}

// Type implements [Event].
func (ev *TestEvent) Type() EventType { return ev.EventType }

// Target implements [Event].
func (ev *TestEvent) Target() Element { return ev.Element }
