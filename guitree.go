package guitree

// Kit ties one host, one event bus, one handler registry, and one metadata
// namespace together. It is the module instance: the owner of a namespace
// key inside element metadata and the entry point for building, updating,
// and routing.
//
//	kit := guitree.New(host, bus)
//	kit.RegisterHandlers(handlers)
//	kit.HookDispatch()
//	refs, err := kit.Build(root, structures)
//
// Everything runs synchronously inside the invoking host callback; the
// host guarantees at most one event in flight, so the Kit holds no locks.
type Kit struct {
	host     Host
	bus      EventBus
	registry *Registry
	codec    Codec
}

// Option configures a [Kit].
type Option func(*Kit)

// WithNamespace sets the metadata blob key this Kit owns. Two Kits sharing
// a key overwrite each other's routing; give each module instance its own.
func WithNamespace(key string) Option {
	return func(k *Kit) { k.codec.Namespace = key }
}

// WithRegistry shares an existing handler registry instead of creating a
// fresh one.
func WithRegistry(r *Registry) Option {
	return func(k *Kit) { k.registry = r }
}

// New creates a Kit for the given host and event bus.
func New(host Host, bus EventBus, opts ...Option) *Kit {
	k := &Kit{
		host:     host,
		bus:      bus,
		registry: NewRegistry(),
		codec:    Codec{},
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Registry returns the Kit's handler registry.
func (k *Kit) Registry() *Registry {
	return k.registry
}

// RegisterHandlers bulk-registers handler tables; see [Registry.Register].
// It must re-run on every process start before dispatch is attempted,
// since callables cannot survive a restart.
func (k *Kit) RegisterHandlers(tables ...any) {
	k.registry.Register(tables...)
}

// Tags returns the namespace content of an element's metadata; empty if
// absent. See [Codec.Get].
func (k *Kit) Tags(e Element) map[string]any {
	return k.codec.Get(e)
}

// SetTags replaces the element's whole namespace content.
func (k *Kit) SetTags(e Element, tags map[string]any) error {
	return k.codec.Set(e, tags)
}

// DeleteTags removes the element's namespace; a no-op if absent.
func (k *Kit) DeleteTags(e Element) error {
	return k.codec.Delete(e)
}

// MergeTags shallow-merges patch into the element's namespace.
func (k *Kit) MergeTags(e Element, patch map[string]any) error {
	return k.codec.Merge(e, patch)
}
