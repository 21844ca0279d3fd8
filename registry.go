package guitree

import "fmt"

// Handler is a registered event callable, invoked with the full host event
// record on successful dispatch.
type Handler func(Event)

// HandlerTable is a flat name-to-handler map, the usual registration form.
type HandlerTable map[string]Handler

// HandlerProvider is the wrapper registration form: any value that exposes
// a nested handler table. Modules typically implement it on the type that
// owns their handlers so registration stays one call per module.
type HandlerProvider interface {
	GUIHandlers() HandlerTable
}

// Registry is the process-wide name-to-handler table.
//
// Callables cannot survive a process restart, so the registry starts empty
// every process and must be repopulated by an explicit bootstrap call
// before dispatch is attempted. Resolving a name before that bootstrap is
// treated identically to "handler not found" - never an error. There is no
// unregister; entries live until process end.
//
// The registry is written only during startup and read during steady-state
// dispatch, and the host delivers at most one event at a time, so it
// carries no lock.
type Registry struct {
	handlers HandlerTable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: HandlerTable{}}
}

// Register bulk-registers handler tables. Each argument is either a flat
// [HandlerTable] (or plain map[string]Handler) or a [HandlerProvider]
// wrapper. Registration is cumulative across calls and idempotent per
// name, with later registrations overwriting earlier ones; that makes
// re-running the bootstrap on every process start safe.
//
// Panics on any other argument type: registration is startup code, and a
// wrong table shape is a programming error, not a runtime condition.
func (r *Registry) Register(tables ...any) {
	for _, t := range tables {
		switch v := t.(type) {
		case HandlerTable:
			r.merge(v)
		case map[string]Handler:
			r.merge(v)
		case HandlerProvider:
			r.merge(v.GUIHandlers())
		default:
			panic(fmt.Sprintf("guitree: cannot register %T: want HandlerTable or HandlerProvider", t))
		}
	}
}

func (r *Registry) merge(table map[string]Handler) {
	for name, h := range table {
		r.handlers[name] = h
	}
}

// Lookup resolves a handler by name. Unknown names report false.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok && h != nil
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.handlers)
}
