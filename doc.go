// Package guitree builds and incrementally updates trees of UI elements
// hosted by an external runtime, and routes host events back to Go code
// through routing information persisted inside each element's metadata -
// not inside closures - so routing survives process restarts.
//
// # Core Concepts
//
// The host owns the elements. guitree consumes a small interface surface
// ([Host], [Element], [EventBus]) and produces three things: built trees,
// patched trees, and routed events. A [Kit] ties one host, one event bus,
// one handler registry, and one metadata namespace together.
//
//	kit := guitree.New(host, bus)
//	kit.RegisterHandlers(guitree.HandlerTable{
//	    "saveSettings": onSave,
//	})
//	kit.HookDispatch()
//
//	refs, err := kit.Build(root, []*guitree.Structure{{
//	    Kind: "button",
//	    Fields: map[string]any{"label": "Save"},
//	    Handlers: map[string]string{"click": "saveSettings"},
//	    Ref: "dialog.save",
//	}})
//
// # Persistent Routing
//
// Each element carries an atomic metadata blob (msgpack bytes) that the
// host serializes across restarts. The builder writes a routing submap
// into a reserved namespace key inside that blob:
//
//	{ "guitree": { "routing": { "click": "saveSettings" } } }
//
// Because the blob holds only serializable values - handler names and raw
// payloads, never callables - it is the sole state that crosses a restart.
// Every process start re-runs handler registration; until it does,
// dispatch simply reports false, the same as any other unresolved name.
//
// # Dispatch and Action Modes
//
// When the host fires an event, the router reverse-maps its numeric type
// to a name, strips the "GUI" suffix to get a canonical category, and
// reads the firing element's routing submap. In dispatch mode the stored
// value is a handler name resolved through the [Registry] and invoked with
// the full event. In action mode ([Kit.Action]) the stored value is
// returned as-is for the caller to act on. The two modes share one routing
// slot per category, so a node declaring both Handlers and Actions is
// rejected at build time with [ErrRoutingConflict].
//
// # Updating Live Trees
//
// [Kit.Update] applies an [Update] description onto an already-built tree,
// matching children and tab pairs by index. It tolerates structural drift
// by design: entries without a live counterpart are skipped silently, so a
// description written for yesterday's tree shape still applies cleanly to
// today's.
//
// # Concurrency Model
//
// Everything is single-threaded and callback-driven. Builds, updates, and
// dispatches run synchronously inside the invoking host callback, and the
// host guarantees at most one event in flight, so the package holds no
// locks. The only long-lived shared state, the handler registry, is
// populated at startup before any dispatch can occur.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects, rerun each start)
//   - Explicit routing state (serializable names, not captured closures)
//   - Explicit drift tolerance (updates skip, never guess)
//   - Explicit failure (host errors propagate unmodified; missing routing
//     is a false return, never an error)
package guitree
