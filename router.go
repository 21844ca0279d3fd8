package guitree

import "strings"

// guiSuffix marks host event names that denote GUI categories. The
// canonical category is the name with the suffix stripped.
const guiSuffix = "GUI"

// Category derives the canonical category from a host event name.
// "clickGUI" yields ("click", true); names without the suffix - or the
// bare suffix itself - are not GUI categories.
func Category(name string) (string, bool) {
	if len(name) <= len(guiSuffix) || !strings.HasSuffix(name, guiSuffix) {
		return "", false
	}
	return strings.TrimSuffix(name, guiSuffix), true
}

// category resolves an event's canonical category via the bus enumeration.
func (k *Kit) category(ev Event) (string, bool) {
	name, ok := k.bus.Types()[ev.Type()]
	if !ok {
		return "", false
	}
	return Category(name)
}

// routingValue resolves an event to the value stored for its category in
// the firing element's routing submap. Every missing step - no element,
// no namespace, no submap, no category entry - is an expected steady
// state, reported as not-found rather than an error.
func (k *Kit) routingValue(ev Event) (any, bool) {
	if ev == nil {
		return nil, false
	}
	e := ev.Target()
	if e == nil {
		return nil, false
	}
	cat, ok := k.category(ev)
	if !ok {
		return nil, false
	}
	routing, ok := k.codec.Get(e)[routingKey].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := routing[cat]
	return v, ok
}

// Dispatch resolves the event's category to a handler name on the firing
// element, looks the name up in the registry, and invokes the handler with
// the full event. It returns false at every short-circuit - no element, no
// routing, a payload where a name was expected, or an unregistered name -
// and true only when a handler actually ran. An unregistered name is the
// normal state before the post-restart bootstrap, never an error.
func (k *Kit) Dispatch(ev Event) bool {
	v, ok := k.routingValue(ev)
	if !ok {
		return false
	}
	name, ok := v.(string)
	if !ok {
		return false
	}
	h, ok := k.registry.Lookup(name)
	if !ok {
		return false
	}
	h(ev)
	return true
}

// Action resolves the event identically to [Kit.Dispatch] but returns the
// stored payload itself instead of invoking anything. It is pure: it never
// mutates state, so two calls on the same event return identical results.
func (k *Kit) Action(ev Event) (any, bool) {
	return k.routingValue(ev)
}

// HookDispatch subscribes [Kit.Dispatch] to every event type whose name
// denotes a GUI category. Call it exactly once per process, after handler
// registration.
func (k *Kit) HookDispatch() {
	k.HookAction(func(ev Event) { k.Dispatch(ev) })
}

// HookAction subscribes fn to every event type whose name denotes a GUI
// category. Callers pair it with [Kit.Action] to consume payload routing
// with a function of their choosing.
func (k *Kit) HookAction(fn func(Event)) {
	for t, name := range k.bus.Types() {
		if _, ok := Category(name); ok {
			k.bus.Subscribe(t, fn)
		}
	}
}
