package guitree

import "fmt"

// Build constructs each described subtree under parent in order and
// returns one aggregated reference table for the whole call.
//
// Per node, in order: construct, reset the metadata blob (construction
// leaves it undefined), apply style and element mods, write routing tags,
// record the ref, then recurse into children and tab pairs. Any host
// failure propagates unmodified and aborts the rest of the call - there is
// no partial-success recovery.
func (k *Kit) Build(parent Element, structures []*Structure) (Refs, error) {
	refs := Refs{}
	for _, s := range structures {
		if s == nil {
			continue
		}
		if _, err := k.buildNode(parent, s, refs); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

// buildNode builds one subtree and returns its root element so tab pairs
// can be associated by the caller.
func (k *Kit) buildNode(parent Element, s *Structure, refs Refs) (Element, error) {
	// Handlers and actions merge into the same routing slot; the later
	// write would silently clobber the earlier one, so reject up front.
	if len(s.Handlers) > 0 && len(s.Actions) > 0 {
		return nil, fmt.Errorf("%w: kind %q", ErrRoutingConflict, s.Kind)
	}

	e, err := k.host.Create(parent, s.Kind, s.Fields)
	if err != nil {
		return nil, err
	}
	if err := e.SetMetadata(nil); err != nil {
		return nil, err
	}

	for name, v := range s.StyleMods {
		if err := e.SetStyle(name, v); err != nil {
			return nil, err
		}
	}
	for name, v := range s.ElemMods {
		if err := e.SetField(name, v); err != nil {
			return nil, err
		}
	}

	if s.Tags != nil {
		if err := k.codec.Set(e, s.Tags); err != nil {
			return nil, err
		}
	}
	if len(s.Handlers) > 0 {
		routing := make(map[string]any, len(s.Handlers))
		for cat, name := range s.Handlers {
			routing[cat] = name
		}
		if err := k.codec.Merge(e, map[string]any{routingKey: routing}); err != nil {
			return nil, err
		}
	}
	if len(s.Actions) > 0 {
		routing := make(map[string]any, len(s.Actions))
		for cat, payload := range s.Actions {
			routing[cat] = payload
		}
		if err := k.codec.Merge(e, map[string]any{routingKey: routing}); err != nil {
			return nil, err
		}
	}

	if s.Ref != "" {
		refs.put(s.Ref, e)
	}

	for _, child := range s.Children {
		if child == nil {
			continue
		}
		if _, err := k.buildNode(e, child, refs); err != nil {
			return nil, err
		}
	}

	for i, tp := range s.Tabs {
		if tp.Tab == nil || tp.Content == nil {
			return nil, fmt.Errorf("%w: kind %q: tabs[%d] missing a side", ErrBadStructure, s.Kind, i)
		}
		tab, err := k.buildNode(e, tp.Tab, refs)
		if err != nil {
			return nil, err
		}
		content, err := k.buildNode(e, tp.Content, refs)
		if err != nil {
			return nil, err
		}
		if err := k.host.AddTab(e, tab, content); err != nil {
			return nil, err
		}
	}

	return e, nil
}
