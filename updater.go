package guitree

// Update applies a partial mutation description onto a live tree, recursing
// by structural position.
//
// The callback, if any, runs before all other mutation of the element.
// Child and tab entries are matched against the live tree by index, and
// the updater tolerates structural drift by design: out-of-range indices,
// nil entries, and missing live counterparts are silent no-ops. Host
// mutation failures still propagate unmodified.
//
// Tag, handler, and action mutation is unsupported here; use the tag
// methods on [Kit] directly if live routing must change.
func (k *Kit) Update(e Element, u *Update) error {
	if e == nil || u == nil {
		return nil
	}

	if u.Callback != nil {
		u.Callback(e)
	}

	for name, v := range u.StyleMods {
		if err := e.SetStyle(name, v); err != nil {
			return err
		}
	}
	for name, v := range u.ElemMods {
		if err := e.SetField(name, v); err != nil {
			return err
		}
	}

	if len(u.Children) > 0 {
		live := e.Children()
		for i, cu := range u.Children {
			if cu == nil || i >= len(live) {
				continue
			}
			if err := k.Update(live[i], cu); err != nil {
				return err
			}
		}
	}

	if len(u.Tabs) > 0 {
		live := e.Tabs()
		for i, tu := range u.Tabs {
			if i >= len(live) {
				continue
			}
			if tu.Tab != nil && live[i].Tab != nil {
				if err := k.Update(live[i].Tab, tu.Tab); err != nil {
					return err
				}
			}
			if tu.Content != nil && live[i].Content != nil {
				if err := k.Update(live[i].Content, tu.Content); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
