package guitree

import "github.com/pthm/guitree/lib/encoding"

// DefaultNamespace is the metadata blob key guitree owns unless the Kit is
// configured otherwise with [WithNamespace].
const DefaultNamespace = "guitree"

// routingKey is the namespace slot holding the per-category routing submap.
const routingKey = "routing"

// Codec reads and writes one reserved namespace inside element metadata
// blobs. The host exposes the blob only as an atomic value, so every
// mutation is a whole-value read-modify-write; keys outside the namespace
// are preserved untouched.
//
// Each owning module instance claims exactly one namespace key - two
// instances sharing a key overwrite each other.
type Codec struct {
	// Namespace is the reserved blob key. Empty means [DefaultNamespace].
	Namespace string
}

func (c Codec) key() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

// Get returns the namespace content, or an empty map if the namespace is
// absent or the blob is undecodable. It never mutates and never fails.
func (c Codec) Get(e Element) map[string]any {
	if e == nil {
		return map[string]any{}
	}
	m, err := encoding.DecodeBlob(e.Metadata())
	if err != nil {
		return map[string]any{}
	}
	ns, ok := m[c.key()].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return ns
}

// Set replaces the entire namespace content.
func (c Codec) Set(e Element, tags map[string]any) error {
	m, err := encoding.DecodeBlob(e.Metadata())
	if err != nil {
		return wrapBlobError(err)
	}
	m[c.key()] = tags
	return c.write(e, m)
}

// Delete removes the namespace from the blob; a no-op if it is absent.
func (c Codec) Delete(e Element) error {
	m, err := encoding.DecodeBlob(e.Metadata())
	if err != nil {
		return wrapBlobError(err)
	}
	if _, ok := m[c.key()]; !ok {
		return nil
	}
	delete(m, c.key())
	return c.write(e, m)
}

// Merge overwrites each key of patch into the namespace, creating the
// namespace empty if absent. The merge is shallow - one level deep - so
// nested values are replaced wholesale, never deep-merged.
func (c Codec) Merge(e Element, patch map[string]any) error {
	m, err := encoding.DecodeBlob(e.Metadata())
	if err != nil {
		return wrapBlobError(err)
	}
	ns, ok := m[c.key()].(map[string]any)
	if !ok {
		ns = map[string]any{}
	}
	for k, v := range patch {
		ns[k] = v
	}
	m[c.key()] = ns
	return c.write(e, m)
}

func (c Codec) write(e Element, m map[string]any) error {
	blob, err := encoding.EncodeBlob(m)
	if err != nil {
		return err
	}
	return e.SetMetadata(blob)
}
