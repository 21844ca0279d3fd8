// Package encoding handles serialization of element metadata blobs.
//
// A blob is the atomic metadata value a host attaches to each element,
// encoded as a msgpack map. The host exposes it only as a whole value, so
// every mutation is a decode/patch/encode round-trip performed by the
// caller. Because msgpack refuses functions and other opaque values, the
// codec doubles as the enforcement point for the rule that only
// serializable data may cross a process restart.
//
// The package also provides [Signer] for hosts that persist blobs through
// channels they do not trust: Export produces a tamper-proof string,
// Import verifies and restores it.
package encoding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for blob operations.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid blob format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
)

// DecodeBlob decodes a metadata blob into a map. An empty or nil blob
// decodes to an empty map, since a freshly reset element carries no
// metadata at all.
func DecodeBlob(blob []byte) (map[string]any, error) {
	if len(blob) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := msgpack.Unmarshal(blob, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// EncodeBlob encodes a metadata map into blob bytes. Values that msgpack
// cannot represent (functions, channels, unsafe pointers) fail here, which
// is what keeps non-serializable state out of the persistence channel.
func EncodeBlob(m map[string]any) ([]byte, error) {
	return msgpack.Marshal(m)
}

// Signer exports and imports blobs through untrusted persistence channels.
// The encoded form is base64 data plus a truncated HMAC-SHA256 signature:
// visible, but tamper-proof.
type Signer struct {
	key []byte
}

// NewSigner creates a signer from the given key. Keys shorter than 32
// bytes are stretched through SHA-256.
func NewSigner(key []byte) *Signer {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Signer{key: key}
}

// Export encodes a blob as "base64.signature".
func (s *Signer) Export(blob []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(blob)
	mac := hmac.New(sha256.New, s.key)
	mac.Write(blob)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16]) // 16 bytes = 128 bits
	return b64 + "." + sig
}

// Import verifies an exported string and returns the original blob.
func (s *Signer) Import(encoded string) ([]byte, error) {
	parts := strings.SplitN(encoded, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	blob, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write(blob)
	expected := mac.Sum(nil)[:16]

	if !hmac.Equal(sig, expected) {
		return nil, ErrSignatureInvalid
	}

	return blob, nil
}
