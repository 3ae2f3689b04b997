package identity

import (
	"bytes"
	"encoding"
	"encoding/json"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// ID is a byte-encoded fingerprint of one argument value.
//
// Stable reports whether the bytes can be trusted to reproduce the same
// identity on a future run. An unstable ID (conventionally empty bytes)
// still identifies the argument within the current process, but persisting
// it for re-run selection is not meaningful.
type ID struct {
	Bytes  []byte
	Stable bool
}

// Stable wraps bytes in a stable ID.
func Stable(b []byte) ID {
	return ID{Bytes: b, Stable: true}
}

// Unstable is the fallback ID for values with no derivable identity.
func Unstable() ID {
	return ID{}
}

// Equal reports structural equality of two IDs.
func (id ID) Equal(other ID) bool {
	return id.Stable == other.Stable && bytes.Equal(id.Bytes, other.Bytes)
}

// StableIdentifiable is the custom hook consulted first during derivation.
// Implementations return the canonical byte identity of the receiver.
// Returning an error degrades the value to an unstable ID.
type StableIdentifiable interface {
	StableIdentity() ([]byte, error)
}

// Resolver derives IDs for argument values. The zero value is ready to use
// and applies the default resolution ladder; ForType, when set, is consulted
// before any other rule.
type Resolver struct {
	// ForType, if non-nil, may claim a value before the default rules run.
	// Returning false passes the value down the ladder.
	ForType func(v any) (ID, bool)
}

// ForValue derives the ID for v using the default resolver.
func ForValue(v any) ID {
	return Resolver{}.ForValue(v)
}

// ForValue derives the ID for v. It never returns an error: any failure
// along the way produces the unstable fallback instead.
func (r Resolver) ForValue(v any) ID {
	if r.ForType != nil {
		if id, ok := r.ForType(v); ok {
			return id
		}
	}

	switch impl := v.(type) {
	case StableIdentifiable:
		b, err := impl.StableIdentity()
		if err != nil {
			return Unstable()
		}
		return Stable(b)
	case encoding.TextMarshaler:
		b, err := impl.MarshalText()
		if err != nil {
			return Unstable()
		}
		return Stable(b)
	case encoding.BinaryMarshaler:
		b, err := impl.MarshalBinary()
		if err != nil {
			return Unstable()
		}
		return Stable(b)
	}

	return canonicalJSON(v)
}

// canonicalJSON encodes v as RFC 8785 canonical JSON: object keys sorted,
// deterministic number formatting, byte-for-byte reproducible for
// structurally equal values.
func canonicalJSON(v any) ID {
	raw, err := json.Marshal(v)
	if err != nil {
		return Unstable()
	}
	// The canonicalizer requires an object or array at the top level.
	// Scalar encodings (numbers, strings, booleans, null) are already
	// byte-deterministic and pass through as-is.
	if len(raw) == 0 || (raw[0] != '{' && raw[0] != '[') {
		return Stable(raw)
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return Unstable()
	}
	return Stable(canonical)
}
