// Package identity derives stable byte identifiers for test argument
// values.
//
// A stable identifier reproduces the same bytes for structurally equal
// values across runs and processes, which is what makes persisted test-case
// IDs usable for re-run selection. Determinism comes from RFC 8785 (JCS)
// canonicalization: object keys are sorted and number formatting is fixed
// before the bytes are taken.
//
// # Resolution Order
//
// ForValue tries, in order, and the first match wins:
//
//  1. A StableIdentifiable implementation on the value itself.
//  2. The value's natural raw representation via encoding.TextMarshaler or
//     encoding.BinaryMarshaler.
//  3. Canonical JSON of the value, for anything encoding/json can encode.
//  4. No stable identity: empty bytes with Stable set to false.
//
// Derivation never fails loudly. An encoder error for a particular value
// degrades that value to the unstable fallback; it is never propagated, so
// a single awkward argument cannot abort a whole generation pass.
//
// # Custom Resolvers
//
// The Resolver type lets the encoding collaborator be replaced, for example
// to add identity support for foreign types the package cannot see:
//
//	r := identity.Resolver{
//	    ForType: func(v any) (identity.ID, bool) {
//	        if u, ok := v.(uuid.UUID); ok {
//	            return identity.Stable(u[:]), true
//	        }
//	        return identity.ID{}, false
//	    },
//	}
//	id := r.ForValue(v)
package identity
