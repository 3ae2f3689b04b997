package testcase

import (
	"context"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/caseforge/sdk/identity"
)

// Parameter describes one declared parameter of a parameterized test
// function, as reported by the declaration layer.
type Parameter struct {
	// Index is the zero-based position of the parameter in the declaration.
	Index int `json:"index"`

	// FirstName is the parameter's label.
	FirstName string `json:"firstName"`

	// SecondName is the parameter's secondary name, if the declaring
	// language distinguishes one.
	SecondName string `json:"secondName,omitempty"`
}

// Argument is one concrete value bound to one parameter for a single case.
type Argument struct {
	// Value is the original argument value, type-erased.
	Value any

	// ID is the value's byte identity.
	ID identity.ID

	// Parameter is the declared parameter this value binds to.
	Parameter Parameter
}

// Body is a test function invoked with the argument values of one case, in
// parameter order. Non-parameterized cases are invoked with no arguments.
type Body func(ctx context.Context, args ...any) error

// Case is one concrete invocation of a test function with a specific
// argument tuple bound. Cases are produced by a Generator traversal; a
// non-parameterized test produces exactly one Case with no arguments.
type Case struct {
	arguments     []Argument
	discriminator int
	body          Body
}

// Arguments returns the case's arguments in parameter order. The returned
// slice must not be mutated.
func (c *Case) Arguments() []Argument {
	return c.arguments
}

// Discriminator returns the integer assigned to disambiguate this case from
// others with identical argument identities. It is 0 unless a collision was
// detected earlier in the same traversal.
func (c *Case) Discriminator() int {
	return c.discriminator
}

// IsParameterized reports whether the case carries any arguments.
func (c *Case) IsParameterized() bool {
	return len(c.arguments) > 0
}

// Invoke runs the case's body with its bound argument values. The body may
// suspend or block arbitrarily; that is the caller's concern.
func (c *Case) Invoke(ctx context.Context) error {
	args := make([]any, len(c.arguments))
	for i, a := range c.arguments {
		args[i] = a.Value
	}
	return c.body(ctx, args...)
}

// ID derives the case's identity. It is computed on demand, not stored.
func (c *Case) ID() ID {
	ids := make([]identity.ID, len(c.arguments))
	for i, a := range c.arguments {
		ids[i] = a.ID
	}
	return ID{ArgumentIDs: ids, Discriminator: c.discriminator}
}

// ID identifies a test case by the ordered identities of its arguments plus
// a discriminator. Equality and hashing are structural over both fields;
// use Key for a map-friendly form.
type ID struct {
	ArgumentIDs   []identity.ID `json:"argumentIDs"`
	Discriminator int           `json:"discriminator"`
}

// Stable reports whether every argument ID is stable. An unstable case ID
// still names the case within this run, but persisting it may not select
// the intended case on a future run; tooling should surface that.
func (id ID) Stable() bool {
	for _, a := range id.ArgumentIDs {
		if !a.Stable {
			return false
		}
	}
	return true
}

// Key returns a canonical string form of the ID, usable as a map key. Two
// IDs have equal keys exactly when they are structurally equal.
func (id ID) Key() string {
	var sb strings.Builder
	for i, a := range id.ArgumentIDs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(EncodeArgumentID(a))
	}
	sb.WriteByte('#')
	sb.WriteString(strconv.Itoa(id.Discriminator))
	return sb.String()
}

// argumentsKey is Key without the discriminator: the collision-map key used
// while discriminators are still being assigned.
func (id ID) argumentsKey() string {
	var sb strings.Builder
	for i, a := range id.ArgumentIDs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(EncodeArgumentID(a))
	}
	return sb.String()
}

// EncodeArgumentID returns the canonical string encoding of one argument
// ID: lowercase hex of its bytes, prefixed with "!" when the ID is
// unstable so that stable and unstable IDs with equal bytes cannot alias.
func EncodeArgumentID(a identity.ID) string {
	if !a.Stable {
		return "!" + hex.EncodeToString(a.Bytes)
	}
	return hex.EncodeToString(a.Bytes)
}
