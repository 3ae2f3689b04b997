package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customIdentity struct{ id string }

func (c customIdentity) StableIdentity() ([]byte, error) {
	return []byte("custom:" + c.id), nil
}

type failingIdentity struct{}

func (failingIdentity) StableIdentity() ([]byte, error) {
	return nil, errors.New("nope")
}

type textID struct{ name string }

func (t textID) MarshalText() ([]byte, error) {
	return []byte(t.name), nil
}

func TestForValueCustomHookWinsFirst(t *testing.T) {
	id := ForValue(customIdentity{id: "x"})
	require.True(t, id.Stable)
	assert.Equal(t, []byte("custom:x"), id.Bytes)
}

func TestForValueTextMarshaler(t *testing.T) {
	id := ForValue(textID{name: "alpha"})
	require.True(t, id.Stable)
	assert.Equal(t, []byte("alpha"), id.Bytes)
}

func TestForValueCanonicalJSON(t *testing.T) {
	id := ForValue(map[string]int{"b": 2, "a": 1})
	require.True(t, id.Stable)
	assert.Equal(t, `{"a":1,"b":2}`, string(id.Bytes))
}

func TestForValueDeterministicAcrossMapOrder(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	first := ForValue(point{X: 1, Y: 2})
	second := ForValue(point{X: 1, Y: 2})
	assert.True(t, first.Equal(second))

	third := ForValue(point{X: 1, Y: 3})
	assert.False(t, first.Equal(third))
}

func TestForValueUnencodableDegrades(t *testing.T) {
	id := ForValue(func() {})
	assert.False(t, id.Stable)
	assert.Empty(t, id.Bytes)
}

func TestForValueHookErrorDegrades(t *testing.T) {
	id := ForValue(failingIdentity{})
	assert.False(t, id.Stable)
	assert.Empty(t, id.Bytes)
}

func TestResolverForTypeOverrides(t *testing.T) {
	r := Resolver{
		ForType: func(v any) (ID, bool) {
			if s, ok := v.(string); ok {
				return Stable([]byte("str:" + s)), true
			}
			return ID{}, false
		},
	}

	id := r.ForValue("hello")
	assert.Equal(t, []byte("str:hello"), id.Bytes)

	// Unclaimed values fall through to the default ladder.
	id = r.ForValue(7)
	require.True(t, id.Stable)
	assert.Equal(t, []byte("7"), id.Bytes)
}

func TestForValueScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"string", "hi", `"hi"`},
		{"bool", true, "true"},
		{"nil", nil, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ForValue(tt.value)
			require.True(t, id.Stable)
			assert.Equal(t, tt.want, string(id.Bytes))
		})
	}
}

func TestForValueScalarsAreDistinct(t *testing.T) {
	// Distinct scalar arguments must never share an identity; collapsing
	// them would merge unrelated cases into one collision bucket.
	assert.False(t, ForValue(1).Equal(ForValue(2)))
	assert.True(t, ForValue(1).Equal(ForValue(1)))
	assert.False(t, ForValue("1").Equal(ForValue(1)))
}

func TestForValueSliceCanonicalized(t *testing.T) {
	id := ForValue([]any{map[string]int{"b": 2, "a": 1}, 3})
	require.True(t, id.Stable)
	assert.Equal(t, `[{"a":1,"b":2},3]`, string(id.Bytes))
}

func TestEqualDistinguishesStability(t *testing.T) {
	assert.False(t, Stable(nil).Equal(Unstable()))
	assert.True(t, Unstable().Equal(Unstable()))
}
