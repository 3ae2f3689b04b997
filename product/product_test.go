package product

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestProductSizeAndOrder(t *testing.T) {
	p := New(letters(26), numbers(100))

	assert.Equal(t, 2600, p.Len())

	count := 0
	var firstA string
	firstB := -1
	for a, b := range p.All() {
		if count == 0 {
			firstA, firstB = a, b
		}
		count++
	}
	assert.Equal(t, 2600, count)
	assert.Equal(t, "A", firstA)
	assert.Equal(t, 0, firstB)
}

func TestProductIsFirstMajor(t *testing.T) {
	p := New([]int{1, 2}, []string{"a", "b"})

	type pair struct {
		a int
		b string
	}
	var got []pair
	for a, b := range p.All() {
		got = append(got, pair{a, b})
	}
	want := []pair{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}}
	assert.Equal(t, want, got)
}

func TestProductEmptiness(t *testing.T) {
	tests := []struct {
		name   string
		first  []string
		second []int
	}{
		{"empty first", nil, numbers(100)},
		{"empty second", letters(26), nil},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.first, tt.second)
			assert.Equal(t, 0, p.Len())
			for range p.All() {
				t.Fatal("product of an empty input must be empty")
			}
		})
	}
}

func TestProductRestartability(t *testing.T) {
	p := New(numbers(26), numbers(100))

	sum := func() int {
		total := 0
		for a, b := range p.All() {
			total += a * b
		}
		return total
	}

	first := sum()
	require.Equal(t, first, sum(), "second traversal must match")

	var wg sync.WaitGroup
	totals := make([]int, 8)
	for i := range totals {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			totals[i] = sum()
		}(i)
	}
	wg.Wait()
	for _, total := range totals {
		assert.Equal(t, first, total)
	}
}

func TestProductEarlyBreak(t *testing.T) {
	p := New(numbers(10), numbers(10))
	count := 0
	for range p.All() {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)

	// Breaking one traversal does not affect a later one.
	count = 0
	for range p.All() {
		count++
	}
	assert.Equal(t, 100, count)
}

func TestUnderestimatedCountSaturates(t *testing.T) {
	// 2^32 * 2^32 overflows int64; the count must clamp, not wrap.
	huge := make([]struct{}, 1<<32)
	p := New(huge, huge)
	assert.Equal(t, math.MaxInt, p.UnderestimatedCount())
	assert.Equal(t, math.MaxInt, p.Len())
}

func TestCountExactBelowSaturation(t *testing.T) {
	big := make([]struct{}, math.MaxInt32)
	p := New(big, big)
	want := math.MaxInt32 * math.MaxInt32
	assert.Equal(t, want, p.UnderestimatedCount())
}

func TestCollect(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, Collect(seq))
}
