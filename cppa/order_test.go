package cppa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orders_test exercises the unexported strategy machinery directly; the
// exported surface is covered via the solver tests.

// assertPermutation fails unless order is a permutation of 0..m-1.
func assertPermutation(t *testing.T, order []int, m int) {
	t.Helper()
	require.Len(t, order, m, "order must cover all indices")
	seen := make([]bool, m)
	for _, k := range order {
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, m)
		require.False(t, seen[k], "duplicate index %d", k)
		seen[k] = true
	}
}

// TestNextOrder_PermutationInvariant verifies that every strategy yields
// a permutation at initialization and across many iterations.
func TestNextOrder_PermutationInvariant(t *testing.T) {
	const m = 7
	for _, strategy := range []OrderStrategy{Linear, Random, FixedRandom} {
		rng := rngFromSeed(42)
		order := nextOrder(identityOrder(m), 0, strategy, rng)
		assertPermutation(t, order, m)
		for iter := 1; iter <= 50; iter++ {
			order = nextOrder(order, iter, strategy, rng)
			assertPermutation(t, order, m)
		}
	}
}

// TestNextOrder_LinearIsIdentity verifies Linear never deviates from
// the identity, including at initialization.
func TestNextOrder_LinearIsIdentity(t *testing.T) {
	const m = 5
	rng := rngFromSeed(1)
	order := nextOrder(identityOrder(m), 0, Linear, rng)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	for iter := 1; iter <= 10; iter++ {
		order = nextOrder(order, iter, Linear, rng)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	}
}

// TestNextOrder_FixedRandomFreezes verifies FixedRandom shuffles exactly
// once, at iteration 0, and then retains the order.
func TestNextOrder_FixedRandomFreezes(t *testing.T) {
	const m = 16
	rng := rngFromSeed(7)
	first := nextOrder(identityOrder(m), 0, FixedRandom, rng)
	assertPermutation(t, first, m)

	order := first
	for iter := 1; iter <= 20; iter++ {
		order = nextOrder(order, iter, FixedRandom, rng)
		assert.Equal(t, first, order, "order must stay frozen after iteration 0")
	}
}

// TestNextOrder_RandomReshuffles verifies Random draws fresh
// permutations and leaves the previous slice untouched.
func TestNextOrder_RandomReshuffles(t *testing.T) {
	const m = 16
	rng := rngFromSeed(7)
	prev := identityOrder(m)
	order := nextOrder(prev, 0, Random, rng)
	assert.Equal(t, identityOrder(m), prev, "previous order must not be mutated")

	// With m=16 a repeat of the exact same permutation across 10 draws
	// is practically impossible; seeded, so the test is deterministic.
	changed := false
	for iter := 1; iter <= 10; iter++ {
		next := nextOrder(order, iter, Random, rng)
		assertPermutation(t, next, m)
		if !assert.ObjectsAreEqual(order, next) {
			changed = true
		}
		order = next
	}
	assert.True(t, changed, "Random must produce differing permutations")
}

// TestNextOrder_SameSeedSameSequence verifies reproducibility of the
// random strategies under an identical seed.
func TestNextOrder_SameSeedSameSequence(t *testing.T) {
	const m = 9
	a, b := rngFromSeed(123), rngFromSeed(123)
	oa := nextOrder(identityOrder(m), 0, Random, a)
	ob := nextOrder(identityOrder(m), 0, Random, b)
	for iter := 1; iter <= 25; iter++ {
		assert.Equal(t, oa, ob, "same seed must yield identical orders at iter %d", iter)
		oa = nextOrder(oa, iter, Random, a)
		ob = nextOrder(ob, iter, Random, b)
	}
}

// TestRNGFromSeed_ZeroPolicy verifies seed 0 maps to the fixed default
// stream.
func TestRNGFromSeed_ZeroPolicy(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	assert.Equal(t, a.Int63(), b.Int63(), "seed 0 must alias the default seed")
}

// TestOrderStrategy_String covers the diagnostic names.
func TestOrderStrategy_String(t *testing.T) {
	assert.Equal(t, "Linear", Linear.String())
	assert.Equal(t, "Random", Random.String())
	assert.Equal(t, "FixedRandom", FixedRandom.String())
	assert.Equal(t, "Unknown", OrderStrategy(99).String())
}
