package seqrel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.llib.dev/seqrel"
	"go.llib.dev/testcase/assert"
)

// assertEndpoints verifies the two sequences a derivation claims to relate.
// Nil and empty sequences are the same sequence, hence the EquateEmpty option.
func assertEndpoints[T any](tb testing.TB, part, whole []T, d interface {
	Part() []T
	Whole() []T
}) {
	tb.Helper()
	if diff := cmp.Diff(part, d.Part(), cmpopts.EquateEmpty()); diff != "" {
		tb.Fatalf("derivation part mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(whole, d.Whole(), cmpopts.EquateEmpty()); diff != "" {
		tb.Fatalf("derivation whole mismatch (-want +got):\n%s", diff)
	}
}

func TestPrefixDerivation(t *testing.T) {
	t.Run("base rule", func(t *testing.T) {
		d := seqrel.PrefixNil([]int{1, 2, 3})
		assertEndpoints(t, nil, []int{1, 2, 3}, d)
	})
	t.Run("rule chain", func(t *testing.T) {
		d := seqrel.PrefixCons(1, seqrel.PrefixCons(2, seqrel.PrefixNil([]int{3})))
		assertEndpoints(t, []int{1, 2}, []int{1, 2, 3}, d)
	})
}

func TestSuffixDerivation(t *testing.T) {
	t.Run("base rule is reflexivity", func(t *testing.T) {
		d := seqrel.SuffixRefl([]int{1, 2})
		assertEndpoints(t, []int{1, 2}, []int{1, 2}, d)
		assert.Empty(t, d.Witness())
	})
	t.Run("each skip grows the container and the witness", func(t *testing.T) {
		d := seqrel.SuffixSkip(1, seqrel.SuffixSkip(2, seqrel.SuffixRefl([]int{3})))
		assertEndpoints(t, []int{3}, []int{1, 2, 3}, d)
		assert.Equal(t, []int{1, 2}, d.Witness())
	})
}

func TestSublistDerivation(t *testing.T) {
	t.Run("base rule embeds a prefix derivation", func(t *testing.T) {
		pd := seqrel.PrefixCons(2, seqrel.PrefixNil([]int{3}))
		d := seqrel.SublistPrefix(pd)
		assertEndpoints(t, []int{2}, []int{2, 3}, d)
	})
	t.Run("skips shift the run to an interior offset", func(t *testing.T) {
		pd := seqrel.PrefixCons(2, seqrel.PrefixNil([]int{3}))
		d := seqrel.SublistSkip(1, seqrel.SublistPrefix(pd))
		assertEndpoints(t, []int{2}, []int{1, 2, 3}, d)
	})
}

func TestSubsequenceDerivation(t *testing.T) {
	t.Run("base rule", func(t *testing.T) {
		d := seqrel.SubsequenceNil([]int{1, 2})
		assertEndpoints(t, nil, []int{1, 2}, d)
	})
	t.Run("match and skip interleave", func(t *testing.T) {
		d := seqrel.SubsequenceMatch(1,
			seqrel.SubsequenceSkip(2,
				seqrel.SubsequenceMatch(3,
					seqrel.SubsequenceNil([]int{4}))))
		assertEndpoints(t, []int{1, 3}, []int{1, 2, 3, 4}, d)
	})
}

func TestDerive(t *testing.T) {
	t.Run("prefix", func(t *testing.T) {
		d, ok := seqrel.DerivePrefix([]int{1, 2}, []int{1, 2, 3})
		assert.True(t, ok)
		assertEndpoints(t, []int{1, 2}, []int{1, 2, 3}, d)

		_, ok = seqrel.DerivePrefix([]int{2}, []int{1, 2, 3})
		assert.False(t, ok)
	})
	t.Run("suffix", func(t *testing.T) {
		d, ok := seqrel.DeriveSuffix([]int{3}, []int{1, 2, 3})
		assert.True(t, ok)
		assertEndpoints(t, []int{3}, []int{1, 2, 3}, d)
		assert.Equal(t, []int{1, 2}, d.Witness())

		_, ok = seqrel.DeriveSuffix([]int{1}, []int{1, 2, 3})
		assert.False(t, ok)
	})
	t.Run("sublist", func(t *testing.T) {
		d, ok := seqrel.DeriveSublist([]int{2, 3}, []int{1, 2, 3, 4})
		assert.True(t, ok)
		assertEndpoints(t, []int{2, 3}, []int{1, 2, 3, 4}, d)

		_, ok = seqrel.DeriveSublist([]int{1, 3}, []int{1, 2, 3})
		assert.False(t, ok)
	})
	t.Run("subsequence", func(t *testing.T) {
		d, ok := seqrel.DeriveSubsequence([]int{1, 3}, []int{1, 2, 3, 4})
		assert.True(t, ok)
		assertEndpoints(t, []int{1, 3}, []int{1, 2, 3, 4}, d)

		_, ok = seqrel.DeriveSubsequence([]int{3, 1}, []int{1, 2, 3})
		assert.False(t, ok)
	})
	t.Run("derivations agree with the decision procedures on random input", func(t *testing.T) {
		rnd.Repeat(25, 50, func() {
			var p, l []int
			for i, n := 0, rnd.IntN(4); i < n; i++ {
				p = append(p, rnd.IntB(0, 3))
			}
			for i, n := 0, rnd.IntN(8); i < n; i++ {
				l = append(l, rnd.IntB(0, 3))
			}

			_, ok := seqrel.DerivePrefix(p, l)
			assert.Equal(t, seqrel.IsPrefix(p, l), ok)
			_, ok = seqrel.DeriveSuffix(p, l)
			assert.Equal(t, seqrel.IsSuffix(p, l), ok)
			_, ok = seqrel.DeriveSublist(p, l)
			assert.Equal(t, seqrel.IsSublist(p, l), ok)
			_, ok = seqrel.DeriveSubsequence(p, l)
			assert.Equal(t, seqrel.IsSubsequence(p, l), ok)
		})
	})
}
