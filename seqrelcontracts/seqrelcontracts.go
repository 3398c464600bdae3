// Package seqrelcontracts provides reusable test suites for the laws of the
// sequence relations, parameterized by the element type.
//
// A contract receives a subject factory and replays the relation laws with
// sequences built from the subject's generators. Implementations that embed
// or wrap the seqrel predicates for a concrete element type can use these
// suites to verify that the laws survive the wrapping.
package seqrelcontracts

import (
	"testing"

	"go.llib.dev/seqrel"
	"go.llib.dev/testcase"
)

// Subject supplies the element type specific inputs of the law suites.
type Subject[T any] struct {
	// MakeSequence returns a random sequence of the element type.
	MakeSequence func(t *testcase.T) []T
	// MakeElement returns a random element.
	MakeElement func(t *testcase.T) T
	// Equal is the element equality the relations are checked with.
	Equal seqrel.EqFunc[T]
}

func concat[T any](vs ...[]T) []T {
	var out []T
	for _, v := range vs {
		out = append(out, v...)
	}
	return out
}

func equalSeq[T any](sub Subject[T], a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sub.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// distinctPair returns two elements the subject's equality tells apart.
// The second return value is false when the element type looks single-valued.
func distinctPair[T any](t *testcase.T, sub Subject[T]) (T, T, bool) {
	a := sub.MakeElement(t)
	for i := 0; i < 64; i++ {
		b := sub.MakeElement(t)
		if !sub.Equal(a, b) {
			return a, b, true
		}
	}
	var zero T
	return a, zero, false
}

// Reflexivity asserts that all four relations relate every sequence to itself.
type Reflexivity[T any] func(tb testing.TB) Subject[T]

func (c Reflexivity[T]) Name() string { return "Reflexivity" }

func (c Reflexivity[T]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Reflexivity[T]) subject() testcase.Var[Subject[T]] {
	return testcase.Var[Subject[T]]{
		ID: "seqrelcontracts.Subject",
		Init: func(t *testcase.T) Subject[T] {
			return c(t)
		},
	}
}

func (c Reflexivity[T]) Spec(s *testcase.Spec) {
	s.Context(c.Name(), func(s *testcase.Spec) {
		var l = testcase.Let(s, func(t *testcase.T) []T {
			return c.subject().Get(t).MakeSequence(t)
		})

		s.Then("every sequence is a prefix of itself", func(t *testcase.T) {
			t.Must.True(seqrel.IsPrefixFunc(l.Get(t), l.Get(t), c.subject().Get(t).Equal))
		})

		s.Then("every sequence is a suffix of itself", func(t *testcase.T) {
			t.Must.True(seqrel.IsSuffixFunc(l.Get(t), l.Get(t), c.subject().Get(t).Equal))
		})

		s.Then("every sequence is a sublist of itself", func(t *testcase.T) {
			t.Must.True(seqrel.IsSublistFunc(l.Get(t), l.Get(t), c.subject().Get(t).Equal))
		})

		s.Then("every sequence is a subsequence of itself", func(t *testcase.T) {
			t.Must.True(seqrel.IsSubsequenceFunc(l.Get(t), l.Get(t), c.subject().Get(t).Equal))
		})

		s.Then("the reflexivity derivations report the sequence as both endpoints", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				vs  = l.Get(t)
			)
			t.Must.True(equalSeq(sub, vs, seqrel.SelfPrefix(vs).Part()))
			t.Must.True(equalSeq(sub, vs, seqrel.SelfSuffix(vs).Whole()))
			t.Must.True(equalSeq(sub, vs, seqrel.SelfSublist(vs).Part()))
			t.Must.True(equalSeq(sub, vs, seqrel.SelfSubsequence(vs).Whole()))
		})
	})
}

// EmptyAbsorption asserts the laws of the empty sequence.
type EmptyAbsorption[T any] func(tb testing.TB) Subject[T]

func (c EmptyAbsorption[T]) Name() string { return "EmptyAbsorption" }

func (c EmptyAbsorption[T]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c EmptyAbsorption[T]) subject() testcase.Var[Subject[T]] {
	return testcase.Var[Subject[T]]{
		ID: "seqrelcontracts.Subject",
		Init: func(t *testcase.T) Subject[T] {
			return c(t)
		},
	}
}

func (c EmptyAbsorption[T]) Spec(s *testcase.Spec) {
	s.Context(c.Name(), func(s *testcase.Spec) {
		var l = testcase.Let(s, func(t *testcase.T) []T {
			return c.subject().Get(t).MakeSequence(t)
		})

		s.Then("the empty sequence is a prefix, sublist and subsequence of anything", func(t *testcase.T) {
			sub := c.subject().Get(t)
			t.Must.True(seqrel.IsPrefixFunc(nil, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSublistFunc(nil, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSubsequenceFunc(nil, l.Get(t), sub.Equal))
		})

		s.Then("only the empty sequence is a suffix of the empty sequence", func(t *testcase.T) {
			sub := c.subject().Get(t)
			t.Must.True(seqrel.IsSuffixFunc[T](nil, nil, sub.Equal))
			if 0 < len(l.Get(t)) {
				t.Must.False(seqrel.IsSuffixFunc(l.Get(t), nil, sub.Equal))
			}
		})
	})
}

// Hierarchy asserts the strict inclusion order of the four relations:
// prefix and suffix are sublists, sublists are subsequences,
// and none of the reverse directions holds in general.
type Hierarchy[T any] func(tb testing.TB) Subject[T]

func (c Hierarchy[T]) Name() string { return "Hierarchy" }

func (c Hierarchy[T]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Hierarchy[T]) subject() testcase.Var[Subject[T]] {
	return testcase.Var[Subject[T]]{
		ID: "seqrelcontracts.Subject",
		Init: func(t *testcase.T) Subject[T] {
			return c(t)
		},
	}
}

func (c Hierarchy[T]) Spec(s *testcase.Spec) {
	s.Context(c.Name(), func(s *testcase.Spec) {
		var l = testcase.Let(s, func(t *testcase.T) []T {
			return c.subject().Get(t).MakeSequence(t)
		})

		s.Then("a leading segment is a sublist and a subsequence", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				p   = l.Get(t)[:t.Random.IntN(len(l.Get(t))+1)]
			)
			t.Must.True(seqrel.IsPrefixFunc(p, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSublistFunc(p, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSubsequenceFunc(p, l.Get(t), sub.Equal))
		})

		s.Then("a trailing segment is a sublist and a subsequence", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				p   = l.Get(t)[t.Random.IntN(len(l.Get(t))+1):]
			)
			t.Must.True(seqrel.IsSuffixFunc(p, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSublistFunc(p, l.Get(t), sub.Equal))
			t.Must.True(seqrel.IsSubsequenceFunc(p, l.Get(t), sub.Equal))
		})

		s.Then("an interior run is a sublist and a subsequence", func(t *testcase.T) {
			var (
				sub  = c.subject().Get(t)
				vs   = l.Get(t)
				from = t.Random.IntN(len(vs) + 1)
				to   = t.Random.IntB(from, len(vs))
			)
			p := vs[from:to]
			t.Must.True(seqrel.IsSublistFunc(p, vs, sub.Equal))
			t.Must.True(seqrel.IsSubsequenceFunc(p, vs, sub.Equal))
		})

		s.Then("the inclusions are strict when the element type has two distinct values", func(t *testcase.T) {
			sub := c.subject().Get(t)
			a, b, ok := distinctPair(t, sub)
			if !ok {
				t.Skip("the element type looks single-valued, strictness is not observable")
			}

			// subsequence but not sublist
			t.Must.True(seqrel.IsSubsequenceFunc([]T{a, a}, []T{a, b, a}, sub.Equal))
			t.Must.False(seqrel.IsSublistFunc([]T{a, a}, []T{a, b, a}, sub.Equal))
			// sublist but not prefix, suffix but not prefix
			t.Must.True(seqrel.IsSublistFunc([]T{b}, []T{a, b}, sub.Equal))
			t.Must.True(seqrel.IsSuffixFunc([]T{b}, []T{a, b}, sub.Equal))
			t.Must.False(seqrel.IsPrefixFunc([]T{b}, []T{a, b}, sub.Equal))
			// prefix but not suffix
			t.Must.True(seqrel.IsPrefixFunc([]T{a}, []T{a, b}, sub.Equal))
			t.Must.False(seqrel.IsSuffixFunc([]T{a}, []T{a, b}, sub.Equal))
		})
	})
}

// WitnessForm asserts the equivalence of the inductive and the existential
// characterizations of the suffix relation.
type WitnessForm[T any] func(tb testing.TB) Subject[T]

func (c WitnessForm[T]) Name() string { return "WitnessForm" }

func (c WitnessForm[T]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c WitnessForm[T]) subject() testcase.Var[Subject[T]] {
	return testcase.Var[Subject[T]]{
		ID: "seqrelcontracts.Subject",
		Init: func(t *testcase.T) Subject[T] {
			return c(t)
		},
	}
}

func (c WitnessForm[T]) Spec(s *testcase.Spec) {
	s.Context(c.Name(), func(s *testcase.Spec) {
		var (
			l = testcase.Let(s, func(t *testcase.T) []T {
				return c.subject().Get(t).MakeSequence(t)
			})
			at = testcase.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(l.Get(t)) + 1)
			})
			suf = testcase.Let(s, func(t *testcase.T) []T {
				return l.Get(t)[at.Get(t):]
			})
		)

		s.Then("the witness split reassembles the container", func(t *testcase.T) {
			sub := c.subject().Get(t)
			b, ok := seqrel.SuffixSplitFunc(suf.Get(t), l.Get(t), sub.Equal)
			t.Must.True(ok)
			t.Must.True(equalSeq(sub, l.Get(t), concat(b, suf.Get(t))))
		})

		s.Then("the witness length is forced by the relation, so the witness is unique", func(t *testcase.T) {
			sub := c.subject().Get(t)
			b, ok := seqrel.SuffixSplitFunc(suf.Get(t), l.Get(t), sub.Equal)
			t.Must.True(ok)
			t.Must.Equal(len(l.Get(t))-len(suf.Get(t)), len(b))
		})

		s.Then("a derivation's witness and a witness' derivation are inverses", func(t *testcase.T) {
			sub := c.subject().Get(t)
			d, ok := seqrel.DeriveSuffixFunc(suf.Get(t), l.Get(t), sub.Equal)
			t.Must.True(ok)
			t.Must.True(equalSeq(sub, l.Get(t)[:at.Get(t)], d.Witness()))

			back := seqrel.SuffixFromWitness(d.Witness(), suf.Get(t))
			t.Must.True(equalSeq(sub, l.Get(t), back.Whole()))
			t.Must.True(equalSeq(sub, suf.Get(t), back.Part()))
		})
	})
}

// AppendLaws asserts the compositional laws of concatenation.
type AppendLaws[T any] func(tb testing.TB) Subject[T]

func (c AppendLaws[T]) Name() string { return "AppendLaws" }

func (c AppendLaws[T]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c AppendLaws[T]) subject() testcase.Var[Subject[T]] {
	return testcase.Var[Subject[T]]{
		ID: "seqrelcontracts.Subject",
		Init: func(t *testcase.T) Subject[T] {
			return c(t)
		},
	}
}

func (c AppendLaws[T]) Spec(s *testcase.Spec) {
	s.Context(c.Name(), func(s *testcase.Spec) {
		var (
			l1 = testcase.Let(s, func(t *testcase.T) []T {
				return c.subject().Get(t).MakeSequence(t)
			})
			l2 = testcase.Let(s, func(t *testcase.T) []T {
				return c.subject().Get(t).MakeSequence(t)
			})
		)

		s.Then("concatenation preserves the subsequence relation", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				p1  = pickScattered(t, l1.Get(t))
				p2  = pickScattered(t, l2.Get(t))
			)
			t.Must.True(seqrel.IsSubsequenceFunc(concat(p1, p2), concat(l1.Get(t), l2.Get(t)), sub.Equal))
		})

		s.Then("a suffix of one and a prefix of another concatenate into a sublist", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				p1  = l1.Get(t)[t.Random.IntN(len(l1.Get(t))+1):]
				p2  = l2.Get(t)[:t.Random.IntN(len(l2.Get(t))+1)]
			)
			t.Must.True(seqrel.IsSublistFunc(concat(p1, p2), concat(l1.Get(t), l2.Get(t)), sub.Equal))
		})

		s.Then("prepending the same sequence to both sides preserves the prefix relation", func(t *testcase.T) {
			var (
				sub = c.subject().Get(t)
				b   = c.subject().Get(t).MakeSequence(t)
				p2  = l2.Get(t)[:t.Random.IntN(len(l2.Get(t))+1)]
			)
			t.Must.True(seqrel.IsPrefixFunc(concat(b, p2), concat(b, l2.Get(t)), sub.Equal))
		})
	})
}

// pickScattered selects a random scattered subsequence of l.
func pickScattered[T any](t *testcase.T, l []T) []T {
	var p []T
	for _, v := range l {
		if t.Random.Bool() {
			p = append(p, v)
		}
	}
	return p
}
