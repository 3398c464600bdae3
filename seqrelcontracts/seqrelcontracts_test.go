package seqrelcontracts_test

import (
	"testing"

	"go.llib.dev/seqrel"
	"go.llib.dev/seqrel/seqrelcontracts"
	"go.llib.dev/testcase"
)

func intSubject(tb testing.TB) seqrelcontracts.Subject[int] {
	return seqrelcontracts.Subject[int]{
		MakeSequence: func(t *testcase.T) []int {
			var vs []int
			t.Random.Repeat(1, 7, func() {
				vs = append(vs, t.Random.IntB(0, 9))
			})
			return vs
		},
		MakeElement: func(t *testcase.T) int {
			return t.Random.IntB(0, 9)
		},
		Equal: seqrel.Eq[int](),
	}
}

func stringSubject(tb testing.TB) seqrelcontracts.Subject[string] {
	return seqrelcontracts.Subject[string]{
		MakeSequence: func(t *testcase.T) []string {
			var vs []string
			t.Random.Repeat(1, 7, func() {
				vs = append(vs, t.Random.StringNC(1, "abc"))
			})
			return vs
		},
		MakeElement: func(t *testcase.T) string {
			return t.Random.StringNC(1, "abc")
		},
		Equal: seqrel.Eq[string](),
	}
}

func TestLaws_int(t *testing.T) {
	seqrelcontracts.SuiteFor[int](intSubject).Test(t)
}

func TestLaws_string(t *testing.T) {
	seqrelcontracts.SuiteFor[string](stringSubject).Test(t)
}

func TestReflexivity_standalone(t *testing.T) {
	seqrelcontracts.Reflexivity[int](intSubject).Test(t)
}
