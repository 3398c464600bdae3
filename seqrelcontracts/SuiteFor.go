package seqrelcontracts

import (
	"testing"

	"go.llib.dev/testcase"
)

// SuiteFor aggregates every law contract of the package into a single suite.
func SuiteFor[T any](makeSubject func(testing.TB) Subject[T]) Suite {
	return Suite{
		suites: []testcase.Suite{
			Reflexivity[T](makeSubject),
			EmptyAbsorption[T](makeSubject),
			Hierarchy[T](makeSubject),
			WitnessForm[T](makeSubject),
			AppendLaws[T](makeSubject),
		},
	}
}

// Suite runs a collection of law contracts together.
type Suite struct {
	suites []testcase.Suite
}

func (s Suite) Test(t *testing.T) {
	s.Spec(testcase.NewSpec(t))
}

func (s Suite) Spec(spec *testcase.Spec) {
	for _, suite := range s.suites {
		suite.Spec(spec)
	}
}
