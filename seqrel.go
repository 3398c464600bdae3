// Package seqrel implements four classic relations over finite sequences:
// prefix, suffix, sublist and subsequence.
//
// Every relation is available in two forms.
// The Is* functions are iterative decision procedures that answer
// whether a relation holds between two slices.
// The Derive* functions build a derivation value instead,
// a chain of the inductive rules that define the relation,
// which keeps the evidence of why the relation holds.
// Derivations can be transformed with the lemma functions of this package,
// for example a prefix derivation can be turned into a subsequence derivation,
// or two subsequence derivations can be concatenated into one.
//
// Sequences are plain Go slices.
// Functions in this package never mutate or retain their slice arguments,
// and a nil slice is the same sequence as an empty one.
package seqrel

// EqFunc defines when two elements of a sequence are considered equal.
//
// An EqFunc must be reflexive, symmetric and transitive,
// otherwise the relations of this package lose their meaning.
type EqFunc[T any] func(a, b T) bool

// Eq returns the EqFunc of a comparable type, which is the == operator.
func Eq[T comparable]() EqFunc[T] {
	return func(a, b T) bool { return a == b }
}

// seqEqual reports whether the two sequences are element-wise equal.
func seqEqual[T any](a, b []T, eq EqFunc[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
