package seqrel

// A derivation is a chain of the inductive rules that define a relation.
// Values are only obtainable through the rule constructors below,
// so holding a derivation is holding evidence that the relation
// between Part() and Whole() holds.
//
// Derivations are immutable once built and may share structure,
// a lemma is free to reuse the chain of its input.

type derivationRule uint8

const (
	// ruleNil: the empty sequence relates to any container.
	ruleNil derivationRule = iota
	// ruleCons: the shared head is consumed on both sides.
	ruleCons
	// ruleSkip: the container's head is consumed, the part is unchanged.
	ruleSkip
	// ruleRefl: a sequence relates to itself.
	ruleRefl
	// rulePrefix: a prefix derivation embedded as a sublist at offset zero.
	rulePrefix
)

// PrefixDerivation is evidence for one instance of the prefix relation:
// Part() is an initial contiguous segment of Whole().
type PrefixDerivation[T any] struct {
	rule derivationRule
	elem T
	next *PrefixDerivation[T]
	rest []T
}

// PrefixNil is the base rule: the empty sequence is a prefix of any l.
func PrefixNil[T any](l []T) *PrefixDerivation[T] {
	return &PrefixDerivation[T]{rule: ruleNil, rest: l}
}

// PrefixCons extends a prefix derivation with a shared head:
// from Prefix(p, l) it concludes Prefix(a:p, a:l).
// d must not be nil.
func PrefixCons[T any](a T, d *PrefixDerivation[T]) *PrefixDerivation[T] {
	return &PrefixDerivation[T]{rule: ruleCons, elem: a, next: d}
}

// Part returns the prefix this derivation proves.
func (d *PrefixDerivation[T]) Part() []T {
	var out []T
	for ; d.rule == ruleCons; d = d.next {
		out = append(out, d.elem)
	}
	return out
}

// Whole returns the containing sequence of this derivation.
func (d *PrefixDerivation[T]) Whole() []T {
	var out []T
	for ; d.rule == ruleCons; d = d.next {
		out = append(out, d.elem)
	}
	return append(out, d.rest...)
}

// SuffixDerivation is evidence for one instance of the suffix relation:
// Part() is a terminal contiguous segment of Whole().
type SuffixDerivation[T any] struct {
	rule derivationRule
	elem T
	next *SuffixDerivation[T]
	rest []T
}

// SuffixRefl is the base rule: every sequence is a suffix of itself.
func SuffixRefl[T any](l []T) *SuffixDerivation[T] {
	return &SuffixDerivation[T]{rule: ruleRefl, rest: l}
}

// SuffixSkip grows the container leftward by one element:
// from Suffix(s, l) it concludes Suffix(s, a:l).
// d must not be nil.
func SuffixSkip[T any](a T, d *SuffixDerivation[T]) *SuffixDerivation[T] {
	return &SuffixDerivation[T]{rule: ruleSkip, elem: a, next: d}
}

// Part returns the suffix this derivation proves.
func (d *SuffixDerivation[T]) Part() []T {
	for ; d.rule == ruleSkip; d = d.next {
	}
	return d.rest
}

// Whole returns the containing sequence of this derivation.
func (d *SuffixDerivation[T]) Whole() []T {
	var out []T
	for ; d.rule == ruleSkip; d = d.next {
		out = append(out, d.elem)
	}
	return append(out, d.rest...)
}

// Witness returns the complementary prefix b for which b ++ Part() == Whole().
// It is the existential witness of the suffix relation,
// unique because its length is forced to len(Whole()) - len(Part()).
func (d *SuffixDerivation[T]) Witness() []T {
	var out []T
	for ; d.rule == ruleSkip; d = d.next {
		out = append(out, d.elem)
	}
	return out
}

// SublistDerivation is evidence for one instance of the sublist relation:
// Part() occurs as a contiguous run somewhere inside Whole().
type SublistDerivation[T any] struct {
	rule derivationRule
	elem T
	next *SublistDerivation[T]
	pre  *PrefixDerivation[T]
}

// SublistPrefix is the base rule: every prefix is a sublist.
// pd must not be nil.
func SublistPrefix[T any](pd *PrefixDerivation[T]) *SublistDerivation[T] {
	return &SublistDerivation[T]{rule: rulePrefix, pre: pd}
}

// SublistSkip grows the container leftward by one element:
// from Sublist(p, l) it concludes Sublist(p, a:l).
// d must not be nil.
func SublistSkip[T any](a T, d *SublistDerivation[T]) *SublistDerivation[T] {
	return &SublistDerivation[T]{rule: ruleSkip, elem: a, next: d}
}

// Part returns the sublist this derivation proves.
func (d *SublistDerivation[T]) Part() []T {
	for ; d.rule == ruleSkip; d = d.next {
	}
	return d.pre.Part()
}

// Whole returns the containing sequence of this derivation.
func (d *SublistDerivation[T]) Whole() []T {
	var out []T
	for ; d.rule == ruleSkip; d = d.next {
		out = append(out, d.elem)
	}
	return append(out, d.pre.Whole()...)
}

// SubsequenceDerivation is evidence for one instance of the subsequence
// relation: Part() can be obtained from Whole() by deleting zero or more
// elements without reordering the remainder.
type SubsequenceDerivation[T any] struct {
	rule derivationRule
	elem T
	next *SubsequenceDerivation[T]
	rest []T
}

// SubsequenceNil is the base rule:
// the empty sequence is a subsequence of any l.
func SubsequenceNil[T any](l []T) *SubsequenceDerivation[T] {
	return &SubsequenceDerivation[T]{rule: ruleNil, rest: l}
}

// SubsequenceMatch consumes a shared head on both sides:
// from Subsequence(p, l) it concludes Subsequence(a:p, a:l).
// d must not be nil.
func SubsequenceMatch[T any](a T, d *SubsequenceDerivation[T]) *SubsequenceDerivation[T] {
	return &SubsequenceDerivation[T]{rule: ruleCons, elem: a, next: d}
}

// SubsequenceSkip consumes the container's head only:
// from Subsequence(p, l) it concludes Subsequence(p, a:l).
// d must not be nil.
func SubsequenceSkip[T any](a T, d *SubsequenceDerivation[T]) *SubsequenceDerivation[T] {
	return &SubsequenceDerivation[T]{rule: ruleSkip, elem: a, next: d}
}

// Part returns the subsequence this derivation proves.
func (d *SubsequenceDerivation[T]) Part() []T {
	var out []T
	for ; d.rule != ruleNil; d = d.next {
		if d.rule == ruleCons {
			out = append(out, d.elem)
		}
	}
	return out
}

// Whole returns the containing sequence of this derivation.
func (d *SubsequenceDerivation[T]) Whole() []T {
	var out []T
	for ; d.rule != ruleNil; d = d.next {
		out = append(out, d.elem)
	}
	return append(out, d.rest...)
}
