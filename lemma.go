package seqrel

// The lemma functions below transform derivations into derivations.
// Because derivations are only obtainable through the rule constructors,
// each lemma's conclusion is correct by construction:
// the endpoints of the returned derivation are exactly the ones
// the lemma statement promises for the endpoints of its inputs.
// None of them needs element equality, the evidence carries everything.

// SelfPrefix proves Prefix(l, l): every sequence is a prefix of itself.
func SelfPrefix[T any](l []T) *PrefixDerivation[T] {
	d := PrefixNil[T](nil)
	for i := len(l) - 1; i >= 0; i-- {
		d = PrefixCons(l[i], d)
	}
	return d
}

// SelfSuffix proves Suffix(l, l).
func SelfSuffix[T any](l []T) *SuffixDerivation[T] {
	return SuffixRefl(l)
}

// SelfSublist proves Sublist(l, l).
func SelfSublist[T any](l []T) *SublistDerivation[T] {
	return SublistPrefix(SelfPrefix(l))
}

// SelfSubsequence proves Subsequence(l, l).
func SelfSubsequence[T any](l []T) *SubsequenceDerivation[T] {
	return PrefixToSubsequence(SelfPrefix(l))
}

// PrefixToSubsequence proves that every prefix is a subsequence:
// from Prefix(p, l) it concludes Subsequence(p, l).
// Each shared-head step of the prefix derivation becomes a match step,
// the container remainder past the prefix is absorbed by the base rule.
func PrefixToSubsequence[T any](d *PrefixDerivation[T]) *SubsequenceDerivation[T] {
	var heads []T
	for ; d.rule == ruleCons; d = d.next {
		heads = append(heads, d.elem)
	}
	out := SubsequenceNil[T](d.rest)
	for i := len(heads) - 1; i >= 0; i-- {
		out = SubsequenceMatch(heads[i], out)
	}
	return out
}

// PrefixToSublist proves that every prefix is a sublist:
// from Prefix(p, l) it concludes Sublist(p, l).
func PrefixToSublist[T any](d *PrefixDerivation[T]) *SublistDerivation[T] {
	return SublistPrefix(d)
}

// SuffixToSublist proves that every suffix is a sublist:
// from Suffix(s, l) it concludes Sublist(s, l).
// The reflexive base becomes a prefix-of-itself sublist,
// every skipped head stays a skipped head.
func SuffixToSublist[T any](d *SuffixDerivation[T]) *SublistDerivation[T] {
	var heads []T
	for ; d.rule == ruleSkip; d = d.next {
		heads = append(heads, d.elem)
	}
	out := SublistPrefix(SelfPrefix(d.rest))
	for i := len(heads) - 1; i >= 0; i-- {
		out = SublistSkip(heads[i], out)
	}
	return out
}

// SublistToSubsequence proves that every sublist is a subsequence:
// from Sublist(p, l) it concludes Subsequence(p, l).
func SublistToSubsequence[T any](d *SublistDerivation[T]) *SubsequenceDerivation[T] {
	var heads []T
	for ; d.rule == ruleSkip; d = d.next {
		heads = append(heads, d.elem)
	}
	out := PrefixToSubsequence(d.pre)
	for i := len(heads) - 1; i >= 0; i-- {
		out = SubsequenceSkip(heads[i], out)
	}
	return out
}

// ConcatSubsequences proves that concatenation preserves the subsequence
// relation: from Subsequence(p1, l1) and Subsequence(p2, l2) it concludes
// Subsequence(p1 ++ p2, l1 ++ l2).
// The base rule of d1 is replaced by skip steps over its absorbed remainder,
// followed by the whole of d2, which is shared, not copied.
func ConcatSubsequences[T any](d1, d2 *SubsequenceDerivation[T]) *SubsequenceDerivation[T] {
	type step struct {
		match bool
		elem  T
	}
	var steps []step
	for ; d1.rule != ruleNil; d1 = d1.next {
		steps = append(steps, step{match: d1.rule == ruleCons, elem: d1.elem})
	}
	for _, a := range d1.rest {
		steps = append(steps, step{match: false, elem: a})
	}
	out := d2
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].match {
			out = SubsequenceMatch(steps[i].elem, out)
		} else {
			out = SubsequenceSkip(steps[i].elem, out)
		}
	}
	return out
}

// PrependToPrefix proves the left congruence of the prefix relation:
// from Prefix(p, l) it concludes Prefix(b ++ p, b ++ l) for any b.
func PrependToPrefix[T any](b []T, d *PrefixDerivation[T]) *PrefixDerivation[T] {
	for i := len(b) - 1; i >= 0; i-- {
		d = PrefixCons(b[i], d)
	}
	return d
}

// PrependToSuffix proves that growing the container leftward by a whole
// sequence preserves suffix-hood:
// from Suffix(s, l) it concludes Suffix(s, b ++ l) for any b.
func PrependToSuffix[T any](b []T, d *SuffixDerivation[T]) *SuffixDerivation[T] {
	for i := len(b) - 1; i >= 0; i-- {
		d = SuffixSkip(b[i], d)
	}
	return d
}

// SuffixFromWitness is the backward direction of the witness equivalence:
// a concrete split b ++ s yields the derivation of Suffix(s, b ++ s).
// Together with SuffixDerivation.Witness it proves that the inductive and
// the existential characterizations of the suffix relation coincide.
func SuffixFromWitness[T any](b, s []T) *SuffixDerivation[T] {
	return PrependToSuffix(b, SuffixRefl(s))
}

// SuffixDecomposition proves that the witness of a suffix relation is itself
// a prefix of the container: from Suffix(s, l) it concludes Prefix(b, l)
// for the unique b with b ++ s == l.
func SuffixDecomposition[T any](d *SuffixDerivation[T]) *PrefixDerivation[T] {
	var heads []T
	for ; d.rule == ruleSkip; d = d.next {
		heads = append(heads, d.elem)
	}
	out := PrefixNil[T](d.rest)
	for i := len(heads) - 1; i >= 0; i-- {
		out = PrefixCons(heads[i], out)
	}
	return out
}

// JoinSuffixPrefix proves the richest compositional statement of the package:
// from Suffix(p1, l1) and Prefix(p2, l2) it concludes
// Sublist(p1 ++ p2, l1 ++ l2).
// With l1 == b ++ p1, the run p1 ++ p2 starts at offset len(b)
// of the concatenation, as the prefix p1 ++ p2 of p1 ++ l2.
func JoinSuffixPrefix[T any](ds *SuffixDerivation[T], dp *PrefixDerivation[T]) *SublistDerivation[T] {
	var heads []T
	for ; ds.rule == ruleSkip; ds = ds.next {
		heads = append(heads, ds.elem)
	}
	out := SublistPrefix(PrependToPrefix(ds.rest, dp))
	for i := len(heads) - 1; i >= 0; i-- {
		out = SublistSkip(heads[i], out)
	}
	return out
}
