package seqrel

// The Derive* functions decide a relation the same way the inductive rules
// define it: on success they return the rule chain itself.
// On a custom EqFunc the derivation is built from the elements of the
// containing sequence, which are interchangeable with the related part's
// elements up to the given equality.

// DerivePrefix builds a prefix derivation for Prefix(p, l).
// The second return value reports whether the relation holds,
// so DerivePrefix succeeds exactly when IsPrefix returns true.
func DerivePrefix[T comparable](p, l []T) (*PrefixDerivation[T], bool) {
	return DerivePrefixFunc(p, l, Eq[T]())
}

// DerivePrefixFunc is DerivePrefix with a caller supplied element equality.
func DerivePrefixFunc[T any](p, l []T, eq EqFunc[T]) (*PrefixDerivation[T], bool) {
	if !IsPrefixFunc(p, l, eq) {
		return nil, false
	}
	d := PrefixNil[T](l[len(p):])
	for i := len(p) - 1; i >= 0; i-- {
		d = PrefixCons(l[i], d)
	}
	return d, true
}

// DeriveSuffix builds a suffix derivation for Suffix(s, l).
func DeriveSuffix[T comparable](s, l []T) (*SuffixDerivation[T], bool) {
	return DeriveSuffixFunc(s, l, Eq[T]())
}

// DeriveSuffixFunc is DeriveSuffix with a caller supplied element equality.
func DeriveSuffixFunc[T any](s, l []T, eq EqFunc[T]) (*SuffixDerivation[T], bool) {
	if !IsSuffixFunc(s, l, eq) {
		return nil, false
	}
	off := len(l) - len(s)
	d := SuffixRefl(l[off:])
	for i := off - 1; i >= 0; i-- {
		d = SuffixSkip(l[i], d)
	}
	return d, true
}

// DeriveSublist builds a sublist derivation for Sublist(p, l),
// anchored at the leftmost offset where p occurs.
func DeriveSublist[T comparable](p, l []T) (*SublistDerivation[T], bool) {
	return DeriveSublistFunc(p, l, Eq[T]())
}

// DeriveSublistFunc is DeriveSublist with a caller supplied element equality.
func DeriveSublistFunc[T any](p, l []T, eq EqFunc[T]) (*SublistDerivation[T], bool) {
	for off := 0; off+len(p) <= len(l); off++ {
		pd, ok := DerivePrefixFunc(p, l[off:], eq)
		if !ok {
			continue
		}
		d := SublistPrefix(pd)
		for i := off - 1; i >= 0; i-- {
			d = SublistSkip(l[i], d)
		}
		return d, true
	}
	return nil, false
}

// DeriveSubsequence builds a subsequence derivation for Subsequence(p, l),
// matching each element of p as early as possible.
func DeriveSubsequence[T comparable](p, l []T) (*SubsequenceDerivation[T], bool) {
	return DeriveSubsequenceFunc(p, l, Eq[T]())
}

// DeriveSubsequenceFunc is DeriveSubsequence with a caller supplied element equality.
func DeriveSubsequenceFunc[T any](p, l []T, eq EqFunc[T]) (*SubsequenceDerivation[T], bool) {
	var (
		matched = make([]bool, 0, len(l))
		i       = 0
	)
	for j := 0; j < len(l) && i < len(p); j++ {
		ok := eq(p[i], l[j])
		if ok {
			i++
		}
		matched = append(matched, ok)
	}
	if i < len(p) {
		return nil, false
	}
	d := SubsequenceNil[T](l[len(matched):])
	for j := len(matched) - 1; j >= 0; j-- {
		if matched[j] {
			d = SubsequenceMatch(l[j], d)
		} else {
			d = SubsequenceSkip(l[j], d)
		}
	}
	return d, true
}
