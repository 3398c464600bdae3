package seqrel

// IsPrefix reports whether p is an initial contiguous segment of l.
// The empty sequence is a prefix of everything,
// and every sequence is a prefix of itself.
func IsPrefix[T comparable](p, l []T) bool {
	return IsPrefixFunc(p, l, Eq[T]())
}

// IsPrefixFunc is IsPrefix with a caller supplied element equality.
func IsPrefixFunc[T any](p, l []T, eq EqFunc[T]) bool {
	return len(p) <= len(l) && seqEqual(p, l[:len(p)], eq)
}

// IsSuffix reports whether s is a terminal contiguous segment of l.
func IsSuffix[T comparable](s, l []T) bool {
	return IsSuffixFunc(s, l, Eq[T]())
}

// IsSuffixFunc is IsSuffix with a caller supplied element equality.
func IsSuffixFunc[T any](s, l []T, eq EqFunc[T]) bool {
	return len(s) <= len(l) && seqEqual(s, l[len(l)-len(s):], eq)
}

// SuffixSplit returns the complement of s within l when s is a suffix of l,
// that is the unique sequence b for which b ++ s == l.
// The second return value reports whether the suffix relation holds at all,
// so SuffixSplit(s, l) succeeds exactly when IsSuffix(s, l) is true.
func SuffixSplit[T comparable](s, l []T) ([]T, bool) {
	return SuffixSplitFunc(s, l, Eq[T]())
}

// SuffixSplitFunc is SuffixSplit with a caller supplied element equality.
func SuffixSplitFunc[T any](s, l []T, eq EqFunc[T]) ([]T, bool) {
	if !IsSuffixFunc(s, l, eq) {
		return nil, false
	}
	n := len(l) - len(s)
	// The full slice expression protects the returned witness
	// from aliasing with l on a later append.
	return l[:n:n], true
}

// IsSublist reports whether p occurs in l as a contiguous run,
// at any offset, including the empty run.
func IsSublist[T comparable](p, l []T) bool {
	return IsSublistFunc(p, l, Eq[T]())
}

// IsSublistFunc is IsSublist with a caller supplied element equality.
func IsSublistFunc[T any](p, l []T, eq EqFunc[T]) bool {
	for off := 0; off+len(p) <= len(l); off++ {
		if IsPrefixFunc(p, l[off:], eq) {
			return true
		}
	}
	return false
}

// IsSubsequence reports whether p can be obtained from l
// by deleting zero or more elements without reordering the remainder.
func IsSubsequence[T comparable](p, l []T) bool {
	return IsSubsequenceFunc(p, l, Eq[T]())
}

// IsSubsequenceFunc is IsSubsequence with a caller supplied element equality.
//
// The scan is greedy: it matches each element of p
// against the earliest still available element of l.
// Greedy matching is complete for the subsequence relation,
// a later match can always be replaced by an earlier one.
func IsSubsequenceFunc[T any](p, l []T, eq EqFunc[T]) bool {
	i := 0
	for j := 0; j < len(l) && i < len(p); j++ {
		if eq(p[i], l[j]) {
			i++
		}
	}
	return i == len(p)
}
