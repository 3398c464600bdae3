package seqrel_test

import (
	"fmt"
	"strings"

	"go.llib.dev/seqrel"
)

func ExampleIsPrefix() {
	fmt.Println(seqrel.IsPrefix([]int{1, 2}, []int{1, 2, 3}))
	fmt.Println(seqrel.IsPrefix([]int{2}, []int{1, 2, 3}))
	// Output:
	// true
	// false
}

func ExampleIsSubsequence() {
	fmt.Println(seqrel.IsSubsequence([]int{1, 3}, []int{1, 2, 3, 4}))
	fmt.Println(seqrel.IsSubsequence([]int{3, 1}, []int{1, 2, 3, 4}))
	// Output:
	// true
	// false
}

func ExampleIsSublistFunc() {
	eq := func(a, b string) bool { return strings.EqualFold(a, b) }
	words := []string{"The", "Quick", "Brown", "Fox"}

	fmt.Println(seqrel.IsSublistFunc([]string{"quick", "brown"}, words, eq))
	// Output: true
}

func ExampleSuffixSplit() {
	b, ok := seqrel.SuffixSplit([]int{3}, []int{1, 2, 3})
	fmt.Println(b, ok)
	// Output: [1 2] true
}

func ExampleDeriveSuffix() {
	d, ok := seqrel.DeriveSuffix([]int{2, 3}, []int{1, 2, 3})
	if !ok {
		return
	}
	fmt.Println(d.Part(), d.Whole(), d.Witness())
	// Output: [2 3] [1 2 3] [1]
}

func ExampleJoinSuffixPrefix() {
	ds, _ := seqrel.DeriveSuffix([]int{2, 3}, []int{1, 2, 3})
	dp, _ := seqrel.DerivePrefix([]int{4}, []int{4, 5})

	d := seqrel.JoinSuffixPrefix(ds, dp)
	fmt.Println(d.Part(), "is a sublist of", d.Whole())
	// Output: [2 3 4] is a sublist of [1 2 3 4 5]
}

func ExampleConcatSubsequences() {
	d1, _ := seqrel.DeriveSubsequence([]int{1}, []int{1, 2})
	d2, _ := seqrel.DeriveSubsequence([]int{3}, []int{3, 4})

	d := seqrel.ConcatSubsequences(d1, d2)
	fmt.Println(d.Part(), "is a subsequence of", d.Whole())
	// Output: [1 3] is a subsequence of [1 2 3 4]
}
