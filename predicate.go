package branch

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Equal is the default predicate: a case matches when its key equals the
// input. It is only defined when the input and key are the same
// comparable type; otherwise supply a predicate via SwitchFunc or DoFunc.
func Equal[K comparable](input, key K) bool {
	return input == key
}

// And combines predicates; the result matches when all of them match.
// Evaluation stops at the first false.
func And[I, K any](ps ...Predicate[I, K]) Predicate[I, K] {
	return func(input I, key K) bool {
		for _, p := range ps {
			if !p(input, key) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates; the result matches when any of them matches.
// Evaluation stops at the first true.
func Or[I, K any](ps ...Predicate[I, K]) Predicate[I, K] {
	return func(input I, key K) bool {
		for _, p := range ps {
			if p(input, key) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[I, K any](p Predicate[I, K]) Predicate[I, K] {
	return func(input I, key K) bool {
		return !p(input, key)
	}
}

// OneOf matches when the input is an element of a list-valued key. This
// recovers fall-through behavior without it: one case body, many keys.
//
//	branch.SwitchFunc(day, []branch.Case[[]string, bool]{
//	    branch.When([]string{"sat", "sun"}, branch.Const(true)),
//	}, branch.Const(false), branch.OneOf[string])
func OneOf[K comparable](input K, key []K) bool {
	return slices.Contains(key, input)
}

// Fold matches string keys case-insensitively under Unicode case-folding.
func Fold(input, key string) bool {
	return strings.EqualFold(input, key)
}

// Regexp matches when a precompiled pattern key matches the input.
// Compile keys ahead of the call, typically with regexp.MustCompile:
//
//	branch.When(regexp.MustCompile(`^v\d+`), branch.Const("versioned"))
func Regexp(input string, key *regexp.Regexp) bool {
	return key.MatchString(input)
}

// Span is an inclusive range key for Within.
type Span[K cmp.Ordered] struct {
	Lo, Hi K
}

// Within matches when the input falls inside the key's range, bounds
// included.
func Within[K cmp.Ordered](input K, key Span[K]) bool {
	return key.Lo <= input && input <= key.Hi
}
