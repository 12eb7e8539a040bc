// Package branch provides a value-returning, predicate-customizable
// switch expression.
//
// A branch dispatch takes an input, an ordered list of (key, body) cases,
// a default, and a predicate. It tests the predicate against each key in
// order and runs the first body whose key matches, falling back to the
// default when none does. Compared with the built-in switch statement it
// adds:
//
//   - A result: cases return a value, and the dispatch returns it. The
//     result type is independent of the key type, which makes it a
//     natural fit for translation tables.
//   - A custom predicate: cases don't have to equal the input to be
//     chosen. Range checks, set membership, pattern matching, and
//     arithmetic tests all work.
//   - Mixed types: the input and the case keys may be different types
//     when a predicate relates them.
//   - Bodies as first-class functions: written inline as closures or
//     referring to named functions.
//
// # Quick Start
//
// Map a string to an int with the default equality predicate:
//
//	x := branch.Switch(verb, []branch.Case[string, int]{
//	    branch.When("foo", branch.Const(1)),
//	    branch.When("bar", branch.Const(2)),
//	}, branch.Const(0))
//
// Switch on something other than equality by supplying a predicate:
//
//	branch.DoFunc(n, []branch.Clause[int]{
//	    branch.On(2, printEven),
//	}, printOdd, func(a, b int) bool { return a%b == 0 })
//
// # Variants
//
// The dispatch comes in a value-returning family and a void family:
//
//   - Switch / SwitchFunc return a result. The default producer is a
//     required parameter: a value-returning dispatch must produce a
//     value on the no-match path, so the signature enforces it.
//   - Do / DoFunc run a body for its effect. The default is optional
//     (nil means do nothing on a miss).
//
// The Func forms take an explicit predicate and allow the input and key
// types to differ; the plain forms default to equality and require input
// and keys to share one comparable type.
//
// # Semantics
//
// Cases are evaluated strictly left to right and the first match wins.
// Exactly one body runs per call: no case after a match is examined, a
// match suppresses the default, and an empty case list always selects
// the default. There is no fall-through; to share one body across
// several keys, give the case a list-valued key and match with OneOf,
// or name the body and reference it from each case.
//
// The dispatch itself is pure and stateless. It holds nothing between
// calls, catches nothing, and logs nothing: a panic raised by a
// predicate or body propagates to the caller unchanged.
//
// # Predicates
//
// Ready-made predicates cover the common non-equality matches: OneOf
// (set membership), Fold (case-insensitive strings), Regexp (pattern
// keys), Within (inclusive ranges), and HasField / FieldEquals for
// switching on raw JSON documents by field path. And, Or, and Not
// compose them.
//
// # Thread Safety
//
// A dispatch call reads its arguments and shares no state, so concurrent
// calls are safe as long as the caller's own producers and predicate are.
package branch
