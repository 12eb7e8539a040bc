package branch

// Producer yields the result of a selected case. Producers take no
// arguments; anything a case body needs is captured by its closure.
//
// Example:
//
//	branch.When("create", func() int { return 201 })
type Producer[R any] func() R

// Predicate decides whether a case's key matches the input. It is called
// once per case, in order, until it returns true.
//
// The input and key types may differ. The default predicate used by
// Switch and Do is Equal, which requires them to be the same comparable
// type.
//
// Example:
//
//	func(n, k int) bool { return n%k == 0 }
type Predicate[I, K any] func(input I, key K) bool

// Case pairs a key with the producer to invoke when the key matches.
// Case order is significant: the first matching case wins and no later
// case is evaluated.
type Case[K, R any] struct {
	// Key is matched against the input by the predicate.
	Key K

	// Produce yields the result when this case is selected.
	Produce Producer[R]
}

// Clause is the void counterpart of Case: a key paired with a body that
// produces no result.
type Clause[K any] struct {
	// Key is matched against the input by the predicate.
	Key K

	// Do runs when this clause is selected.
	Do func()
}

// When constructs a Case. Use for compact case lists:
//
//	branch.Switch(verb, []branch.Case[string, int]{
//	    branch.When("create", func() int { return 201 }),
//	    branch.When("delete", func() int { return 204 }),
//	}, branch.Const(200))
func When[K, R any](key K, produce Producer[R]) Case[K, R] {
	return Case[K, R]{Key: key, Produce: produce}
}

// On constructs a Clause:
//
//	branch.Do(signal, []branch.Clause[string]{
//	    branch.On("HUP", reload),
//	    branch.On("TERM", shutdown),
//	}, nil)
func On[K any](key K, do func()) Clause[K] {
	return Clause[K]{Key: key, Do: do}
}

// Switch evaluates cases in order and returns the result of the first
// case whose key equals input, or the result of otherwise when no case
// matches. It is a value-returning generalization of the switch
// statement: keys of any comparable type, bodies as first-class
// functions, and a result type independent of the key type.
//
// otherwise is mandatory: a value-returning dispatch must produce a
// value on the no-match path. Passing nil panics before any case is
// examined.
//
// Exactly one producer runs per call. Cases after the first match are
// not evaluated, and a match suppresses otherwise. An empty case list
// always selects otherwise.
//
// Example:
//
//	status := branch.Switch(verb, []branch.Case[string, int]{
//	    branch.When("create", func() int { return 201 }),
//	    branch.When("delete", func() int { return 204 }),
//	}, branch.Const(400))
func Switch[K comparable, R any](input K, cases []Case[K, R], otherwise Producer[R]) R {
	return SwitchFunc(input, cases, otherwise, Equal[K])
}

// SwitchFunc is Switch with a caller-supplied predicate. The input and
// key types may differ, so a single dispatch can translate between
// unrelated types:
//
//	label := branch.SwitchFunc(score, []branch.Case[branch.Span[int], string]{
//	    branch.When(branch.Span[int]{Lo: 90, Hi: 100}, branch.Const("A")),
//	    branch.When(branch.Span[int]{Lo: 80, Hi: 89}, branch.Const("B")),
//	}, branch.Const("F"), branch.Within[int])
//
// Both otherwise and match are mandatory; passing nil for either panics
// before any predicate or producer runs. A panic raised by the predicate
// or a producer propagates to the caller unchanged.
func SwitchFunc[I, K, R any](input I, cases []Case[K, R], otherwise Producer[R], match Predicate[I, K]) R {
	if otherwise == nil {
		panic("branch: nil default producer for value-returning dispatch")
	}
	if match == nil {
		panic("branch: nil predicate")
	}
	for _, c := range cases {
		if match(input, c.Key) {
			return c.Produce()
		}
	}
	return otherwise()
}

// Do is the void counterpart of Switch: it runs the body of the first
// clause whose key equals input. otherwise may be nil, in which case a
// miss does nothing.
//
//	branch.Do(signal, []branch.Clause[string]{
//	    branch.On("HUP", reload),
//	    branch.On("TERM", shutdown),
//	}, nil)
func Do[K comparable](input K, clauses []Clause[K], otherwise func()) {
	DoFunc(input, clauses, otherwise, Equal[K])
}

// DoFunc is Do with a caller-supplied predicate. match is mandatory;
// otherwise may be nil (no-op on miss).
func DoFunc[I, K any](input I, clauses []Clause[K], otherwise func(), match Predicate[I, K]) {
	if match == nil {
		panic("branch: nil predicate")
	}
	for _, c := range clauses {
		if match(input, c.Key) {
			c.Do()
			return
		}
	}
	if otherwise != nil {
		otherwise()
	}
}
