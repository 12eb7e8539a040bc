package branch

// Const returns a producer that yields v. Use it for case bodies that
// map a key straight to a value:
//
//	branch.When("foo", branch.Const(1))
func Const[R any](v R) Producer[R] {
	return func() R { return v }
}

// Zero yields the zero value for R. Usable directly as a Producer[R]
// when the no-match result should be R's zero:
//
//	branch.Switch(code, cases, branch.Zero[string])
func Zero[R any]() R {
	var zero R
	return zero
}

// Noop does nothing. The explicit form of the void dispatch's default;
// Do and DoFunc treat a nil otherwise the same way.
func Noop() {}
