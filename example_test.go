package branch_test

import (
	"fmt"

	"github.com/biffen/branch"
)

func Example() {
	// Translate a string to an int. The default equality predicate
	// compares each key to the input; "foo" becomes 1, "bar" becomes 2,
	// anything else becomes 0.
	translate := func(s string) int {
		return branch.Switch(s, []branch.Case[string, int]{
			branch.When("foo", branch.Const(1)),
			branch.When("bar", branch.Const(2)),
		}, branch.Const(0))
	}

	fmt.Println(translate("foo"))
	fmt.Println(translate("bar"))
	fmt.Println(translate("baz"))

	// Output:
	// 1
	// 2
	// 0
}

func Example_predicate() {
	// Switch on divisibility instead of equality. The input and the keys
	// are related by the predicate, not by ==.
	classify := func(n int) string {
		return branch.SwitchFunc(n, []branch.Case[int, string]{
			branch.When(15, branch.Const("fizzbuzz")),
			branch.When(3, branch.Const("fizz")),
			branch.When(5, branch.Const("buzz")),
		}, branch.Const("number"), func(a, b int) bool { return a%b == 0 })
	}

	fmt.Println(classify(9))
	fmt.Println(classify(10))
	fmt.Println(classify(30))
	fmt.Println(classify(7))

	// Output:
	// fizz
	// buzz
	// fizzbuzz
	// number
}

func Example_oneOf() {
	// List-valued keys share one body across several values, standing in
	// for fall-through.
	kind := branch.SwitchFunc("sun", []branch.Case[[]string, string]{
		branch.When([]string{"sat", "sun"}, branch.Const("weekend")),
		branch.When([]string{"mon", "tue", "wed", "thu", "fri"}, branch.Const("weekday")),
	}, branch.Const("not a day"), branch.OneOf[string])

	fmt.Println(kind)

	// Output:
	// weekend
}

func Example_do() {
	// The void variant runs a body for its effect. The default is
	// optional; nil means a miss does nothing.
	branch.Do("TERM", []branch.Clause[string]{
		branch.On("HUP", func() { fmt.Println("reloading") }),
		branch.On("TERM", func() { fmt.Println("shutting down") }),
	}, nil)

	// Output:
	// shutting down
}

func Example_hasField() {
	// Route a raw JSON document by which field path it carries.
	raw := []byte(`{"detail-type": "UserCreated", "detail": {"userId": "123"}}`)

	format := branch.SwitchFunc(raw, []branch.Case[string, string]{
		branch.When("Records.0.sns", branch.Const("sns")),
		branch.When("detail-type", branch.Const("eventbridge")),
	}, branch.Const("unknown"), branch.HasField)

	fmt.Println(format)

	// Output:
	// eventbridge
}
