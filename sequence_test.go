package parc

import (
	"testing"
)

func TestPrecededTerminatedDelimited(t *testing.T) {
	expectDone(t, Preceded(Tag("#"), Digit)("#12!"), "!", "12")
	expectFail(t, Preceded(Tag("#"), Digit)("12"))
	expectFail(t, Preceded(Tag("#"), Digit)("#x"))

	expectDone(t, Terminated(Digit, Tag(";"))("12;x"), "x", "12")
	expectFail(t, Terminated(Digit, Tag(";"))("12"))

	parens := Delimited(Tag("("), Digit, Tag(")"))
	expectDone(t, parens("(42) tail"), " tail", "42")
	expectFail(t, parens("(42"))
	expectFail(t, parens("42)"))
	expectFail(t, parens("()"))
}

func TestTuples(t *testing.T) {
	pair := Tuple2(Digit, Tag("."))
	expectDone(t, pair("1.2"), "2", Pair[string, string]{"1", "."})
	expectFail(t, pair("1,2"))

	triple := Tuple3(Digit, Whitespace, Digit)
	expectDone(t, triple("1 2x"), "x", Triple[string, string, string]{"1", " ", "2"})
	expectFail(t, triple("1 x"))

	quad := Tuple4(Tag("a"), Value(1), Tag("b"), Opt(Tag("c")))
	expectDone(t, quad("ab!"), "!", Quad[string, int, string, Option[string]]{"a", 1, "b", None[string]()})
	expectFail(t, quad("a!"))
}

func TestSequence(t *testing.T) {
	seq := Sequence(Tag("a"), Tag("b"), Tag("c"))
	expectDone(t, seq("abcd"), "d", []string{"a", "b", "c"})
	expectFail(t, seq("abd"))
	expectDone(t, Sequence[string]()("xyz"), "xyz", []string{})
}
