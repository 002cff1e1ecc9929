package parc

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

// "(x,y)" with optional spaces after the comma.
func pointGrammar() Parser[point] {
	number := MapResult(Recognize(Tuple2(Opt(Tag("-")), Digit)), strconv.Atoi)
	return Do(
		func(b Bindings) point {
			return point{X: Get[int](b, "x"), Y: Get[int](b, "y")}
		},
		Skip(Tag("(")),
		Bind("x", number),
		Skip(Tag(",")),
		Skip(Opt(Whitespace)),
		Bind("y", number),
		Skip(Tag(")")),
	)
}

func TestParseChain_Execute(t *testing.T) {
	t.Run("EmptyChain", func(t *testing.T) {
		rest, bindings, ok := NewChain().Execute("abc")
		require.True(t, ok)
		assert.Equal(t, "abc", rest)
		assert.Empty(t, bindings)
	})

	t.Run("BindsInOrder", func(t *testing.T) {
		chain := NewChain(Bind("a", Digit), Skip(Tag("-")), Bind("b", Digit))
		rest, bindings, ok := chain.Execute("12-34!")
		require.True(t, ok)
		assert.Equal(t, "!", rest)
		assert.Equal(t, Bindings{"a": "12", "b": "34"}, bindings)
		assert.Equal(t, []string{"a", "b"}, chain.Names())
	})

	t.Run("FailingStepAborts", func(t *testing.T) {
		chain := NewChain(Bind("a", Digit), Skip(Tag("-")), Bind("b", Digit))
		rest, bindings, ok := chain.Execute("12-x")
		assert.False(t, ok)
		assert.Equal(t, "12-x", rest)
		assert.Nil(t, bindings)
	})

	t.Run("RebindingKeepsLaterValue", func(t *testing.T) {
		chain := NewChain(Bind("v", Digit), Skip(Tag(" ")), Bind("v", Digit))
		_, bindings, ok := chain.Execute("1 2")
		require.True(t, ok)
		assert.Equal(t, "2", bindings["v"])
	})

	t.Run("StepsAreReusable", func(t *testing.T) {
		digit := Bind("d", Digit)
		first := NewChain(digit, Skip(Tag("a")))
		second := NewChain(digit, Skip(Tag("b")))

		_, _, ok := first.Execute("1a")
		assert.True(t, ok)
		_, _, ok = second.Execute("1b")
		assert.True(t, ok)
		_, _, ok = first.Execute("1b")
		assert.False(t, ok)
	})
}

func TestDo(t *testing.T) {
	p := pointGrammar()
	expectDone(t, p("(1, -2) rest"), " rest", point{1, -2})
	expectDone(t, p("(10,20)"), "", point{10, 20})
	expectFail(t, p("(1;2)"))
	expectFail(t, p("(1,x)"))

	// Independent calls do not share bindings.
	expectDone(t, p("(3,4)"), "", point{3, 4})
}

func TestBindings(t *testing.T) {
	b := Bindings{"s": "str", "n": 3}

	s, ok := Lookup[string](b, "s")
	assert.True(t, ok)
	assert.Equal(t, "str", s)

	_, ok = Lookup[string](b, "n")
	assert.False(t, ok)
	_, ok = Lookup[int](b, "missing")
	assert.False(t, ok)

	assert.Equal(t, 3, Get[int](b, "n"))
	assert.Equal(t, "", Get[string](b, "n"))
	assert.True(t, b.Has("n"))
	assert.False(t, b.Has("missing"))
}

type endpoint struct {
	Scheme string `parc:"scheme,omitempty" default:"http"`
	Host   string `parc:"host"`
	Port   uint16 `parc:"port,omitempty" default:"80"`
	Path   string `parc:"path,omitempty"`
	note   string
	Extra  string
}

func endpointChain() *ParseChain {
	word := TakeWhile1(func(c rune) bool { return c != ':' && c != '/' })
	return NewChain(
		Bind("scheme", Opt(Terminated(word, Tag("://")))),
		Bind("host", word),
		Bind("port", Opt(Preceded(Tag(":"), Digit))),
		Bind("path", Opt(Rest)),
	)
}

func TestRecord(t *testing.T) {
	p, err := Record[endpoint](endpointChain())
	require.NoError(t, err)

	t.Run("AllBound", func(t *testing.T) {
		res := p("https://example.com:8443/a/b")
		require.True(t, res.Ok)
		assert.Equal(t, endpoint{Scheme: "https", Host: "example.com", Port: 8443, Path: "/a/b"}, res.Value)
	})

	t.Run("AbsentOptionsUseDefaults", func(t *testing.T) {
		res := p("example.com")
		require.True(t, res.Ok)
		assert.Equal(t, endpoint{Scheme: "http", Host: "example.com", Port: 80}, res.Value)
	})

	t.Run("ConversionErrorFails", func(t *testing.T) {
		expectFail(t, p("example.com:70000"))
	})

	t.Run("ChainFailureFails", func(t *testing.T) {
		expectFail(t, p(":80"))
	})
}

func TestRecord_Modifiers(t *testing.T) {
	type lenient struct {
		N int    `parc:"n,omiterr"`
		S string `parc:"s,omitempty"`
	}

	p := MustRecord[lenient](NewChain(
		Bind("n", TakeWhile1(func(c rune) bool { return c != ' ' })),
		Bind("s", Opt(Preceded(Tag(" "), Rest))),
	))

	expectDone(t, p("12 x"), "", lenient{N: 12, S: "x"})
	expectDone(t, p("abc"), "", lenient{})
}

func TestRecord_TypedBindings(t *testing.T) {
	type event struct {
		ID   uuid.UUID `parc:"id"`
		Day  time.Time `parc:"day"`
		Tags []string  `parc:"tags"`
		Hot  bool      `parc:"hot"`
	}

	p := MustRecord[event](NewChain(
		Bind("id", UUID()),
		Skip(Tag(" ")),
		Bind("day", TakeWhile1(func(c rune) bool { return c != ' ' })),
		Skip(Tag(" ")),
		Bind("tags", SeparatedList(Tag(","), TakeWhile1(func(c rune) bool { return c != ',' && c != ' ' }))),
		Skip(Tag(" ")),
		Bind("hot", Alt(Tag("yes"), Tag("no"))),
	))

	id := "550e8400-e29b-41d4-a716-446655440000"
	res := p(id + " 2024-02-29 a,b yes")
	require.True(t, res.Ok)
	assert.Equal(t, uuid.MustParse(id), res.Value.ID)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), res.Value.Day)
	assert.Equal(t, []string{"a", "b"}, res.Value.Tags)
	assert.True(t, res.Value.Hot)
}

type evenNumber struct {
	N int `parc:"n"`
}

func (e *evenNumber) Validate() error {
	if e.N%2 != 0 {
		return errors.New("odd")
	}
	return nil
}

func TestRecord_Validate(t *testing.T) {
	p := MustRecord[evenNumber](NewChain(Bind("n", Digit)))

	expectDone(t, p("42x"), "x", evenNumber{N: 42})
	expectFail(t, p("7"))
}

func TestRecord_Errors(t *testing.T) {
	t.Run("NotStruct", func(t *testing.T) {
		_, err := Record[int](NewChain())
		assert.ErrorIs(t, err, ErrNotStruct)
	})

	t.Run("BadTag", func(t *testing.T) {
		type bad struct {
			A string `parc:"a,bogus"`
		}
		_, err := Record[bad](NewChain(Bind("a", Digit)))
		assert.ErrorIs(t, err, ErrUnknownTagModifier)
	})

	t.Run("UnboundRequiredField", func(t *testing.T) {
		type needs struct {
			A string `parc:"a"`
			B string `parc:"b"`
		}
		_, err := Record[needs](NewChain(Bind("a", Digit)))
		assert.ErrorIs(t, err, ErrUnboundField)
	})

	t.Run("MustRecordPanics", func(t *testing.T) {
		assert.Panics(t, func() { MustRecord[string](NewChain()) })
	})
}
