// Package parc (PArser Combinators) provides small composable parsers for
// building recursive-descent parsers over in-memory strings.
//
// A Parser[T] is a function from an input string to a Result[T]. A result
// is either a success, holding the unconsumed remainder and a value, or a
// failure holding nothing at all. Remainders and matched text are always
// slices of the caller's input; nothing is copied.
//
// The package provides:
//   - Recognizers: Whitespace, Digit, Tag, TakeWhile1, TakeUntil, Satisfy,
//     AnyRune, Rest, Eof and UUID.
//   - Transformations: Map, MapResult, Value, Recognize and Lazy (for
//     recursive grammars).
//   - Sequencing: Preceded, Terminated, Delimited, Tuple2 to Tuple4 and
//     Sequence.
//   - Repetition: Many0, SeparatedList and SeparatedNonemptyList.
//   - Choice and dispatch: Alt and Switch (with On, When and Otherwise).
//   - Lookahead: Peek, Not, Cond and Opt.
//   - Binding chains: Skip and Bind steps linked into a ParseChain, turned
//     into a parser with Return, Do or Record.
//
// Failures carry no diagnostics. Recovery is expressed by the choice of
// combinator: Alt tries the next branch, Cond and Opt substitute an absent
// value and Not inverts the outcome. Run and RunPartial are the top-level
// entry points and translate a failure, or leftover input, into an error.
//
// # Repetition and zero-width elements
//
// Many0 and the separated lists stop gracefully when the element parser
// fails. An element parser that succeeds without consuming input would loop
// forever, so Many0 and the first element of a separated list treat it as a
// failure of the whole combinator instead. Later zero-width separators or
// elements in a separated list only end the list.
//
// # Records
//
// Record assembles a struct from the bindings of a chain using field tags:
//
//	type Endpoint struct {
//	    Host string `parc:"host"`
//	    Port int    `parc:"port,omitempty" default:"80"`
//	}
//
//	endpoint := parc.MustRecord[Endpoint](parc.NewChain(
//	    parc.Bind("host", parc.TakeWhile1(isHostRune)),
//	    parc.Skip(parc.Tag(":")),
//	    parc.Bind("port", parc.Digit),
//	))
//
// String bindings are converted to the field type; see Record for the
// supported conversions and modifiers.
//
// # Grammars
//
// The package bundles a few complete grammars, HTTPRequestGrammar,
// JSONGrammar, DigitListGrammar and FieldTagGrammar, registered by name in
// DefaultRegistry. The parc command runs them over files.
package parc
