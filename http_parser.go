package parc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrNotJSONBody   = errors.New("request body is not application/json")
	ErrHeaderMissing = errors.New("header not present in request")
)

// Header is a single header field of an HTTP request.
type Header struct {
	Name  string
	Value string
}

// HTTPRequest is an HTTP/1.x request as read by HTTPRequestGrammar.
//
// All strings are slices of the parsed input.
type HTTPRequest struct {
	Method  string   `parc:"method"`
	Target  string   `parc:"target"`
	Version string   `parc:"version"`
	Headers []Header `parc:"headers"`
	Body    string   `parc:"body,omitempty"`
}

// HTTPMethods lists the request methods recognized by HTTPRequestGrammar,
// in the order they are tried.
var HTTPMethods = []string{
	"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH",
}

// Header returns the value of the first header named name. Header names
// are compared case-insensitively.
func (r HTTPRequest) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// ContentType returns the media type of the Content-Type header without
// its parameters.
func (r HTTPRequest) ContentType() (string, error) {
	value, ok := r.Header(ContentTypeHeader)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrHeaderMissing, ContentTypeHeader)
	}
	mediaType, _, _ := RunPartial(mediaTypeGrammar, value)
	return strings.ToLower(mediaType), nil
}

// JSON parses the body as JSON when the request declares an
// application/json body.
func (r HTTPRequest) JSON() (gjson.Result, error) {
	mediaType, err := r.ContentType()
	if err != nil {
		return gjson.Result{}, err
	}
	if mediaType != ContentTypeApplicationJSON {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrNotJSONBody, mediaType)
	}
	body, err := Run(JSONGrammar(), r.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return body, nil
}

///////////////////////////////////////////////////////////////////////////////
// Grammar
///////////////////////////////////////////////////////////////////////////////

var mediaTypeGrammar = Map(
	Alt(TakeUntil(ContentTypeDelimiter), Rest),
	strings.TrimSpace,
)

// isTokenRune reports whether c may appear in an HTTP token (RFC 9110 tchar).
func isTokenRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', IsDigit(c):
		return true
	default:
		return strings.ContainsRune("!#$%&'*+-.^_`|~", c)
	}
}

func isTargetRune(c rune) bool {
	return c > ' ' && c != 0x7f
}

func httpMethod() Parser[string] {
	methods := make([]Parser[string], 0, len(HTTPMethods))
	for _, m := range HTTPMethods {
		methods = append(methods, Tag(m))
	}
	// A method is a whole token: reject GETX and friends.
	return Terminated(Alt(methods...), Peek(Tag(" ")))
}

func httpVersion() Parser[string] {
	return Recognize(Tuple4(Tag(HTTPVersionPrefix), Digit, Tag("."), Digit))
}

func httpHeader() Parser[Header] {
	ows := Opt(TakeWhile1(func(c rune) bool { return c == ' ' || c == '\t' }))
	return Do(
		func(b Bindings) Header {
			return Header{
				Name:  Get[string](b, "name"),
				Value: strings.TrimRight(Get[string](b, "value"), " \t"),
			}
		},
		Bind("name", TakeWhile1(isTokenRune)),
		Skip(Tag(HeaderNameValueDelimiter)),
		Skip(ows),
		Bind("value", TakeUntil(CRLF)),
		Skip(Tag(CRLF)),
	)
}

// HTTPRequestGrammar parses an HTTP/1.x request: request line, header
// fields, an empty line and the body, which is the rest of the input.
func HTTPRequestGrammar() Parser[HTTPRequest] {
	sp := Tag(" ")
	return MustRecord[HTTPRequest](NewChain(
		Bind("method", httpMethod()),
		Skip(sp),
		Bind("target", TakeWhile1(isTargetRune)),
		Skip(sp),
		Bind("version", httpVersion()),
		Skip(Tag(CRLF)),
		Bind("headers", Many0(httpHeader())),
		Skip(Tag(CRLF)),
		Bind("body", Rest),
	))
}
