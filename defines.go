package parc

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// constants for the record field tags read by Record
const (
	FieldTagName          = "parc"
	DefaultTagName        = "default"
	FieldTagSkip          = "-"
	FieldTagListDelimiter = ","
)

// constants for record field tag modifiers
const (
	OmitEmptyFieldModifier = "omitempty"
	OmitErrFieldModifier   = "omiterr"
)

// Grammar name constants for the bundled grammars.
const (
	HTTPRequestGrammarName = "http-request"
	JSONGrammarName        = "json"
	DigitListGrammarName   = "digits"
	FieldTagGrammarName    = "field-tag"
)

// constants for the HTTP request grammar
const (
	HTTPVersionPrefix          = "HTTP/"
	CRLF                       = "\r\n"
	HeaderNameValueDelimiter   = ":"
	ContentTypeHeader          = "Content-Type"
	ContentTypeApplicationJSON = "application/json"
	ContentTypeDelimiter       = ";"
)

// reflect.TypeOf constants for type checks
var (
	UUIDType  = reflect.TypeOf(uuid.UUID{})
	TimeType  = reflect.TypeOf(time.Time{})
	BytesType = reflect.TypeOf([]byte{})
)
