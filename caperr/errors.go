package caperr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the class of a deserialisation failure
type Kind int

const (
	// KindOther is an error without a more specific kind
	KindOther Kind = iota
	// KindMalformedXML is an error reported by the XML tokenizer
	KindMalformedXML
	// KindTextDecoding indicates an invalid byte sequence or character set
	KindTextDecoding
	// KindParseInt indicates non-numeric text in an integer field
	KindParseInt
	// KindParseFloat indicates non-numeric text in a floating-point field
	KindParseFloat
	// KindParseTime indicates a date/time field not in offset-aware format
	KindParseTime
	// KindParseReference indicates a malformed references group
	KindParseReference
	// KindEnumNotFound indicates a token outside a closed set of values
	KindEnumNotFound
	// KindTagNotRecognised indicates an unknown child element
	KindTagNotRecognised
	// KindTagNotFound indicates a required element or closing tag is missing
	KindTagNotFound
	// KindTagNotExpected indicates an element appearing where not permitted
	KindTagNotExpected
	// KindEOFReached indicates the input ended before a required closing tag
	KindEOFReached
	// KindNamespaceNotFound indicates none of the CAP namespaces was found
	KindNamespaceNotFound
	// KindUnknownEvent indicates an event kind the parser has no case for
	KindUnknownEvent
)

var kindNames = [...]string{
	KindOther:             "other",
	KindMalformedXML:      "malformed-xml",
	KindTextDecoding:      "text-decoding",
	KindParseInt:          "parse-int",
	KindParseFloat:        "parse-float",
	KindParseTime:         "parse-time",
	KindParseReference:    "parse-reference",
	KindEnumNotFound:      "enum-not-found",
	KindTagNotRecognised:  "tag-not-recognised",
	KindTagNotFound:       "tag-not-found",
	KindTagNotExpected:    "tag-not-expected",
	KindEOFReached:        "eof-reached",
	KindNamespaceNotFound: "namespace-not-found",
	KindUnknownEvent:      "unknown-event",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range kindNames {
		if string(b) == name {
			*k = Kind(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error is a CAP deserialisation error.
//
// Tag holds the local name of the element the error refers to, when
// there is one. Err holds the underlying cause (e.g. a
// *strconv.NumError or an *xml.SyntaxError) and is reachable through
// errors.Unwrap.
type Error struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Tag       string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Err       error  `json:"-" yaml:"-"`
}

func (e *Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Tag != "" {
		s += " tag:" + e.Tag
	}
	if e.Namespace != "" {
		s += " ns:" + e.Namespace
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &Error{Kind: KindEOFReached}) matches any EOF error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, and
// false if there is none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindOther, false
}

// Is returns true if err's chain contains an *Error of kind k
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

func newError(k Kind, tag string, opts []Option) *Error {
	e := &Error{Kind: k, Tag: tag}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Other(opts ...Option) *Error { return newError(KindOther, "", opts) }

func MalformedXML(opts ...Option) *Error { return newError(KindMalformedXML, "", opts) }

func TextDecoding(opts ...Option) *Error { return newError(KindTextDecoding, "", opts) }

func ParseInt(tag string, opts ...Option) *Error { return newError(KindParseInt, tag, opts) }

func ParseFloat(tag string, opts ...Option) *Error { return newError(KindParseFloat, tag, opts) }

func ParseTime(tag string, opts ...Option) *Error { return newError(KindParseTime, tag, opts) }

func ParseReference(group string, opts ...Option) *Error {
	e := newError(KindParseReference, "references", opts)
	if e.Message == "" {
		e.Message = fmt.Sprintf("malformed reference %q", group)
	}
	return e
}

func EnumNotFound(tag, token string, opts ...Option) *Error {
	e := newError(KindEnumNotFound, tag, opts)
	if e.Message == "" {
		e.Message = fmt.Sprintf("unknown value %q", token)
	}
	return e
}

func TagNotRecognised(tag string, opts ...Option) *Error {
	return newError(KindTagNotRecognised, tag, opts)
}

func TagNotFound(tag string, opts ...Option) *Error { return newError(KindTagNotFound, tag, opts) }

func TagNotExpected(tag string, opts ...Option) *Error {
	return newError(KindTagNotExpected, tag, opts)
}

func EOFReached(tag string, opts ...Option) *Error { return newError(KindEOFReached, tag, opts) }

func NamespaceNotFound(opts ...Option) *Error { return newError(KindNamespaceNotFound, "", opts) }

func UnknownEvent(opts ...Option) *Error { return newError(KindUnknownEvent, "", opts) }
