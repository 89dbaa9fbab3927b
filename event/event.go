package event

import (
	"encoding/xml"
	"fmt"
)

// Kind is the kind of a structural event
type Kind int

const (
	// KindEOF is the end of input.
	KindEOF Kind = iota
	// KindStart is an element start tag.
	KindStart
	// KindEnd is an element end tag.
	KindEnd
	// KindText is character data between tags.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single namespaced structural event.
//
// For KindStart and KindEnd, Name holds the element's local name and its
// resolved namespace URI (empty when the element is in no namespace).
// For KindStart, Attr holds the element's attributes including namespace
// declarations. For KindText, Text holds the character data; it is only
// valid until the next call to Next.
type Event struct {
	Kind Kind
	Name xml.Name
	Attr []xml.Attr
	Text []byte
}

// Source is a pull-based supplier of structural events.
//
// Next returns the next event. At the end of input it returns an event
// of KindEOF and a nil error, repeatedly. Errors from the tokenizer are
// returned as *caperr.Error values of KindMalformedXML or
// KindTextDecoding.
type Source interface {
	Next() (Event, error)
}

// Start returns a start event for name
func Start(name xml.Name, attr ...xml.Attr) Event {
	return Event{Kind: KindStart, Name: name, Attr: attr}
}

// End returns an end event for name
func End(name xml.Name) Event { return Event{Kind: KindEnd, Name: name} }

// Text returns a text event
func Text(s string) Event { return Event{Kind: KindText, Text: []byte(s)} }

// EOF returns the end of input event
func EOF() Event { return Event{Kind: KindEOF} }

// Slice is a Source replaying a fixed sequence of events, followed by
// KindEOF. It is useful for driving the parser without XML text.
type Slice struct {
	Events []Event
	pos    int
}

// Next implements Source
func (s *Slice) Next() (Event, error) {
	if s.pos >= len(s.Events) {
		return EOF(), nil
	}
	ev := s.Events[s.pos]
	s.pos++
	return ev, nil
}
