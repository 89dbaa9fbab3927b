package event

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/cap/caperr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Decoder is a Source reading from an encoding/xml tokenizer.
//
// Element names carry their resolved namespace URI. Comments,
// processing instructions and directives are consumed and never
// surfaced. Documents declaring a non UTF-8 encoding (for example
// ISO-8859-1) are transcoded to UTF-8.
//
// Decoder is not safe for concurrent use.
type Decoder struct {
	d    *xml.Decoder
	done bool
}

// NewDecoder returns a Decoder reading XML from r
func NewDecoder(r io.Reader) *Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return &Decoder{d: d}
}

// InputOffset returns the input stream byte offset of the current decoder position.
func (d *Decoder) InputOffset() int64 { return d.d.InputOffset() }

// Next implements Source
func (d *Decoder) Next() (Event, error) {
	if d.done {
		return EOF(), nil
	}
	for {
		token, err := d.d.Token()
		if err != nil {
			if err == io.EOF {
				d.done = true
				return EOF(), nil
			}
			return Event{}, tokenError(err)
		}
		switch token := token.(type) {
		case xml.StartElement:
			return Event{Kind: KindStart, Name: token.Name, Attr: token.Attr}, nil
		case xml.EndElement:
			return Event{Kind: KindEnd, Name: token.Name}, nil
		case xml.CharData:
			return Event{Kind: KindText, Text: token}, nil
		case xml.Comment, xml.ProcInst, xml.Directive:
			// not structural
			if glog.V(3) {
				glog.Infof("skipping %T at offset %d", token, d.d.InputOffset())
			}
		default:
			return Event{}, errors.WithStack(caperr.UnknownEvent(
				caperr.WithMessage(fmt.Sprintf("unexpected token %T", token))))
		}
	}
}

func tokenError(err error) error {
	var syntaxErr *xml.SyntaxError
	switch {
	case errors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF":
		// encoding/xml reports input ending inside an open element this way
		return errors.WithStack(caperr.EOFReached("", caperr.WithCause(err)))
	case errors.As(err, &syntaxErr) && strings.Contains(syntaxErr.Msg, "UTF-8"):
		return errors.WithStack(caperr.TextDecoding(caperr.WithCause(err)))
	case strings.Contains(err.Error(), "charset"):
		return errors.WithStack(caperr.TextDecoding(caperr.WithCause(err)))
	}
	return errors.WithStack(caperr.MalformedXML(caperr.WithCause(err)))
}
