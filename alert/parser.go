package alert

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andaru/cap/caperr"
	"github.com/andaru/cap/event"
	"github.com/andaru/cap/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// parser is the state of a single parse. It is owned by one call to
// Decode and never shared. text is scratch storage for leaf element
// content, reset at the start of each leaf read.
type parser struct {
	src     event.Source
	ns      string
	version Version
	text    []byte

	strictReferences bool
}

func (p *parser) match(n xml.Name, local string) bool {
	return n.Space == p.ns && n.Local == local
}

func (p *parser) unknownEvent(ev event.Event) error {
	return errors.WithStack(caperr.UnknownEvent(
		caperr.WithMessage(fmt.Sprintf("unexpected %v event", ev.Kind))))
}

// readElement consumes events up to and including the end tag of the
// element named tag. For each child start tag in the parser's
// namespace, child is called with the child's local name; child must
// consume the child element through its end tag. Start tags in any
// other namespace have their whole subtree skipped.
func (p *parser) readElement(tag string, child func(local string) error) error {
	for {
		ev, err := p.src.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case event.KindStart:
			if ev.Name.Space != p.ns {
				if err := p.skip(ev.Name); err != nil {
					return err
				}
				continue
			}
			if glog.V(2) {
				glog.Infof("<%s>: %s", tag, xmlutil.StartString(ev.Name))
			}
			if err := child(ev.Name.Local); err != nil {
				return err
			}
		case event.KindEnd:
			if p.match(ev.Name, tag) {
				return nil
			}
			if ev.Name.Space == p.ns {
				return errors.WithStack(caperr.TagNotFound(tag, caperr.WithNamespace(p.ns),
					caperr.WithMessage("found "+xmlutil.EndString(ev.Name))))
			}
		case event.KindText:
		case event.KindEOF:
			return errors.WithStack(caperr.EOFReached(tag, caperr.WithNamespace(p.ns)))
		default:
			return p.unknownEvent(ev)
		}
	}
}

// skip consumes the subtree of the foreign element whose start tag
// was just read.
func (p *parser) skip(name xml.Name) error {
	if glog.V(1) {
		glog.Infof("skipping foreign element %s", xmlutil.StartString(name))
	}
	for depth := 1; depth > 0; {
		ev, err := p.src.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case event.KindStart:
			depth++
		case event.KindEnd:
			depth--
		case event.KindText:
		case event.KindEOF:
			return errors.WithStack(caperr.EOFReached(name.Local, caperr.WithNamespace(name.Space)))
		default:
			return p.unknownEvent(ev)
		}
	}
	return nil
}

// readText returns the whitespace trimmed text content of the element
// named tag, consuming events through its end tag. ok is false when
// the element held no text. Child elements in the parser's namespace
// are not permitted.
func (p *parser) readText(tag string) (text string, ok bool, err error) {
	p.text = p.text[:0]
	for {
		ev, err := p.src.Next()
		if err != nil {
			return "", false, err
		}
		switch ev.Kind {
		case event.KindText:
			p.text = append(p.text, ev.Text...)
		case event.KindStart:
			if ev.Name.Space != p.ns {
				if err := p.skip(ev.Name); err != nil {
					return "", false, err
				}
				continue
			}
			return "", false, errors.WithStack(caperr.TagNotExpected(ev.Name.Local,
				caperr.WithNamespace(p.ns), caperr.WithMessage("inside <"+tag+">")))
		case event.KindEnd:
			if p.match(ev.Name, tag) {
				text = strings.TrimSpace(string(p.text))
				return text, text != "", nil
			}
			if ev.Name.Space == p.ns {
				return "", false, errors.WithStack(caperr.TagNotFound(tag, caperr.WithNamespace(p.ns),
					caperr.WithMessage("found "+xmlutil.EndString(ev.Name))))
			}
		case event.KindEOF:
			return "", false, errors.WithStack(caperr.EOFReached(tag, caperr.WithNamespace(p.ns)))
		default:
			return "", false, p.unknownEvent(ev)
		}
	}
}

// readString stores the text of the element named tag in *dst. An
// empty element leaves *dst unchanged.
func (p *parser) readString(tag string, dst *string) error {
	text, ok, err := p.readText(tag)
	if ok {
		*dst = text
	}
	return err
}

// readTime parses the element named tag as an RFC 3339 timestamp. An
// empty element yields nil.
func (p *parser) readTime(tag string) (*time.Time, error) {
	text, ok, err := p.readText(tag)
	if err != nil || !ok {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, errors.WithStack(caperr.ParseTime(tag, caperr.WithNamespace(p.ns), caperr.WithCause(err)))
	}
	return &t, nil
}

func (p *parser) readFloat(tag string) (*float64, error) {
	text, ok, err := p.readText(tag)
	if err != nil || !ok {
		return nil, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.WithStack(caperr.ParseFloat(tag, caperr.WithNamespace(p.ns), caperr.WithCause(err)))
	}
	return &f, nil
}

func (p *parser) readUint(tag string) (*uint64, error) {
	text, ok, err := p.readText(tag)
	if err != nil || !ok {
		return nil, err
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, errors.WithStack(caperr.ParseInt(tag, caperr.WithNamespace(p.ns), caperr.WithCause(err)))
	}
	return &n, nil
}

// readPair reads the valueName/value children of the element named
// tag. ok is false when neither child was present.
func (p *parser) readPair(tag string) (pair Pair, ok bool, err error) {
	err = p.readElement(tag, func(local string) error {
		switch local {
		case "valueName":
			ok = true
			return p.readString(local, &pair.ValueName)
		case "value":
			ok = true
			return p.readString(local, &pair.Value)
		}
		return p.tagNotRecognised(tag, local)
	})
	return pair, ok && err == nil, err
}

// tagNotExpected is the error for an unknown child of the composite
// element named parent.
func (p *parser) tagNotExpected(parent, local string) error {
	return errors.WithStack(caperr.TagNotExpected(local,
		caperr.WithNamespace(p.ns), caperr.WithMessage("inside <"+parent+">")))
}

func (p *parser) tagNotRecognised(parent, local string) error {
	return errors.WithStack(caperr.TagNotRecognised(local,
		caperr.WithNamespace(p.ns), caperr.WithMessage("inside <"+parent+">")))
}

// withTag fills in the element of a *caperr.Error raised by a decoder
// that does not know which element it was given.
func withTag(err error, tag, ns string) error {
	var e *caperr.Error
	if errors.As(err, &e) && e.Tag == "" {
		e.Tag = tag
		e.Namespace = ns
	}
	return err
}
