package alert

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/cap/caperr"
	"github.com/andaru/cap/event"
	"github.com/andaru/cap/xmlutil"
	"github.com/pkg/errors"
)

type options struct {
	scan             bool
	version          Version
	strictReferences bool
}

// Option configures a parse
type Option func(*options)

// WithNamespaceScan selects the document's CAP version by searching
// the raw document text for a namespace URN (see Sniff), rather than
// from the namespace of the root element. The root element must still
// be in the selected namespace. It has no effect on Decode, which does
// not see the document text.
func WithNamespaceScan() Option { return func(o *options) { o.scan = true } }

// WithVersion requires the root element to be in the namespace of v
func WithVersion(v Version) Option { return func(o *options) { o.version = v } }

// WithStrictReferences makes a malformed reference group fail the
// parse. By default malformed groups are dropped.
func WithStrictReferences() Option { return func(o *options) { o.strictReferences = true } }

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse decodes the CAP alert document. Either the complete Alert or
// an error is returned. Errors have a *caperr.Error in their chain.
func Parse(document string, opts ...Option) (*Alert, error) {
	o := newOptions(opts)
	if o.scan && o.version == 0 {
		v, err := Sniff(document)
		if err != nil {
			return nil, err
		}
		opts = append(opts[:len(opts):len(opts)], WithVersion(v))
	}
	return Decode(event.NewDecoder(strings.NewReader(document)), opts...)
}

// ParseReader decodes the CAP alert document read from r. With
// WithNamespaceScan, r is read completely before decoding.
func ParseReader(r io.Reader, opts ...Option) (*Alert, error) {
	if newOptions(opts).scan {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(caperr.Other(caperr.WithCause(err)))
		}
		return Parse(string(b), opts...)
	}
	return Decode(event.NewDecoder(r), opts...)
}

// Decode decodes a CAP alert from the events of src. The root element
// must be alert, in one of the CAP namespaces, and must be followed
// only by the end of input.
func Decode(src event.Source, opts ...Option) (*Alert, error) {
	o := newOptions(opts)
	root, err := rootElement(src)
	if err != nil {
		return nil, err
	}
	version, err := rootVersion(root, o.version)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "alert" {
		return nil, errors.WithStack(caperr.TagNotExpected(root.Name.Local,
			caperr.WithNamespace(root.Name.Space), caperr.WithMessage("root element must be alert")))
	}
	p := &parser{
		src:              src,
		ns:               root.Name.Space,
		version:          version,
		strictReferences: o.strictReferences,
	}
	a, err := p.readAlert()
	if err != nil {
		return nil, err
	}
	if err := p.readTrailer(); err != nil {
		return nil, err
	}
	return a, nil
}

func rootElement(src event.Source) (event.Event, error) {
	for {
		ev, err := src.Next()
		if err != nil {
			return ev, err
		}
		switch ev.Kind {
		case event.KindStart:
			return ev, nil
		case event.KindText:
			if err := blank(ev, "before root element"); err != nil {
				return ev, err
			}
		case event.KindEOF:
			return ev, errors.WithStack(caperr.NamespaceNotFound(caperr.WithMessage("document has no root element")))
		default:
			return ev, errors.WithStack(caperr.UnknownEvent(
				caperr.WithMessage(fmt.Sprintf("unexpected %v event before root element", ev.Kind))))
		}
	}
}

// rootVersion returns the CAP version of the root start tag. When want
// is set the root must be in its namespace.
func rootVersion(root event.Event, want Version) (Version, error) {
	ns := root.Name.Space
	if want != 0 {
		if ns != want.Namespace() {
			return 0, errors.WithStack(caperr.NamespaceNotFound(caperr.WithNamespace(ns),
				caperr.WithMessage(fmt.Sprintf("root element is not in the CAP %v namespace", want))))
		}
		return want, nil
	}
	v, err := VersionFromNamespace(ns)
	if err != nil {
		msg := "root element is not in a CAP namespace"
		if declared := xmlutil.NewPrefixMap(root.Attr...).Namespaces(); len(declared) > 0 {
			msg += "; declared " + strings.Join(declared, " ")
		}
		return 0, errors.WithStack(caperr.NamespaceNotFound(caperr.WithNamespace(ns),
			caperr.WithMessage(msg), caperr.WithCause(err)))
	}
	return v, nil
}

// readTrailer consumes events after the root end tag. Only whitespace
// (the decoder already drops comments and processing instructions) may
// follow.
func (p *parser) readTrailer() error {
	for {
		ev, err := p.src.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case event.KindEOF:
			return nil
		case event.KindText:
			if err := blank(ev, "after root element"); err != nil {
				return err
			}
		case event.KindStart, event.KindEnd:
			return errors.WithStack(caperr.TagNotExpected(ev.Name.Local,
				caperr.WithNamespace(ev.Name.Space), caperr.WithMessage("after root element")))
		default:
			return p.unknownEvent(ev)
		}
	}
}

var byteOrderMark = []byte("\ufeff")

// blank returns a MalformedXML error if the text event holds anything
// but whitespace or a byte order mark.
func blank(ev event.Event, where string) error {
	if len(bytes.TrimSpace(bytes.TrimPrefix(ev.Text, byteOrderMark))) == 0 {
		return nil
	}
	return errors.WithStack(caperr.MalformedXML(
		caperr.WithMessage(fmt.Sprintf("character data %.20q %s", ev.Text, where))))
}
