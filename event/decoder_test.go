package event

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/andaru/cap/caperr"
	"github.com/andaru/cap/xmlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns12 = "urn:oasis:names:tc:emergency:cap:1.2"

// collect drains src, copying text so it survives later calls to Next
func collect(t *testing.T, src Source) (events []Event, err error) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		var ev Event
		if ev, err = src.Next(); err != nil {
			return events, err
		}
		if ev.Kind == KindText {
			ev.Text = append([]byte(nil), ev.Text...)
		}
		ev.Attr = nil
		events = append(events, ev)
		if ev.Kind == KindEOF {
			return events, nil
		}
	}
	t.Fatal("source did not reach EOF")
	return nil, nil
}

func TestDecoder(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		want     []Event
		wantKind caperr.Kind
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Event{EOF()},
		},
		{
			name:  "default namespace",
			input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2"><sender>a@b</sender></alert>`,
			want: []Event{
				Start(xmlutil.XMLName("alert", ns12)),
				Start(xmlutil.XMLName("sender", ns12)),
				Text("a@b"),
				End(xmlutil.XMLName("sender", ns12)),
				End(xmlutil.XMLName("alert", ns12)),
				EOF(),
			},
		},
		{
			name:  "prefixed namespace and foreign element",
			input: `<cap:alert xmlns:cap="urn:oasis:names:tc:emergency:cap:1.2" xmlns:x="urn:x"><x:ext/></cap:alert>`,
			want: []Event{
				Start(xmlutil.XMLName("alert", ns12)),
				Start(xmlutil.XMLName("ext", "urn:x")),
				End(xmlutil.XMLName("ext", "urn:x")),
				End(xmlutil.XMLName("alert", ns12)),
				EOF(),
			},
		},
		{
			name:  "comments and processing instructions are skipped",
			input: `<?xml version="1.0"?><!DOCTYPE a><!-- c --><a><!-- in --><?pi x?></a>`,
			want: []Event{
				Start(xmlutil.XMLName("a")),
				End(xmlutil.XMLName("a")),
				EOF(),
			},
		},
		{
			name:  "ISO-8859-1 text is transcoded",
			input: "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a>Montr\xe9al</a>",
			want: []Event{
				Start(xmlutil.XMLName("a")),
				Text("Montréal"),
				End(xmlutil.XMLName("a")),
				EOF(),
			},
		},
		{
			name:     "mismatched end tag",
			input:    `<a><b></a>`,
			wantKind: caperr.KindMalformedXML,
		},
		{
			name:     "truncated document",
			input:    `<a><b>`,
			wantKind: caperr.KindEOFReached,
		},
		{
			name:     "invalid UTF-8",
			input:    "<a>\xff\xfe</a>",
			wantKind: caperr.KindTextDecoding,
		},
		{
			name:     "unsupported charset",
			input:    `<?xml version="1.0" encoding="x-no-such-charset"?><a/>`,
			wantKind: caperr.KindTextDecoding,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			got, err := collect(t, NewDecoder(strings.NewReader(tc.input)))
			if tc.wantKind != caperr.KindOther {
				a.True(caperr.Is(err, tc.wantKind), "want %v, got %v", tc.wantKind, err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestDecoderEOFRepeats(t *testing.T) {
	d := NewDecoder(strings.NewReader("<a/>"))
	_, err := collect(t, d)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ev, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, KindEOF, ev.Kind)
	}
}

func TestDecoderStartAttr(t *testing.T) {
	d := NewDecoder(strings.NewReader(`<alert xmlns="urn:oasis:names:tc:emergency:cap:1.1"/>`))
	ev, err := d.Next()
	require.NoError(t, err)
	a := assert.New(t)
	a.Equal(KindStart, ev.Kind)
	a.Equal([]xml.Attr{{Name: xmlutil.XMLName("xmlns"), Value: "urn:oasis:names:tc:emergency:cap:1.1"}}, ev.Attr)
}

func TestSlice(t *testing.T) {
	s := &Slice{Events: []Event{Start(xmlutil.XMLName("a")), Text("x"), End(xmlutil.XMLName("a"))}}
	got, err := collect(t, s)
	a := assert.New(t)
	a.NoError(err)
	a.Equal([]Event{Start(xmlutil.XMLName("a")), Text("x"), End(xmlutil.XMLName("a")), EOF()}, got)
}

func TestKindString(t *testing.T) {
	a := assert.New(t)
	a.Equal("eof", KindEOF.String())
	a.Equal("start", KindStart.String())
	a.Equal("end", KindEnd.String())
	a.Equal("text", KindText.String())
	a.Equal("Kind(7)", Kind(7).String())
}
