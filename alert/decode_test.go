package alert

import (
	"encoding/xml"
	"testing"

	"github.com/andaru/cap/caperr"
	"github.com/andaru/cap/event"
	"github.com/andaru/cap/xmlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capName(local string) xml.Name { return xmlutil.XMLName(local, Namespace1_2) }

// leaf returns the events of a CAP element holding only text
func leaf(local, text string) []event.Event {
	return []event.Event{event.Start(capName(local)), event.Text(text), event.End(capName(local))}
}

func events(groups ...[]event.Event) []event.Event {
	var out []event.Event
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func wrap(local string, inner ...[]event.Event) []event.Event {
	return events(append(append([][]event.Event{{event.Start(capName(local))}}, inner...),
		[]event.Event{event.End(capName(local))})...)
}

func TestDecode(t *testing.T) {
	src := &event.Slice{Events: wrap("alert",
		leaf("identifier", "id-1"),
		[]event.Event{event.Text("\n  ")},
		wrap("info",
			leaf("event", "Test"),
			wrap("area",
				leaf("areaDesc", "Somewhere"),
				[]event.Event{
					event.Start(capName("circle")),
					event.Text("80,20.7"),
					event.Text(" 10.5"),
					event.End(capName("circle")),
				},
			),
		),
	)}
	got, err := Decode(src)
	require.NoError(t, err)
	a := assert.New(t)
	a.Equal("id-1", got.Identifier)
	require.Len(t, got.Infos, 1)
	a.Equal("Test", got.Infos[0].Event)
	require.Len(t, got.Infos[0].Areas, 1)
	area := got.Infos[0].Areas[0]
	a.Equal("Somewhere", area.AreaDesc)
	require.Len(t, area.Circles, 1)
	a.Equal(80.0, area.Circles[0].Center.Lat())
	a.Equal(20.7, area.Circles[0].Center.Lng())
	a.Equal(10.5, area.Circles[0].Radius)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		events []event.Event
		want   caperr.Kind
	}{
		{
			name:   "end of input inside alert",
			events: events([]event.Event{event.Start(capName("alert"))}, leaf("identifier", "x")),
			want:   caperr.KindEOFReached,
		},
		{
			name:   "end of input inside leaf",
			events: []event.Event{event.Start(capName("alert")), event.Start(capName("sender")), event.Text("s")},
			want:   caperr.KindEOFReached,
		},
		{
			name: "end of input inside foreign element",
			events: []event.Event{
				event.Start(capName("alert")),
				event.Start(xmlutil.XMLName("ext", "urn:x")),
			},
			want: caperr.KindEOFReached,
		},
		{
			name: "mismatched end tag",
			events: []event.Event{
				event.Start(capName("alert")),
				event.Start(capName("info")),
				event.End(capName("area")),
			},
			want: caperr.KindTagNotFound,
		},
		{
			name: "mismatched leaf end tag",
			events: []event.Event{
				event.Start(capName("alert")),
				event.Start(capName("sender")),
				event.End(capName("note")),
			},
			want: caperr.KindTagNotFound,
		},
		{
			name:   "unknown event kind",
			events: []event.Event{event.Start(capName("alert")), {Kind: event.Kind(99)}},
			want:   caperr.KindUnknownEvent,
		},
		{
			name:   "unknown event kind before root",
			events: []event.Event{{Kind: event.Kind(99)}},
			want:   caperr.KindUnknownEvent,
		},
		{
			name:   "end tag after root",
			events: events(wrap("alert", leaf("identifier", "x")), []event.Event{event.End(capName("alert"))}),
			want:   caperr.KindTagNotExpected,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(&event.Slice{Events: tc.events})
			assert.Nil(t, got)
			assert.True(t, caperr.Is(err, tc.want), "want %v, got %v", tc.want, err)
		})
	}
}

func TestDecodeWithVersion(t *testing.T) {
	doc := wrap("alert", leaf("identifier", "x"))
	got, err := Decode(&event.Slice{Events: doc}, WithVersion(Version1_2), WithNamespaceScan())
	require.NoError(t, err)
	assert.Equal(t, Version1_2, got.Version)

	_, err = Decode(&event.Slice{Events: doc}, WithVersion(Version1_0))
	assert.True(t, caperr.Is(err, caperr.KindNamespaceNotFound))
}
