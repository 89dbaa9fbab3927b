package alert

import (
	"encoding/json"
	"testing"

	"github.com/andaru/cap/caperr"
	"github.com/stretchr/testify/assert"
)

func TestSniff(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.0"/>`, want: Version1_0},
		{input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.1"/>`, want: Version1_1},
		{input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2"/>`, want: Version1_2},
		// the first version in 1.0, 1.1, 1.2 order wins, wherever it appears
		{input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2"><note>urn:oasis:names:tc:emergency:cap:1.0</note></alert>`, want: Version1_0},
		{input: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.3"/>`, wantErr: true},
		{input: `<alert/>`, wantErr: true},
		{input: ``, wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := Sniff(tc.input)
			if tc.wantErr {
				a.True(caperr.Is(err, caperr.KindNamespaceNotFound), "%v", err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestVersionFromNamespace(t *testing.T) {
	a := assert.New(t)
	for _, v := range []Version{Version1_0, Version1_1, Version1_2} {
		got, err := VersionFromNamespace(v.Namespace())
		a.NoError(err)
		a.Equal(v, got)
	}
	for _, ns := range []string{"", "urn:oasis:names:tc:emergency:cap:1.2 ", "URN:OASIS:NAMES:TC:EMERGENCY:CAP:1.2", "http://www.w3.org/1999/xhtml"} {
		_, err := VersionFromNamespace(ns)
		a.True(caperr.Is(err, caperr.KindEnumNotFound), "%q: %v", ns, err)
	}
}

func TestVersionText(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.0", Version1_0.String())
	a.Equal("1.2", Version1_2.String())
	a.Equal("", Version(0).String())
	a.Equal("", Version(9).Namespace())
	a.Equal(Namespace1_1, Version1_1.Namespace())

	b, err := json.Marshal(struct{ V Version }{Version1_1})
	a.NoError(err)
	a.JSONEq(`{"V":"1.1"}`, string(b))

	var v Version
	a.NoError(v.UnmarshalText([]byte(" 1.2 ")))
	a.Equal(Version1_2, v)
	a.Error(v.UnmarshalText([]byte("2.0")))
}
