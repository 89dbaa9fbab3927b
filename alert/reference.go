package alert

import (
	"strings"
	"time"
	"unicode"

	"github.com/andaru/cap/caperr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Reference identifies an earlier message by sender, identifier and
// sent time.
type Reference struct {
	Sender     string    `json:"sender" yaml:"sender"`
	Identifier string    `json:"identifier" yaml:"identifier"`
	Sent       time.Time `json:"sent" yaml:"sent"`
}

// String returns r in "sender,identifier,sent" form
func (r Reference) String() string {
	return r.Sender + "," + r.Identifier + "," + r.Sent.Format(time.RFC3339)
}

// ParseReference decodes a single "sender,identifier,sent" group. The
// group must have exactly three fields and sent must be an RFC 3339
// timestamp.
func ParseReference(group string) (Reference, error) {
	fields := strings.Split(group, ",")
	if len(fields) != 3 {
		return Reference{}, errors.WithStack(caperr.ParseReference(group))
	}
	sent, err := time.Parse(time.RFC3339, fields[2])
	if err != nil {
		return Reference{}, errors.WithStack(caperr.ParseReference(group, caperr.WithCause(err)))
	}
	return Reference{Sender: fields[0], Identifier: fields[1], Sent: sent}, nil
}

// ParseReferences decodes whitespace separated reference groups.
//
// When strict is false, malformed groups are dropped and the well
// formed groups are returned. When strict is true, the first malformed
// group fails the whole list.
func ParseReferences(text string, strict bool) ([]Reference, error) {
	var refs []Reference
	for _, group := range strings.Fields(text) {
		ref, err := ParseReference(group)
		if err != nil {
			if strict {
				return nil, err
			}
			if glog.V(1) {
				glog.Infof("dropping reference: %v", err)
			}
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// splitList splits a CAP list of whitespace separated tokens. A token
// enclosed in double quotes may contain whitespace; the quotes are
// removed and empty tokens are dropped.
func splitList(s string) []string {
	var (
		tokens []string
		b      strings.Builder
		quoted bool
	)
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range s {
		switch {
		case r == '"':
			if quoted {
				flush()
			}
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}
