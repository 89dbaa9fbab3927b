package alert

import (
	"bytes"
	"fmt"

	"github.com/andaru/cap/caperr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Enumerates are ints whose zero value means unset. Each has a names
// table indexed by value holding its CAP token, with "" at index 0.

// Status is the code denoting the appropriate handling of the alert
type Status int

const (
	StatusActual Status = iota + 1
	StatusExercise
	StatusSystem
	StatusTest
	StatusDraft
)

var statusNames = []string{"", "Actual", "Exercise", "System", "Test", "Draft"}

// MsgType is the code denoting the nature of the alert message
type MsgType int

const (
	MsgTypeAlert MsgType = iota + 1
	MsgTypeUpdate
	MsgTypeCancel
	MsgTypeAck
	MsgTypeError
)

var msgTypeNames = []string{"", "Alert", "Update", "Cancel", "Ack", "Error"}

// Scope is the code denoting the intended distribution of the alert
type Scope int

const (
	ScopePublic Scope = iota + 1
	ScopeRestricted
	ScopePrivate
)

var scopeNames = []string{"", "Public", "Restricted", "Private"}

// Category is the category of the subject event
type Category int

const (
	CategoryGeo Category = iota + 1
	CategoryMet
	CategorySafety
	CategorySecurity
	CategoryRescue
	CategoryFire
	CategoryHealth
	CategoryEnv
	CategoryTransport
	CategoryInfra
	CategoryCBRNE
	CategoryOther
)

var categoryNames = []string{"", "Geo", "Met", "Safety", "Security", "Rescue",
	"Fire", "Health", "Env", "Transport", "Infra", "CBRNE", "Other"}

// ResponseType is the type of action recommended for the target audience
type ResponseType int

const (
	ResponseTypeShelter ResponseType = iota + 1
	ResponseTypeEvacuate
	ResponseTypePrepare
	ResponseTypeExecute
	ResponseTypeAvoid
	ResponseTypeMonitor
	ResponseTypeAssess
	ResponseTypeAllClear
	ResponseTypeNone
)

var responseTypeNames = []string{"", "Shelter", "Evacuate", "Prepare", "Execute",
	"Avoid", "Monitor", "Assess", "AllClear", "None"}

// Urgency is the urgency of the subject event
type Urgency int

const (
	UrgencyImmediate Urgency = iota + 1
	UrgencyExpected
	UrgencyFuture
	UrgencyPast
	UrgencyUnknown
)

var urgencyNames = []string{"", "Immediate", "Expected", "Future", "Past", "Unknown"}

// Severity is the severity of the subject event
type Severity int

const (
	SeverityExtreme Severity = iota + 1
	SeveritySevere
	SeverityModerate
	SeverityMinor
	SeverityUnknown
)

var severityNames = []string{"", "Extreme", "Severe", "Moderate", "Minor", "Unknown"}

// Certainty is the certainty of the subject event
type Certainty int

const (
	CertaintyObserved Certainty = iota + 1
	CertaintyLikely
	CertaintyPossible
	CertaintyUnlikely
	CertaintyUnknown
	// CertaintyVeryLikely is only defined by CAP 1.0
	CertaintyVeryLikely
)

var certaintyNames = []string{"", "Observed", "Likely", "Possible", "Unlikely", "Unknown", "Very Likely"}

func (s Status) String() string       { return enumString(statusNames, s) }
func (m MsgType) String() string      { return enumString(msgTypeNames, m) }
func (s Scope) String() string        { return enumString(scopeNames, s) }
func (c Category) String() string     { return enumString(categoryNames, c) }
func (r ResponseType) String() string { return enumString(responseTypeNames, r) }
func (u Urgency) String() string      { return enumString(urgencyNames, u) }
func (s Severity) String() string     { return enumString(severityNames, s) }
func (c Certainty) String() string    { return enumString(certaintyNames, c) }

func (s Status) MarshalText() ([]byte, error)       { return []byte(s.String()), nil }
func (m MsgType) MarshalText() ([]byte, error)      { return []byte(m.String()), nil }
func (s Scope) MarshalText() ([]byte, error)        { return []byte(s.String()), nil }
func (c Category) MarshalText() ([]byte, error)     { return []byte(c.String()), nil }
func (r ResponseType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (u Urgency) MarshalText() ([]byte, error)      { return []byte(u.String()), nil }
func (s Severity) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
func (c Certainty) MarshalText() ([]byte, error)    { return []byte(c.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	return enumUnmarshalText(statusNames, "status", s, b)
}

func (m *MsgType) UnmarshalText(b []byte) error {
	return enumUnmarshalText(msgTypeNames, "msgType", m, b)
}

func (s *Scope) UnmarshalText(b []byte) error {
	return enumUnmarshalText(scopeNames, "scope", s, b)
}

func (c *Category) UnmarshalText(b []byte) error {
	return enumUnmarshalText(categoryNames, "category", c, b)
}

func (r *ResponseType) UnmarshalText(b []byte) error {
	return enumUnmarshalText(responseTypeNames, "responseType", r, b)
}

func (u *Urgency) UnmarshalText(b []byte) error {
	return enumUnmarshalText(urgencyNames, "urgency", u, b)
}

func (s *Severity) UnmarshalText(b []byte) error {
	return enumUnmarshalText(severityNames, "severity", s, b)
}

func (c *Certainty) UnmarshalText(b []byte) error {
	return enumUnmarshalText(certaintyNames, "certainty", c, b)
}

type enumerate interface{ ~int }

func enumString[E enumerate](names []string, v E) string {
	if v > 0 && int(v) < len(names) {
		return names[v]
	}
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", int(v))
}

func enumUnmarshalText[E enumerate](names []string, tag string, v *E, b []byte) error {
	got, err := resolveStrict[E](names, tag, string(bytes.TrimSpace(b)))
	if err != nil {
		return err
	}
	*v = got
	return nil
}

func lookup(names []string, token string) int {
	for i := 1; i < len(names); i++ {
		if names[i] == token {
			return i
		}
	}
	return 0
}

// resolveStrict returns the variant named by token, or an EnumNotFound
// error when token is not in names.
func resolveStrict[E enumerate](names []string, tag, token string) (E, error) {
	if i := lookup(names, token); i > 0 {
		return E(i), nil
	}
	return 0, errors.WithStack(caperr.EnumNotFound(tag, token))
}

// resolveLenient returns the variant named by token, or the unset
// value when token is not in names.
func resolveLenient[E enumerate](names []string, tag, token string) E {
	i := lookup(names, token)
	if i == 0 && glog.V(1) {
		glog.Infof("<%s>: ignoring unknown value %q", tag, token)
	}
	return E(i)
}
