package alert

import (
	"time"

	"github.com/andaru/cap/caperr"
	"github.com/pkg/errors"
)

// Alert is a CAP alert message
type Alert struct {
	Version     Version     `json:"version" yaml:"version"`
	Identifier  string      `json:"identifier" yaml:"identifier"`
	Sender      string      `json:"sender,omitempty" yaml:"sender,omitempty"`
	Sent        *time.Time  `json:"sent,omitempty" yaml:"sent,omitempty"`
	Status      Status      `json:"status,omitempty" yaml:"status,omitempty"`
	MsgType     MsgType     `json:"msgType,omitempty" yaml:"msgType,omitempty"`
	Password    string      `json:"password,omitempty" yaml:"password,omitempty"`
	Source      string      `json:"source,omitempty" yaml:"source,omitempty"`
	Scope       Scope       `json:"scope,omitempty" yaml:"scope,omitempty"`
	Restriction string      `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Addresses   []string    `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Codes       []string    `json:"codes,omitempty" yaml:"codes,omitempty"`
	Note        string      `json:"note,omitempty" yaml:"note,omitempty"`
	References  []Reference `json:"references,omitempty" yaml:"references,omitempty"`
	Incidents   []string    `json:"incidents,omitempty" yaml:"incidents,omitempty"`
	Infos       []Info      `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// AddAddress appends addresses
func (a *Alert) AddAddress(addr ...string) *Alert {
	a.Addresses = append(a.Addresses, addr...)
	return a
}

// AddCode appends codes
func (a *Alert) AddCode(code ...string) *Alert {
	a.Codes = append(a.Codes, code...)
	return a
}

// AddReference appends a reference to an earlier message
func (a *Alert) AddReference(sender, identifier string, sent time.Time) *Alert {
	a.References = append(a.References, Reference{Sender: sender, Identifier: identifier, Sent: sent})
	return a
}

// AddIncident appends incident names
func (a *Alert) AddIncident(incident ...string) *Alert {
	a.Incidents = append(a.Incidents, incident...)
	return a
}

// AddInfo appends a new Info in the default language, after applying
// each fn to it.
func (a *Alert) AddInfo(fn ...func(*Info)) *Alert {
	info := NewInfo()
	for _, f := range fn {
		f(info)
	}
	a.Infos = append(a.Infos, *info)
	return a
}

func (p *parser) readAlert() (a *Alert, err error) {
	const tag = "alert"
	a = &Alert{Version: p.version}
	err = p.readElement(tag, func(local string) error {
		switch local {
		case "identifier":
			return p.readString(local, &a.Identifier)
		case "sender":
			return p.readString(local, &a.Sender)
		case "sent":
			t, err := p.readTime(local)
			if t != nil {
				a.Sent = t
			}
			return err
		case "status":
			text, ok, err := p.readText(local)
			if ok {
				a.Status = resolveLenient[Status](statusNames, local, text)
			}
			return err
		case "msgType":
			text, ok, err := p.readText(local)
			if ok {
				a.MsgType = resolveLenient[MsgType](msgTypeNames, local, text)
			}
			return err
		case "password":
			if p.version != Version1_0 {
				break
			}
			return p.readString(local, &a.Password)
		case "source":
			return p.readString(local, &a.Source)
		case "scope":
			text, ok, err := p.readText(local)
			if ok {
				a.Scope = resolveLenient[Scope](scopeNames, local, text)
			}
			return err
		case "restriction":
			return p.readString(local, &a.Restriction)
		case "addresses":
			text, _, err := p.readText(local)
			a.Addresses = append(a.Addresses, splitList(text)...)
			return err
		case "code":
			text, ok, err := p.readText(local)
			if ok {
				a.Codes = append(a.Codes, text)
			}
			return err
		case "note":
			return p.readString(local, &a.Note)
		case "references":
			text, _, err := p.readText(local)
			if err != nil {
				return err
			}
			refs, err := ParseReferences(text, p.strictReferences)
			a.References = append(a.References, refs...)
			return err
		case "incidents":
			text, _, err := p.readText(local)
			a.Incidents = append(a.Incidents, splitList(text)...)
			return err
		case "info":
			info, err := p.readInfo()
			if err == nil {
				a.Infos = append(a.Infos, info)
			}
			return err
		}
		return p.tagNotExpected(tag, local)
	})
	if err != nil {
		return nil, err
	}
	if a.Identifier == "" {
		return nil, errors.WithStack(caperr.TagNotFound("identifier",
			caperr.WithNamespace(p.ns), caperr.WithMessage("alert has no identifier")))
	}
	return a, nil
}
