package alert

import (
	"time"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language of an Info without a language element
const DefaultLanguage = "en-US"

// Info is one language and audience specific rendition of an alert's
// content.
type Info struct {
	Language      string         `json:"language" yaml:"language"`
	Categories    []Category     `json:"categories,omitempty" yaml:"categories,omitempty"`
	Event         string         `json:"event,omitempty" yaml:"event,omitempty"`
	ResponseTypes []ResponseType `json:"responseTypes,omitempty" yaml:"responseTypes,omitempty"`
	Urgency       Urgency        `json:"urgency,omitempty" yaml:"urgency,omitempty"`
	Severity      Severity       `json:"severity,omitempty" yaml:"severity,omitempty"`
	Certainty     Certainty      `json:"certainty,omitempty" yaml:"certainty,omitempty"`
	Audience      string         `json:"audience,omitempty" yaml:"audience,omitempty"`
	EventCodes    []EventCode    `json:"eventCodes,omitempty" yaml:"eventCodes,omitempty"`
	Effective     *time.Time     `json:"effective,omitempty" yaml:"effective,omitempty"`
	Onset         *time.Time     `json:"onset,omitempty" yaml:"onset,omitempty"`
	Expires       *time.Time     `json:"expires,omitempty" yaml:"expires,omitempty"`
	SenderName    string         `json:"senderName,omitempty" yaml:"senderName,omitempty"`
	Headline      string         `json:"headline,omitempty" yaml:"headline,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Instruction   string         `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	Web           string         `json:"web,omitempty" yaml:"web,omitempty"`
	Contact       string         `json:"contact,omitempty" yaml:"contact,omitempty"`
	Parameters    []Parameter    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Resources     []Resource     `json:"resources,omitempty" yaml:"resources,omitempty"`
	Areas         []Area         `json:"areas,omitempty" yaml:"areas,omitempty"`
}

// NewInfo returns an Info in the default language
func NewInfo() *Info { return &Info{Language: DefaultLanguage} }

// LanguageTag parses Language as a BCP 47 tag
func (i *Info) LanguageTag() (language.Tag, error) {
	lang := i.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	return language.Parse(lang)
}

// AddCategory appends categories
func (i *Info) AddCategory(c ...Category) *Info {
	i.Categories = append(i.Categories, c...)
	return i
}

// AddResponseType appends response types
func (i *Info) AddResponseType(r ...ResponseType) *Info {
	i.ResponseTypes = append(i.ResponseTypes, r...)
	return i
}

// AddEventCode appends an event code
func (i *Info) AddEventCode(valueName, value string) *Info {
	i.EventCodes = append(i.EventCodes, EventCode{ValueName: valueName, Value: value})
	return i
}

// AddParameter appends a parameter
func (i *Info) AddParameter(valueName, value string) *Info {
	i.Parameters = append(i.Parameters, Parameter{ValueName: valueName, Value: value})
	return i
}

// AddResource appends resources
func (i *Info) AddResource(r ...Resource) *Info {
	i.Resources = append(i.Resources, r...)
	return i
}

// AddArea appends an area described by desc, after applying each fn to
// it.
func (i *Info) AddArea(desc string, fn ...func(*Area)) *Info {
	a := Area{AreaDesc: desc}
	for _, f := range fn {
		f(&a)
	}
	i.Areas = append(i.Areas, a)
	return i
}

func (p *parser) readInfo() (info Info, err error) {
	const tag = "info"
	info.Language = DefaultLanguage
	err = p.readElement(tag, func(local string) error {
		switch local {
		case "language":
			return p.readString(local, &info.Language)
		case "category":
			text, ok, err := p.readText(local)
			if ok {
				if c := resolveLenient[Category](categoryNames, local, text); c != 0 {
					info.Categories = append(info.Categories, c)
				}
			}
			return err
		case "event":
			return p.readString(local, &info.Event)
		case "responseType":
			text, ok, err := p.readText(local)
			if ok {
				if r := resolveLenient[ResponseType](responseTypeNames, local, text); r != 0 {
					info.ResponseTypes = append(info.ResponseTypes, r)
				}
			}
			return err
		case "urgency":
			text, ok, err := p.readText(local)
			if ok {
				info.Urgency = resolveLenient[Urgency](urgencyNames, local, text)
			}
			return err
		case "severity":
			text, ok, err := p.readText(local)
			if ok {
				info.Severity = resolveLenient[Severity](severityNames, local, text)
			}
			return err
		case "certainty":
			text, ok, err := p.readText(local)
			if ok {
				info.Certainty = resolveLenient[Certainty](certaintyNames, local, text)
			}
			return err
		case "audience":
			return p.readString(local, &info.Audience)
		case "eventCode":
			pair, _, err := p.readPair(local)
			if err == nil {
				info.EventCodes = append(info.EventCodes, EventCode(pair))
			}
			return err
		case "effective":
			t, err := p.readTime(local)
			if t != nil {
				info.Effective = t
			}
			return err
		case "onset":
			t, err := p.readTime(local)
			if t != nil {
				info.Onset = t
			}
			return err
		case "expires":
			t, err := p.readTime(local)
			if t != nil {
				info.Expires = t
			}
			return err
		case "senderName":
			return p.readString(local, &info.SenderName)
		case "headline":
			return p.readString(local, &info.Headline)
		case "description":
			return p.readString(local, &info.Description)
		case "instruction":
			return p.readString(local, &info.Instruction)
		case "web":
			return p.readString(local, &info.Web)
		case "contact":
			return p.readString(local, &info.Contact)
		case "parameter":
			pair, _, err := p.readPair(local)
			if err == nil {
				info.Parameters = append(info.Parameters, Parameter(pair))
			}
			return err
		case "resource":
			r, err := p.readResource()
			if err == nil {
				info.Resources = append(info.Resources, r)
			}
			return err
		case "area":
			a, err := p.readArea()
			if err == nil {
				info.Areas = append(info.Areas, a)
			}
			return err
		}
		return p.tagNotExpected(tag, local)
	})
	return info, err
}
