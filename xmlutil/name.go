package xmlutil

import "encoding/xml"

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// StartString returns n formatted as a start tag, e.g. <area xmlns="...">
func StartString(n xml.Name) string { return elemString(n, "<") }

// EndString returns n formatted as an end tag, e.g. </area xmlns="...">
func EndString(n xml.Name) string { return elemString(n, "</") }

func elemString(n xml.Name, pfx string) string {
	local := n.Local
	if local == "" {
		return ""
	}
	if ns := n.Space; ns != "" {
		return pfx + local + ` xmlns="` + ns + `">`
	}
	return pfx + local + ">"
}
