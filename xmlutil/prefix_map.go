package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map. The default namespace
// (declared with a plain xmlns attribute) is held under the empty prefix.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap containing the namespace declarations
// found in attrs.
//
// encoding/xml reports xmlns:p="uri" as an attribute named {xmlns p} and
// the default declaration xmlns="uri" as {"" xmlns}.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			pmap[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			pmap[""] = attr.Value
		}
	}
	return pmap
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted lexically
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Namespaces returns the distinct namespace URIs declared, sorted lexically.
func (m PrefixMap) Namespaces() (uris []string) {
	seen := map[string]bool{}
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			uris = append(uris, v)
		}
	}
	sort.Strings(uris)
	return uris
}
