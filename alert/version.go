package alert

import (
	"strings"

	"github.com/andaru/cap/caperr"
	"github.com/pkg/errors"
)

// Version is a CAP protocol version
type Version int

const (
	// Version1_0 is CAP 1.0
	Version1_0 Version = iota + 1
	// Version1_1 is CAP 1.1
	Version1_1
	// Version1_2 is CAP 1.2
	Version1_2
)

// Namespace URNs of the recognized CAP versions
const (
	Namespace1_0 = "urn:oasis:names:tc:emergency:cap:1.0"
	Namespace1_1 = "urn:oasis:names:tc:emergency:cap:1.1"
	Namespace1_2 = "urn:oasis:names:tc:emergency:cap:1.2"
)

var versionNames = []string{"", "1.0", "1.1", "1.2"}

// namespaces is indexed by Version and ordered for Sniff
var namespaces = []string{"", Namespace1_0, Namespace1_1, Namespace1_2}

func (v Version) String() string { return enumString(versionNames, v) }

// Namespace returns the namespace URN of v, or the empty string for an
// unknown version.
func (v Version) Namespace() string {
	if v > 0 && int(v) < len(namespaces) {
		return namespaces[v]
	}
	return ""
}

func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Version) UnmarshalText(b []byte) error {
	return enumUnmarshalText(versionNames, "version", v, b)
}

// VersionFromNamespace returns the Version whose namespace URN is
// exactly ns. Unlike the descriptive enumerates, an unknown namespace
// is always an error.
func VersionFromNamespace(ns string) (Version, error) {
	return resolveStrict[Version](namespaces, "alert", ns)
}

// Sniff returns the first CAP version whose namespace URN appears
// anywhere in document, checking 1.0, 1.1 and 1.2 in that order.
//
// This is a plain substring search. A document quoting another
// version's URN in its text may be misidentified.
func Sniff(document string) (Version, error) {
	for v := Version1_0; v <= Version1_2; v++ {
		if strings.Contains(document, v.Namespace()) {
			return v, nil
		}
	}
	return 0, errors.WithStack(caperr.NamespaceNotFound(
		caperr.WithMessage("document contains no CAP namespace")))
}
