package alert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capSteps returns an XPath location path whose steps are CAP element
// local names in the namespace ns.
func capSteps(ns string, steps ...string) string {
	var b strings.Builder
	for _, step := range steps {
		fmt.Fprintf(&b, "/*[local-name()='%s' and namespace-uri()='%s']", step, ns)
	}
	return b.String()
}

func capPath(ns string, steps ...string) *xpath.Expr { return xpath.MustCompile(capSteps(ns, steps...)) }

// TestOracle checks the parsed model against an independent XPath
// reading of each fixture.
func TestOracle(t *testing.T) {
	for _, tc := range []struct {
		file string
		ns   string
	}{
		{file: "canada.xml", ns: Namespace1_2},
		{file: "cap11.xml", ns: Namespace1_1},
	} {
		t.Run(tc.file, func(t *testing.T) {
			doc := readFixture(t, tc.file)
			root, err := xmlquery.Parse(strings.NewReader(doc))
			require.NoError(t, err)
			got, err := Parse(doc)
			require.NoError(t, err)

			a := assert.New(t)
			count := func(steps ...string) int {
				return len(xmlquery.QuerySelectorAll(root, capPath(tc.ns, steps...)))
			}
			text := func(steps ...string) string {
				n := xmlquery.QuerySelector(root, capPath(tc.ns, steps...))
				if n == nil {
					return ""
				}
				return strings.TrimSpace(n.InnerText())
			}

			a.Equal(text("alert", "identifier"), got.Identifier)
			a.Equal(text("alert", "sender"), got.Sender)
			a.Equal(count("alert", "code"), len(got.Codes))
			a.Equal(count("alert", "info"), len(got.Infos))

			infos := xmlquery.QuerySelectorAll(root, capPath(tc.ns, "alert", "info"))
			require.Len(t, infos, len(got.Infos))
			for i, infoNode := range infos {
				info := got.Infos[i]
				sub := func(steps ...string) []*xmlquery.Node {
					return xmlquery.QuerySelectorAll(infoNode, xpath.MustCompile("."+capSteps(tc.ns, steps...)))
				}
				a.Len(info.Categories, len(sub("category")))
				a.Len(info.EventCodes, len(sub("eventCode")))
				a.Len(info.Parameters, len(sub("parameter")))
				a.Len(info.Resources, len(sub("resource")))
				areas := sub("area")
				require.Len(t, info.Areas, len(areas))
				for j, areaNode := range areas {
					area := info.Areas[j]
					areaSub := func(step string) []*xmlquery.Node {
						return xmlquery.QuerySelectorAll(areaNode, xpath.MustCompile("."+capSteps(tc.ns, step)))
					}
					a.Len(area.Polygons, len(areaSub("polygon")))
					a.Len(area.Circles, len(areaSub("circle")))
					a.Len(area.Geocodes, len(areaSub("geocode")))
					polygons := areaSub("polygon")
					for k, poly := range area.Polygons {
						a.Len(poly.Points, len(strings.Fields(polygons[k].InnerText())))
					}
				}
			}
		})
	}
}
