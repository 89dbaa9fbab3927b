// Package alert decodes Common Alerting Protocol (CAP) 1.0, 1.1 and 1.2
// alert documents.
//
// Parse walks the document's element events with a recursive descent
// reader per composite element (alert, info, area, resource). Children
// may appear in any order. A child element in the document's CAP
// namespace which is not part of the vocabulary fails the parse, while
// elements in any other namespace are skipped along with their
// content. Either a complete Alert or a single error is returned; the
// error chain always holds a *caperr.Error naming the failure.
//
// Descriptive enumerated fields (status, msgType, scope, category,
// urgency, severity, certainty and responseType) holding an unknown
// token are left unset rather than failing the parse. The document
// namespace, which selects the protocol version, must be known.
//
//	a, err := alert.Parse(doc)
//	if err != nil {
//		kind, _ := caperr.KindOf(err)
//		...
//	}
//	for _, info := range a.Infos {
//		for _, area := range info.Areas {
//			if area.ContainsPoint(lat, lng) {
//				...
//			}
//		}
//	}
//
// Alerts may also be built directly:
//
//	a := alert.New().AddCode("IPAWSv1.0").AddInfo(func(i *alert.Info) {
//		i.Event = "Flood Warning"
//		i.AddCategory(alert.CategoryMet).AddArea("Thunder Bay", func(a *alert.Area) {
//			a.AddCircle(48.38, -89.25, 10)
//		})
//	})
package alert
