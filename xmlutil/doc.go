// Package xmlutil holds small helpers around encoding/xml names and
// namespace declarations.
package xmlutil
