/*
Package caperr defines the closed set of errors returned while
deserialising a Common Alerting Protocol document.

Every failure is an *Error carrying a Kind. Callers distinguish
failures by Kind rather than by message text:

	if caperr.Is(err, caperr.KindNamespaceNotFound) {
		// not a CAP document
	}

Errors are fatal to the parse that produced them; there is no partial
result alongside an error.
*/
package caperr
