/*
Package event provides the structural event stream consumed by the CAP
parser.

A Source yields one Event per structural token of an XML document:
element start, element end, character data and end of input. Element
events carry the element's local name and resolved namespace URI, which
is all the parser needs to dispatch on namespace-scoped tags.

Decoder is the Source backed by encoding/xml. Slice replays a fixed
event sequence, which lets tests drive the parser without XML text.
*/
package event
