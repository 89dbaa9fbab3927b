/*
Package cap is a set of Common Alerting Protocol (CAP) support libraries.

The alert package decodes CAP 1.0, 1.1 and 1.2 alert documents into a
typed model of alerts, info blocks, areas and resources. Decoding is a
streaming recursive descent over namespaced element events and either
yields a complete alert or a single typed error.

Supporting packages:

  - caperr: the closed set of decoding error kinds
  - event: the element event stream and its encoding/xml tokenizer
  - geometry: polygon and circle decoding and point containment
  - xmlutil: XML name and namespace declaration helpers

The capparse command (cmd/capparse) decodes documents from files or
standard input and prints them as JSON or YAML.
*/
package cap
