/*
Package cascade selects CSS styles for document nodes.

The engine is document-agnostic: it sees a client's document tree only
through the Adapter interface, which answers the handful of questions
selector matching needs (element name, id, classes, attributes, parent,
previous sibling, link state). Stylesheets are compiled elsewhere (see
package douceuradapter) into rules over an interned string vocabulary and
registered with a Context.

Styling one node is two phases. SelectStyle runs the cascade: it gathers
candidate rules from each sheet's selector index, matches their combinator
chains through the adapter, and lets the winning declarations write the
node's computed style; properties no declaration decided fall back to
inherit placeholders or initial values. Compose then resolves the
placeholders against the parent's composed style and converts font-relative
lengths to absolute ones. The root node needs no composition partner, so
SelectStyle finishes it directly.

A typical styling run walks the document top-down:

	cx := cascade.NewContext[N](adapter, table)
	cx.AppendSheet(userAgentSheet)
	cx.AppendSheet(authorSheet)
	rootStyle, err := cx.SelectStyle(root, sheet.MediaScreen)
	...
	childSel, err := cx.SelectStyle(child, sheet.MediaScreen)
	childStyle, err := cx.Compose(rootStyle, childSel)

Selection contexts are cheap; they hold sheet references, not copies.
A frozen context may be shared by concurrent selection runs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.engine")
}
