/*
Package htmltree binds the cascade engine to HTML parse trees of package
golang.org/x/net/html.

The package's Adapter answers the engine's structural and attribute
questions directly from html.Node links, translates presentational markup
(align, bgcolor and friends) into declaration blocks, and compiles style
attributes through the douceuradapter. StyleElements pulls embedded
<style> elements out of a parsed page, so that styling a document is a
parse, an extraction and a selection context away.

The adapter holds no document state. Interaction pseudo-classes, which a
parse tree cannot answer on its own, are wired to caller-supplied
callbacks; without them :visited, :hover, :active and :focus match nothing.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.htmltree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.htmltree")
}
