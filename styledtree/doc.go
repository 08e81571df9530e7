/*
Package styledtree applies the cascade to whole documents.

A styled tree mirrors the element structure of a parse tree from package
golang.org/x/net/html: every node pairs an element with the element's
composed style, so inherited properties carry concrete values and
lengths are absolute. Build walks a document top down and styles
independent subtrees concurrently; the resulting tree is immutable and
safe to share between goroutines.

Styled trees contain element nodes only. Text takes its style from the
enclosing element, which layout clients look up through the tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.styledtree")
}
