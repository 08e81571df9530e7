/*
Package sheet holds parsed stylesheets: rules, selector chains and the
selector hash index the engine matches against.

A Stylesheet does not parse anything itself; the douceuradapter package
compiles CSS text into rules and appends them here. The sheet indexes every
selector chain under its most distinctive rightmost detail (id, else first
class, else element name, else universal), and hands the engine pre-sorted
candidate chains: ascending by specificity, ties by rule order. Keeping the
chains sorted here is what lets the engine merge candidates from several
buckets with a plain selection sort and cascade them in one pass.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.sheet")
}
