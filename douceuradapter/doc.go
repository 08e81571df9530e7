/*
Package douceuradapter is a CSS front-end for the cascade engine on top of
the douceur parser (https://github.com/aymerick/douceur).

douceur handles the block structure of a stylesheet and hands out rules
with raw selector preludes and property/value strings. This package
compiles that output into the engine's form: selector chains for the sheet
index, and packed bytecode for the declarations. Compilation follows the
CSS error handling rules: a declaration that does not parse is dropped and
the rest of its block stands, a selector that does not parse drops its
whole rule.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceuradapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.douceur'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.douceur")
}
