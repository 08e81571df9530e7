/*
Package style defines the value vocabulary of the selection engine: property
identifiers, fixed-point numbers, units, colors, and the ComputedStyle type
which holds the outcome of a selection run for one document node.

A ComputedStyle is produced in two phases. Selecting yields a style where
inherited-but-unset properties still carry the inherit placeholder; composing
it against the parent's already-composed style resolves those placeholders
and converts the remaining font-relative units into absolute ones. Both
phases are driven from the root package; this package only holds the data
and its accessors.

Property groups that rarely occur on real nodes (uncommon, page and aural
properties) live in extension blocks which are allocated on first write, so
a plain paragraph pays for 60 slots, not 82.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}
