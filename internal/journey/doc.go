// Package journey defines the commuter journey draft collected by the
// nsjourney wizard.
//
// A [Draft] is split across four ordered [Step] panels. Each step owns a fixed
// set of [Field] values (plus the departure weekdays on the first step), and
// [Validate] checks a step's fields in a fixed order, returning the first
// failing rule as a [*ValidationError].
//
// A [Snapshot] pairs a Draft with the time it was saved and is the unit
// written to the key-value store. [DecodeSnapshot] never trusts stored input:
// missing fields take their defaults, unknown weekdays are dropped, and
// anything else that does not parse is reported as [ErrMalformedSnapshot].
package journey
