// Package wizard implements the four-step journey draft state machine.
//
// A [Wizard] owns the in-progress [journey.Draft], the active step and the
// current status message. It talks to two collaborators it does not
// implement: a [Renderer] that displays panels and holds the values the user
// typed, and a [Store] that persists the draft under a fixed key.
//
// The UI adapters translate user events into four operations:
//
//   - [Wizard.Bootstrap] once at startup
//   - [Wizard.Advance] for Next / Save Draft
//   - [Wizard.Retreat] for Back
//   - [Wizard.ResetAll] for Reset
//
// Every operation runs to completion synchronously. A Wizard is not safe for
// concurrent use.
package wizard
