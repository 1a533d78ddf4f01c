// Package form is the interactive terminal front end of the journey wizard.
//
// [Panel] implements [wizard.Renderer]: it keeps the displayed value of every
// field and the visible step, status and navigation state. [Run] repeatedly
// prints the status line, lets the user edit the visible panel with a
// charmbracelet/huh form, and turns the chosen navigation action into a
// wizard operation.
package form
