// Package ui contains the Fyne-based desktop user interface: the URL form,
// metadata card, format picker, and the download/hand-off panel. Handlers
// thread an explicit session state value; there are no ambient globals. All
// UI strings are localized via Localization.
package ui
