// Package clipboard resolves a single paste gesture into exactly one
// outcome, checked in priority order: an image on the system clipboard, an
// HTML payload on the system clipboard, then the internally copied node set
// from a prior copy gesture. Both the keyboard shortcut and the native
// paste event funnel into the same resolution logic so behavior does not
// depend on the trigger.
//
// System clipboard access varies across browsers and sessions and is
// expected to fail intermittently; read failures are swallowed with a debug
// log and the next source is tried. Upload failures on the image path are
// surfaced as a toast and leave the graph unchanged.
package clipboard
