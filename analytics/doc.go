// Package analytics defines the fire-and-forget event sink the engine emits
// usage events into. Sinks never block a gesture and never affect graph
// state; a panicking sink is absorbed.
package analytics
