// Package event defines the sink through which the engine reports
// semantic events. Any transport (console, log file, GUI buffer)
// implements the one-method Sink interface; timestamp formatting is
// the sink's concern, not the engine's.
package event

import "fmt"

// Fixed message tags. Every emitted message starts with one of these.
const (
	TagCreated  = "[CREATED]"
	TagDeleted  = "[DELETED]"
	TagModified = "[MODIFIED]"
	TagInfo     = "[INFO]"
	TagError    = "[ERROR]"
)

// Sink receives ordered textual events. The engine calls Emit
// synchronously and never blocks beyond the call itself, so
// implementations must be non-blocking or bounded-latency.
type Sink interface {
	Emit(message string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(message string)

// Emit calls f(message).
func (f SinkFunc) Emit(message string) { f(message) }

// Created formats a created-path event message.
func Created(path string) string { return TagCreated + " " + path }

// Deleted formats a deleted-path event message.
func Deleted(path string) string { return TagDeleted + " " + path }

// Modified formats a modified-path event message.
func Modified(path string) string { return TagModified + " " + path }

// Infof formats an informational event message.
func Infof(format string, args ...any) string {
	return TagInfo + " " + fmt.Sprintf(format, args...)
}

// Errorf formats an error event message.
func Errorf(format string, args ...any) string {
	return TagError + " " + fmt.Sprintf(format, args...)
}

// Multi fans a single event out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(message string) {
		for _, s := range sinks {
			s.Emit(message)
		}
	})
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(string) {})
