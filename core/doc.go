// Package core defines the shared types used across sinklog.
//
// It provides the Level type for severity filtering, the Record type that
// represents a single log event on its way to a transport, and Format, the
// two-branch message formatter used by every level method.
//
// Levels are totally ordered from Trace (most verbose) to Fatal. Off sorts
// after Fatal and is only meaningful as a threshold: a sink whose threshold
// is Off accepts nothing, and nothing can be logged at Off.
package core
