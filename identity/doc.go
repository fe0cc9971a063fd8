// Package identity gathers the process identity attached to every record
// shipped by the remote sink.
//
// A Provider resolves an Identity once, usually at logger construction;
// resolution may block (the host may have to ask a cloud service for its
// device id), which is why the logger calls it off the caller's goroutine.
// NewEnricher turns a resolved Identity into a pure Record transform.
package identity
