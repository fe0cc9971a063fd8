// Package transport delivers records from the remote sink to an ingestion
// service.
//
// Send must not block the caller and must not retry on the caller's
// goroutine. The HTTP
// transport queues records on a bounded channel and ships them from a
// background goroutine in NDJSON batches, flushing when a batch is full,
// when the flush interval elapses, on Flush, and on Close.
//
// When the queue is full, HTTP applies a per-level OverflowPolicy:
// DropNewest (default for trace, debug, info and warn), DropOldest (default
// for error and fatal), or Block with a configurable timeout, which callers
// must opt into. Dropped, blocked, sent and failed counts are tracked in
// Stats.
//
// Memory keeps records in a slice and is meant for tests.
package transport
