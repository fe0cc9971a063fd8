// Package formatter defines how records are serialized into bytes.
//
// Text renders the console line "[level] message", optionally with the
// level name colored and a leading timestamp. JSON encodes a full Record,
// identity fields included, as one newline-terminated JSON object using
// zapcore's JSON encoder; a batch of them forms an NDJSON request body.
//
// Both formatters use a pooled bytes.Buffer internally. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log line
// from permanently inflating memory usage.
package formatter
