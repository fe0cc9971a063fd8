// Package handler provides the Sink interface and its built-in
// implementations for dispatching log lines to destinations.
//
// Every sink carries its own enable flag and minimum level and decides on
// its own whether a line is emitted:
//
//   - a disabled sink drops everything without side effects;
//   - a line whose level is below the sink's threshold is dropped;
//   - an Off threshold accepts nothing;
//   - anything else is written to the destination and Offer reports true.
//
// Built-in sinks:
//
//   - ConsoleSink writes "[level] message" lines to any io.Writer
//     (default: stdout), coloring the level name on terminals.
//   - RemoteSink turns the line into a core.Record, tags it with the
//     scope, enriches it with the process identity and hands it to a
//     transport.Transport. Delivery failures are counted, never returned.
//
// Sinks are immutable after construction and safe for concurrent use. All
// sinks track emitted, filtered and failed counts via Stats and, when given
// a Metrics instance, export them as Prometheus counters.
package handler
