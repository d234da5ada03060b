// Package telemetry wires up the observability surface every hierclust
// CLI entrypoint shares: a zerolog global logger configured from
// runconfig.Config.LogLevel, a Sentry hook that reports fatal load/format
// errors (input-format and I/O; out-of-memory is left to the Go runtime),
// and a small Prometheus registry tracking recursion depth, nodes
// processed, and the modularity reached, dumped to a textfile for
// node_exporter's textfile collector rather than served over HTTP, since
// these are short-lived batch CLI runs, not long-running services.
package telemetry
