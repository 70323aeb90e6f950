/*
Package observability exposes Prometheus metrics for specification runs.

Metrics are registered on a caller-supplied prometheus.Registerer so that several
runs (or tests) never collide on the global registry. Per-example metrics are
collected by decorating the live formatter:

	m := observability.NewMetrics(prometheus.NewRegistry())
	f := m.Formatter(formatter.NewConsole(os.Stdout))

Run level metrics are recorded by the runner through ObserveRun.
*/
package observability
