/*
Package runner orchestrates a complete specification run.

It sits between the pure context tree (pkg/domain) and the outside world: it binds
the suite instance, stamps the run with an ID, wires formatters and metrics, and
collects the outcome into a Report.

# Usage

	r := runner.New(
		runner.WithFormatter(formatter.NewConsole(os.Stdout)),
		runner.WithFailFast(true),
		runner.WithLogger(logger),
	)

	report, err := r.Run(ctx, root, suite.New())
	if err != nil {
		// configuration error: conflicting sync and async hooks
	}
	if !report.Success() {
		os.Exit(1)
	}
*/
package runner
