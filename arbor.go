package arbor

import (
	"context"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
	"github.com/aretw0/arbor/pkg/suite"
)

// Run runs root with a default suite instance and returns the report.
// The error is non-nil only for configuration errors.
func Run(ctx context.Context, root *domain.Context, opts ...runner.Option) (*runner.Report, error) {
	return runner.New(opts...).Run(ctx, root, suite.New())
}

// Main runs the arbor command line for spec with the process arguments and exits.
// spec is called once per command and must return a fresh tree.
func Main(name string, spec func() *domain.Context) {
	os.Exit(cli.Execute(cli.Suite{Name: name, Spec: spec}, os.Args[1:]))
}

// MainWithInstance is Main with a custom suite instance.
func MainWithInstance(name string, spec func() *domain.Context, inst func(domain.TagFilter) domain.Instance) {
	os.Exit(cli.Execute(cli.Suite{Name: name, Spec: spec, Instance: inst}, os.Args[1:]))
}
