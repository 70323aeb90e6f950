// Package cli implements the arbor command line on top of cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/suite"
)

// Suite describes the specification a binary runs.
type Suite struct {
	// Name is used as the command name.
	Name string

	// Spec declares a fresh context tree. It is called once per command.
	Spec func() *domain.Context

	// Instance creates the suite instance for a run. If nil, a suite.Suite with
	// the configured filter is used.
	Instance func(filter domain.TagFilter) domain.Instance
}

func (s Suite) instance(filter domain.TagFilter) domain.Instance {
	if s.Instance != nil {
		return s.Instance(filter)
	}
	return suite.New(suite.WithFilter(filter))
}

// NewRootCommand builds the command tree. "run" is also the default action.
func NewRootCommand(s Suite, stdout, stderr io.Writer) *cobra.Command {
	name := s.Name
	if name == "" {
		name = "arbor"
	}

	rootCmd := &cobra.Command{
		Use:           name,
		Short:         "Run a behaviour specification",
		Long:          `Runs the nested contexts and examples of a specification and reports every result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default arbor.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	runCmd := newRunCommand(s)
	rootCmd.AddCommand(runCmd, newGraphCommand(s))

	// 'run' is the default when no sub-command is given
	addRunFlags(rootCmd)
	rootCmd.RunE = runCmd.RunE

	return rootCmd
}

// Execute runs the command line for s and returns the process exit code.
func Execute(s Suite, args []string) int {
	cmd := NewRootCommand(s, os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return ExitCode(err)
}
