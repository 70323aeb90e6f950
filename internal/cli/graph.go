package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/runner"
)

func newGraphCommand(s Suite) *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the context tree visualization",
		Long:  `Outputs a Mermaid diagram (graph TD) of the contexts, hooks and examples of the specification.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := s.Spec()

			status, _ := cmd.Flags().GetBool("status")
			if status {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				r := runner.New(runner.WithFailFast(cfg.FailFast), runner.WithTrim(cfg.Trim))
				if _, err := r.Run(cmd.Context(), root, s.instance(cfg.Filter())); err != nil {
					return &ExitError{Code: ExitConfig, Err: err}
				}
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(root, status))
			return err
		},
	}

	graphCmd.Flags().Bool("status", false, "Run the specification first and colour nodes by outcome")
	graphCmd.Flags().StringP("tags", "t", "", `Tag filter used with --status`)
	graphCmd.Flags().StringP("exclude", "x", "", "Tags to exclude with --status")
	graphCmd.Flags().Bool("trim", false, "Drop what did not run with --status")
	return graphCmd
}
