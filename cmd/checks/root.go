package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/godouble/godouble/internal/config"
	"github.com/godouble/godouble/internal/harness"
	"github.com/godouble/godouble/pkg/logger"
)

// newRootCmd builds the CLI over the given check list. Output meant for
// humans goes to out; structured logs go to the command's stderr.
func newRootCmd(out io.Writer, checkList []harness.Check) *cobra.Command {
	root := &cobra.Command{
		Use:           "checks",
		Short:         "Run the registered scenario checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(out, checkList))
	root.AddCommand(newListCmd(out, checkList))
	return root
}

func newRunCmd(out io.Writer, checkList []harness.Check) *cobra.Command {
	var (
		filter   string
		failFast bool
		verbose  bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run checks and exit non-zero if any fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags override env and file config when set explicitly.
			if cmd.Flags().Changed("run") {
				cfg.Run.Filter = filter
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.Run.FailFast = failFast
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Output.Verbose = verbose
			}
			if cmd.Flags().Changed("no-color") {
				cfg.Output.NoColor = noColor
			}

			log := logger.New(cmd.ErrOrStderr(), cfg.App.LogLevel)
			reporter := harness.NewReporter(out, !cfg.Output.NoColor, cfg.Output.Verbose)
			runner := harness.NewRunner(checkList,
				harness.WithLogger(log),
				harness.WithReporter(reporter),
				harness.WithFailFast(cfg.Run.FailFast),
			)

			summary, err := runner.Run(cfg.Run.Filter)
			if err != nil {
				return err
			}
			if !summary.Passed() {
				_, failed := summary.Counts()
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "run", "r", "", "regular expression selecting checks by name")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop after the first failing check")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print passing checks too")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func newListCmd(out io.Writer, checkList []harness.Check) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered checks without running them",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range checkList {
				fmt.Fprintln(out, c.Name)
			}
			fmt.Fprintf(out, "%d check(s) registered\n", len(checkList))
			return nil
		},
	}
}
