package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heshanpadmasiri/codart/analysis"
	"github.com/heshanpadmasiri/codart/diagnostics"
	"github.com/heshanpadmasiri/codart/refactor"
	"github.com/heshanpadmasiri/codart/report"
	"github.com/heshanpadmasiri/codart/student"
)

// app holds the state shared by all subcommands
type app struct {
	configPath string
	verbose    bool
	strict     bool

	cfg    config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	diagnostics.Fatal("codart", err)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "codart",
		Short: "Refactoring and analysis tools for Java sources",
		Long: `codart analyzes Java source trees and applies source to source
refactorings to them.

Settings are read from Config.toml in the working directory unless
--config names another file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default ./"+configFileName+")")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "treat Java syntax errors as fatal")

	cmd.AddCommand(newAnalyzeCmd(a), newConvertCmd(a), newStudentCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := loadConfigFile(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		a.cfg = loadConfig()
	}
	if a.strict {
		a.cfg.Strict = true
	}
	a.logger = diagnostics.NewLogger(cmd.ErrOrStderr(), a.verbose)
	a.logger.Debug("configuration loaded",
		zap.Bool("strict", a.cfg.Strict),
		zap.Int("workers", a.cfg.Workers),
		zap.String("format", a.cfg.Format),
		zap.Strings("exclude", a.cfg.Exclude))
	return nil
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var format string
	var workers int
	cmd := &cobra.Command{
		Use:   "analyze <dir>",
		Short: "Count the attributes and methods of every class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if !slices.Contains(report.Formats, a.cfg.Format) {
				return fmt.Errorf("%w: %q (want one of %s)", report.ErrUnknownFormat, a.cfg.Format, strings.Join(report.Formats, ", "))
			}

			analyzer := analysis.New(analysis.Options{
				Workers: a.cfg.Workers,
				Strict:  a.cfg.Strict,
				Exclude: a.cfg.Exclude,
			}, a.logger)
			result, err := analyzer.AnalyzeDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), result, a.cfg.Format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "report format: "+strings.Join(report.Formats, ", "))
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of files parsed in parallel")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:     "convert-abstract <path>...",
		Aliases: []string{"abstract-to-interface"},
		Short:   "Convert fully abstract classes to interfaces",
		Long: `Convert every fully abstract class to an interface and make the
classes extending it implement the interface instead.

Paths may be files or directories. Files are rewritten in place unless
--dry-run is given, in which case the new sources are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := refactor.New(refactor.Options{
				Strict:  a.cfg.Strict,
				Exclude: a.cfg.Exclude,
			}, a.logger)
			results, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				if result.Skipped {
					fmt.Fprintf(out, "%s: skipped, syntax errors\n", result.Path)
					continue
				}
				for _, msg := range result.Messages {
					fmt.Fprintln(out, msg)
				}
			}

			if !dryRun {
				return refactor.WriteResults(results)
			}
			for _, result := range results {
				if !result.Changed {
					continue
				}
				fmt.Fprintf(out, "--- %s\n%s\n", result.Path, result.Source)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the rewritten sources instead of writing them")
	return cmd
}

func newStudentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "student",
		Short: "Run the student record sample",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			student.Run(cmd.OutOrStdout())
		},
	}
}
