package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"tubestatus/report"
	"tubestatus/tfl"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	onlyOneSentence bool
	interactive     bool
	debug           bool
	timeout         time.Duration
	endpoint        string
}

func (o rootOptions) reportOptions() report.Options {
	return report.Options{OnlyOneSentence: o.onlyOneSentence}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "tubestatus",
		Level:  log.InfoLevel,
	})
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "tubestatus",
		Short: "Print the current status of every London Underground line",
		Long: `tubestatus asks the TfL unified API for the status of every tube line and
prints one line per tube line, with the line name in its map color.

Lines with a good service print "<line>: Good Service". Other lines print the
reason TfL gives, without its "<Line> Line:" prefix.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				logger.SetLevel(log.DebugLevel)
			}
			if opts.timeout <= 0 {
				return errors.Errorf("--timeout must be positive, got %s", opts.timeout)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			client := tfl.NewClient(
				tfl.WithEndpoint(opts.endpoint),
				tfl.WithTimeout(opts.timeout),
				tfl.WithLogger(logger),
			)
			out := cmd.OutOrStdout()
			if opts.interactive {
				return runInteractive(ctx, client, out, opts.reportOptions(), logger)
			}

			renderer := report.NewProfileRenderer(out, termenv.TrueColor)
			return report.NewReporter(client, renderer, out, opts.reportOptions(), logger).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&opts.onlyOneSentence, "only-one-sentence", false, "Cut each disruption reason at its first full stop")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the report and expand full reasons")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log request details to stderr")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", tfl.DefaultTimeout, "Time limit for the status request")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", tfl.TFL_API_DOMAIN+tfl.TUBE_STATUS_PATH, "Line status URL")
	_ = cmd.Flags().MarkHidden("endpoint")

	return cmd
}

// Execute runs the root command. Any error is logged and ends the process
// with status 1. This is called by main.main().
func Execute() {
	logger := newLogger(os.Stderr)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal("cannot report tube status", "err", err)
	}
}
