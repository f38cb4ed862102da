package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "hostpatrol <config.yaml>",
		Short: "Run remote health checks and report the results",
		Long: `Hostpatrol connects to each configured server over SSH, runs its
checks, and posts a summary to a Slack-compatible webhook. One pass per
invocation; schedule it with cron for periodic monitoring.

The webhook URL is read from the SLACK_HOOK_URL environment variable
(a .env file in the working directory is honored).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = args[0]
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.full, "full", "f", false, "post the report even when every check passes")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "print the report to stdout")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 1, "number of hosts evaluated concurrently")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "SSH connection timeout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
