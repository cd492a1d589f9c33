// Package cli provides the coursedesk command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/yigit/coursedesk/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "coursedesk",
		Short: "Course and enrollment administration API",
		Long: `coursedesk serves a REST API for managing courses, students and
their enrollments, and renders a per-student CSV report.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")

	rootCmd.AddCommand(
		newServeCommand(&configPath),
		newMigrateCommand(&configPath),
		newReportCommand(&configPath),
		newHashPasswordCommand(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
