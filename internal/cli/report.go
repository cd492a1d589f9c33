package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	appRepos "github.com/yigit/coursedesk/internal/app/repositories"
	appServices "github.com/yigit/coursedesk/internal/app/services"
	"github.com/yigit/coursedesk/internal/bootstrap"
)

func newReportCommand(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the student CSV report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.OpenDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			reports := appServices.NewReportService(appRepos.NewReportRepository(database.Pool))
			if err := reports.WriteStudentReport(cmd.Context(), w); err != nil {
				return err
			}

			if output != "" && output != "-" {
				lgr.Info().Str("file", output).Msg("Report written")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, stdout when empty")
	return cmd
}
