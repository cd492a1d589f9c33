package cli

import (
	"github.com/spf13/cobra"
	"github.com/yigit/coursedesk/internal/server"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.NewServer(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}
