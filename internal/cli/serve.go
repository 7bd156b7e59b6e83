package cli

import (
	"github.com/spf13/cobra"

	"org-tasks-sync/internal/httpserver"
)

func newServeCmd(o *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sync operations over HTTP",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := o.bootstrap(cmd)
			if err != nil {
				return err
			}
			if port == 0 {
				port = a.cfg.HTTPServer.Port
			}

			srv, err := httpserver.New(a.l, httpserver.Config{
				Port:        port,
				Mode:        a.cfg.HTTPServer.Mode,
				Environment: a.cfg.Environment.Name,
				SyncUseCase: a.uc,
				DefaultList: a.cfg.Sync.DefaultList,
			})
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default: http_server.port)")
	return cmd
}
