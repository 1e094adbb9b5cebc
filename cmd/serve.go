package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentURL string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serves the portfolio, its /data feeds, the motion plan API, the contact
endpoint and the admin dashboard until interrupted.

Examples:
  folio serve
  PORT=3000 folio serve --config folio.yaml
  folio serve --content-url https://cdn.example.com`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&contentURL, "content-url", "", "fetch collections from <url>/data/<name>.json instead of local files")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src := contentSource(cfg)
	if contentURL != "" {
		if err = cfg.CheckContentURL(contentURL); err != nil {
			return err
		}
		src = content.NewHTTPSource(contentURL)
	}

	var store *server.Store
	store, err = server.OpenStore(cfg.DBPath)
	if err != nil {
		err = errors.Wrap(err, "failed to open store")
		return err
	}
	defer store.Close()

	var srv *server.Server
	srv, err = server.New(cfg, store, src)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
