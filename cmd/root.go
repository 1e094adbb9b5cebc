package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Bilingual portfolio site with scroll-driven motion",
	Long: `folio serves a single-page English/Arabic portfolio. Content comes from
JSON collections (projects, skills, experiences), copy from per-language
catalogs, and every section's entrance, scroll and hover motion is planned
server-side and shipped to the page as JSON.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (environment variables override it)")
}

func loadConfig() (cfg config.Config, err error) {
	return config.Load(configFile)
}

// contentSource reads collections from the configured data directory, or
// the copy built into the binary when none is set.
func contentSource(cfg config.Config) content.Source {
	if cfg.DataDir != "" {
		return content.DirSource(cfg.DataDir)
	}
	return content.Embedded()
}
