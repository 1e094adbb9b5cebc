package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/locale"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site content",
}

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content collections and language catalogs",
	Long: `Loads every collection and reports malformed JSON, duplicate ids, missing
translations, unknown skill categories, levels outside 0-100 and bad dates.
Catalog keys present in English but missing from Arabic are reported too.
Exits non-zero when anything is wrong.`,
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out := cmd.OutOrStdout()
	problems := content.Check(ctx, contentSource(cfg))
	for _, p := range problems {
		fmt.Fprintln(out, p)
	}

	bundle := locale.DefaultBundle()
	missing := 0
	for _, tag := range locale.Supported {
		for _, key := range bundle.Missing(tag) {
			fmt.Fprintf(out, "locale %s: missing %s\n", tag, key)
			missing++
		}
	}

	if n := len(problems) + missing; n > 0 {
		return errors.Errorf("%d problem(s) found", n)
	}
	fmt.Fprintln(out, "content ok")
	return nil
}
