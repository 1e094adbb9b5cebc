package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/sections"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	timelineSection string
	timelineFormat  string
	timelineLang    string
	timelineSeed    uint64
)

//nolint:gochecknoglobals // Cobra boilerplate
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the motion plan the page would ship",
	Long: `Mounts the page on a 1440x900 desktop viewport and prints each section's
timelines, scroll bindings, idle loops and pointer effects.

Examples:
  folio timeline
  folio timeline --section hero --format json
  folio timeline --lang ar --section projects`,
	RunE: runTimeline,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().StringVar(&timelineSection, "section", "", "only this section ("+strings.Join(sections.SectionNames, ", ")+")")
	timelineCmd.Flags().StringVar(&timelineFormat, "format", "yaml", "output format: yaml or json")
	timelineCmd.Flags().StringVar(&timelineLang, "lang", "", "page language (default from config)")
	timelineCmd.Flags().Uint64Var(&timelineSeed, "seed", 1, "seed for the hero orb drift")
}

func runTimeline(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tag := cfg.Locale()
	if timelineLang != "" {
		if tag, err = locale.Parse(timelineLang); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	p := sections.NewPage(contentSource(cfg), locale.DefaultBundle())
	p.Load(ctx)

	plans := sections.PlanFor(p.View(tag), sections.Options{Tuning: cfg.Tuning(), Seed: timelineSeed})

	var out any = plans
	if timelineSection != "" {
		var found *motion.Plan
		for i := range plans {
			if plans[i].Section == timelineSection {
				found = &plans[i]
			}
		}
		if found == nil {
			return errors.Errorf("unknown section %q", timelineSection)
		}
		out = found
	}

	var data []byte
	switch timelineFormat {
	case "yaml":
		data, err = yaml.Marshal(out)
	case "json":
		data, err = json.MarshalIndent(out, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown format %q", timelineFormat)
	}
	if err != nil {
		err = errors.Wrap(err, "failed to encode plan")
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
