package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/banner"
	"github.com/limbo/ascent/pkg/config"
	"github.com/spf13/cobra"
)

func RenderCmd(cfg *config.Config) *cobra.Command {
	var (
		opts   banner.Options
		userID string
		out    string
		html   bool
	)
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a banner PNG for a user, or for the demo journey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Theme == "" {
				prefs, err := openPreferences()
				if err != nil {
					return err
				}
				opts.Theme = prefs.Theme()
			}
			now := time.Now()
			snap := banner.DemoSnapshot(now)
			if userID != "" {
				uid, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				journeys, err := journeyService(cmd, cfg)
				if err != nil {
					return err
				}
				if snap, err = journeys.Snapshot(cmd.Context(), uid); err != nil {
					return err
				}
			}
			doc, err := banner.Render(snap, opts, now)
			if err != nil {
				return err
			}
			if out == "" {
				out = "shift-ascent-" + doc.Format.Name + ".png"
				if html {
					out = "shift-ascent-" + doc.Format.Name + ".html"
				}
			}
			if html {
				return writeFile(cmd, out, []byte(doc.HTML))
			}
			png, err := rasterize(cmd, cfg, doc)
			if err != nil {
				return err
			}
			return writeFile(cmd, out, png)
		},
	}
	f := renderCmd.Flags()
	f.StringVar(&userID, "user", "", "user id, the demo journey when empty")
	f.StringVar(&opts.Format, "format", banner.DefaultFormat, "banner format")
	f.StringVar(&opts.Theme, "theme", "", "banner theme, the saved preference when empty")
	f.StringVar(&opts.Layout, "layout", banner.DefaultLayout, "banner layout")
	f.StringVar(&opts.Hook, "hook", "", "headline hook")
	f.StringVar(&opts.Quote, "quote", "", "quote for the wisdom-drop layout")
	f.BoolVar(&opts.ShowStats, "stats", false, "show step stats")
	f.BoolVar(&html, "html", false, "write the HTML document instead of rasterizing it")
	f.StringVarP(&out, "out", "o", "", "output file")
	return renderCmd
}

func rasterize(cmd *cobra.Command, cfg *config.Config, doc *banner.Document) ([]byte, error) {
	r, err := banner.LaunchRod(cfg.GetString("CHROME_BIN"))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Rasterize(cmd.Context(), doc)
}

func writeFile(cmd *cobra.Command, path string, body []byte) error {
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "banner written to %s\n", path)
	return nil
}

