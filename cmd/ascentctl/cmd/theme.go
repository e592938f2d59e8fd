package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limbo/ascent/internal/banner"
	"github.com/limbo/ascent/pkg/preferences"
	"github.com/spf13/cobra"
)

func preferencesPath() string {
	if p := os.Getenv("ASCENT_PREFERENCES"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ascent.yaml"
	}
	return filepath.Join(dir, "ascent", "preferences.yaml")
}

func openPreferences() (*preferences.FileStore, error) {
	return preferences.Open(preferencesPath(), banner.KnownTheme)
}

func ThemeCmd() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the default banner theme",
	}
	themeCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prefs.Theme())
			return nil
		},
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:   "set <theme>",
		Short: "Persist a new theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			return prefs.SetTheme(args[0])
		},
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(banner.Themes()))
			for _, t := range banner.Themes() {
				names = append(names, t.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	})
	return themeCmd
}
