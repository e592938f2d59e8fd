package main

import (
	"os"

	"github.com/limbo/ascent/cmd/ascentctl/cmd"
	"github.com/limbo/ascent/pkg/cleanup"
	"github.com/limbo/ascent/pkg/config"
	"github.com/limbo/ascent/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.New()
	logger.Init(cfg.IsDevelopment(), "")

	rootCmd := &cobra.Command{
		Use:           "ascentctl",
		Short:         "Operator tools for the SHIFT ASCENT backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.MigrateCmd(cfg))
	rootCmd.AddCommand(cmd.ExportCmd(cfg))
	rootCmd.AddCommand(cmd.RenderCmd(cfg))
	rootCmd.AddCommand(cmd.ThemeCmd())

	err := rootCmd.Execute()
	cleanup.CleanUp()
	if err != nil {
		os.Exit(1)
	}
}
