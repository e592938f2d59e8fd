package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/config"
	"github.com/spf13/cobra"
)

// journeyService wires a journey service straight onto the database.
func journeyService(cmd *cobra.Command, cfg *config.Config) (*service.JourneyService, error) {
	pool, err := repository.Connect(cmd.Context(), dbConfig(cfg), 2)
	if err != nil {
		return nil, err
	}
	gw := journey.Gateway{
		Mountains:  repository.NewMountainsRepo(pool),
		Steps:      repository.NewStepsRepo(pool),
		Notes:      repository.NewNotesRepo(pool),
		Milestones: repository.NewMilestonesRepo(pool),
	}
	return service.NewJourneyService(gw, repository.NewUsersRepo(pool), 0), nil
}

func ExportCmd(cfg *config.Config) *cobra.Command {
	var out string
	exportCmd := &cobra.Command{
		Use:   "export <user-id>",
		Short: "Write a user's journey as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			journeys, err := journeyService(cmd, cfg)
			if err != nil {
				return err
			}
			body, err := journeys.Export(cmd.Context(), uid)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(body, '\n'))
				return err
			}
			if err := os.WriteFile(out, body, 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "journey written to %s\n", out)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	return exportCmd
}
