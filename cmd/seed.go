package cmd

import (
	"retailops/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var seedForce bool

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo accounts, stock and purchase history",
	Long: `Loads the demo data into the configured storage. Without --force nothing is
written when any account already exists.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		uowFactory, closeStorage, err := openStorage(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStorage()

		app := NewCompositionRoot(cfg, uowFactory, nil, logger)
		loaded, err := app.CreateSeedCommandHandler().Handle(cmd.Context(), commands.NewSeedCommand(seedForce))
		if err != nil {
			return err
		}
		if !loaded {
			logger.Info().Msg("accounts already exist; nothing seeded")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when accounts exist")
}
