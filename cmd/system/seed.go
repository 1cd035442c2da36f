package system

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/turnos-app/turnos_backend/config"
	"github.com/turnos-app/turnos_backend/internal/seed"
	"github.com/turnos-app/turnos_backend/pkg/database"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset and seed the demo dataset",
		Long: `Wipes all sessions, time slots and psychologists, then inserts the
built-in psychologist profiles with a fresh 30-day slot calendar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 60 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Seeding database...")
			r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			if err := seed.Apply(ctx, client, r); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			fmt.Println("Database seeded successfully.")
			return nil
		},
	}

	return cmd
}
