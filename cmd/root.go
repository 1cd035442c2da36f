package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/turnos-app/turnos_backend/cmd/http"
	systemcmd "github.com/turnos-app/turnos_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "turnos",
	Short: "Turnos online appointment booking for psychology practices.",
	Long: `Turnos is the backend for an online appointment platform connecting
patients with psychologists. Patients browse profiles, book, cancel and
reschedule sessions without creating an account.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
