// @title E-Gest API
// @version 1.0
// @description Document compliance for suppliers, companies, workers and organizations.
// @BasePath /api/v1
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/egest-app/egest/internal/interfaces/cli/compliance"
	"github.com/egest-app/egest/internal/interfaces/cli/migrate"
	"github.com/egest-app/egest/internal/interfaces/cli/server"
	"github.com/egest-app/egest/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "egest",
		Short:   "E-Gest - document compliance service",
		Long:    `E-Gest tracks the documents suppliers, companies, workers and organizations must keep valid, and reports who is payable.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		compliance.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
