package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"hostadmin/internal/config"
	"hostadmin/internal/registry"
	"hostadmin/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCommand constructs the 'report' subcommand that computes the expiry
// report once and writes it to stdout as JSON.
func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Computes the expiry report and prints it as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			windowDays, _ := cmd.Flags().GetInt("window")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))

			report, err := reg.ExpiryReport(ctx, time.Now(), windowDays)
			if err != nil {
				logger.Fatal(ctx, "could not build expiry report", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				logger.Fatal(ctx, "could not encode expiry report", zap.Error(err))
			}
		},
	}

	cmd.Flags().Int("window", 0, "Lookahead window in days (0 uses the configured default)")

	return cmd
}
