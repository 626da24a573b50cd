package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"nftcatalog/cmd/client/cmd/record"
	"nftcatalog/internal/app/client"
	"nftcatalog/internal/app/client/config"
	"nftcatalog/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "NFT catalog command line client",
	Long: `catalog talks to an NFT catalog server over HTTP.

Records can be created, listed in descending rarity order, fetched,
merge-updated and deleted.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)
	app := client.New(cfg, log)

	cmd.SetContext(context.WithValue(cmd.Context(), record.AppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "catalog server address (host:port)")

	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
}
