package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"nftcatalog/internal/app/client"
)

type ctxKey string

// AppKey is the context key under which root stores the client app.
const AppKey ctxKey = "app"

// RecordCmd is the parent command for all record operations
var RecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage catalog records",
	Long:  `Create, list, fetch, update and delete NFT records.`,
}

func appFromCmd(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(AppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}
