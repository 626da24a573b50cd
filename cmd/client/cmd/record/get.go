package record

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nftcatalog/internal/domain/record"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		rec, err := app.GetRecord(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		switch getFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		default:
			printRecordHuman(rec)
			return nil
		}
	},
}

func printRecordHuman(rec *record.Record) {
	fmt.Printf("ID:          %s\n", rec.ID)
	fmt.Printf("Name:        %s\n", rec.Name)
	fmt.Printf("Description: %s\n", rec.Description)
	fmt.Printf("Image URL:   %s\n", rec.ImageURL)
	fmt.Printf("Rarity:      %g\n", rec.RarityScore)
	fmt.Printf("Created:     %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	if rec.UpdatedAt != nil {
		fmt.Printf("Updated:     %s\n", rec.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func init() {
	GetCmd.Flags().StringVar(&getFormat, "format", "human", "output format: human, json")
}
