package record

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nftcatalog/internal/domain/record"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	Long:  `List all catalog records, ordered by descending rarity score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		records, err := app.ListRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}

		switch listFormat {
		case "json":
			return printRecordsJSON(records)
		default:
			return printRecordsTable(records)
		}
	},
}

func printRecordsTable(records []record.Record) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tName\tRarity\tCreated\tUpdated\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		updated := "-"
		if rec.UpdatedAt != nil {
			updated = rec.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\t\n",
			rec.ID,
			rec.Name,
			rec.RarityScore,
			rec.CreatedAt.Format("2006-01-02 15:04"),
			updated,
		)
	}

	return w.Flush()
}

func printRecordsJSON(records []record.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func init() {
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table, json")
}
