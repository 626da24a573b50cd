package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nftcatalog/internal/app/client"
)

var (
	updateName        string
	updateDescription string
	updateImageURL    string
	updateRarity      float64
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a record",
	Long: `Merge-update a record: only the flags you pass change; every
other field keeps its stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		// Only flags explicitly set become part of the patch.
		var req client.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &updateName
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateDescription
		}
		if cmd.Flags().Changed("image-url") {
			req.ImageURL = &updateImageURL
		}
		if cmd.Flags().Changed("rarity") {
			req.RarityScore = &updateRarity
		}

		rec, err := app.UpdateRecord(cmd.Context(), args[0], req)
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		fmt.Printf("%s record updated\n", color.GreenString("✓"))
		printRecordHuman(rec)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateName, "name", "", "new display name")
	UpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	UpdateCmd.Flags().StringVar(&updateImageURL, "image-url", "", "new image location")
	UpdateCmd.Flags().Float64Var(&updateRarity, "rarity", 0, "new rarity score")
}
