package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nftcatalog/internal/app/client"
)

var (
	createName        string
	createDescription string
	createImageURL    string
	createRarity      float64
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new record",
	Long: `Create a new NFT record in the catalog.

The server assigns the id and creation timestamp; the rarity score
defaults to 0 unless --rarity is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		rec, err := app.CreateRecord(cmd.Context(), client.CreateRequest{
			Name:        createName,
			Description: createDescription,
			ImageURL:    createImageURL,
			RarityScore: createRarity,
		})
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		fmt.Printf("%s record created\n", color.GreenString("✓"))
		fmt.Printf("ID:      %s\n", rec.ID)
		fmt.Printf("Name:    %s\n", rec.Name)
		fmt.Printf("Rarity:  %g\n", rec.RarityScore)
		fmt.Printf("Created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createName, "name", "", "display name of the record")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "free-form description")
	CreateCmd.Flags().StringVar(&createImageURL, "image-url", "", "image location")
	CreateCmd.Flags().Float64Var(&createRarity, "rarity", 0, "initial rarity score")
}
