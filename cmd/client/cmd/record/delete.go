package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		rec, err := app.DeleteRecord(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete record: %w", err)
		}

		fmt.Printf("%s record %q (%s) deleted\n", color.GreenString("✓"), rec.Name, rec.ID)
		return nil
	},
}
