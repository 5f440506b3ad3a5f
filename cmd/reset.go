package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		userID, _ := cmd.Flags().GetString("user")
		if err := st.ResetUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Printf("Deleted all data for learner %q.\n", userID)
		return nil
	},
}
