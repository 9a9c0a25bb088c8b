package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded responses",
	Long: "Deletes all assessments and answers; --all also removes participants. " +
		"The question catalog stays seeded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete responses without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		all, _ := cmd.Flags().GetBool("all")
		if err := st.ResetResponses(cmd.Context(), all); err != nil {
			return err
		}
		if all {
			fmt.Println("all responses and participants deleted")
		} else {
			fmt.Println("all responses deleted")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
	resetCmd.Flags().Bool("all", false, "Also delete participants")
}
