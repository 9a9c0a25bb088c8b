package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all assessments as JSON",
	Long:  "Writes every assessment with its participant and answers to stdout (or --out) as a JSON array.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		exports, err := st.ExportAssessments(cmd.Context())
		if err != nil {
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(exports)
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}
