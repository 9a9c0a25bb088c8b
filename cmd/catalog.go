package cmd

import (
	"fmt"
	"log/slog"

	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/config"
	"github.com/priyal/worklens/internal/store"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the question catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: valid, %d questions\n", args[0], len(questions))
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored catalog with a catalog JSON file",
	Long: "Validates the file and swaps the stored question catalog for its contents. " +
		"Existing assessments keep their recorded answers.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ReplaceQuestions(cmd.Context(), questions); err != nil {
			return err
		}
		fmt.Printf("imported %d questions\n", len(questions))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored questions in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		questions, err := st.ListQuestions(cmd.Context())
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Println("no questions seeded; run the app once or use `catalog import`")
			return nil
		}
		for _, q := range questions {
			fmt.Printf("%2d. [%-10s] %s\n", q.DisplayNumber, q.Style, q.Prompt)
		}
		return nil
	},
}

// openStore resolves the database path and opens the store for
// non-interactive subcommands. The layered config is honored here so a
// configured database.path points every subcommand at the same store the
// TUI uses.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
