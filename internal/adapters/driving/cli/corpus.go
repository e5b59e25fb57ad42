package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local corpus database",
	Long: `Import corpus CSV files into the local database and list what was imported.

Set corpus.backend to sqlite (or pass --backend sqlite) to read documents from
the database instead of the corpus directory.`,
	Annotations: map[string]string{annotationDatabase: "true"},
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [document] [file]",
	Short: "Import a corpus file",
	Long: `Reads a corpus CSV file, validates every reference against the document's
grammars and stores the rows in the local database, replacing any earlier
import of the same document. Nothing is stored when validation fails.`,
	Args: cobra.ExactArgs(2),
	RunE: runCorpusImport,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported corpora",
	Args:  cobra.NoArgs,
	RunE:  runCorpusList,
}

func init() {
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusListCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	record, err := importService.Import(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d rows of %s from %s.\n", record.Rows, record.DocumentID, record.Source)
	cmd.Printf("Import ID: %s\n", record.ID)
	return nil
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	records, err := importService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list imports: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No corpora imported.")
		return nil
	}

	for _, r := range records {
		cmd.Printf("  %s\n", r.DocumentID)
		cmd.Printf("    Rows: %d\n", r.Rows)
		cmd.Printf("    Source: %s\n", r.Source)
		cmd.Printf("    Imported: %s\n", r.ImportedAt.Local().Format("2006-01-02 15:04:05"))
		cmd.Printf("    ID: %s\n", r.ID)
		cmd.Println()
	}

	cmd.Printf("Total: %d corpora\n", len(records))
	return nil
}
