package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/documents"
)

var documentsJSON bool

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List the documents in the corpus",
	Long: `Lists the loaded documents in publication order, with the grammars
their references are read with.

When a document has several grammars, the first one that accepts a
reference decides how it is read.`,
	Args: cobra.NoArgs,
	RunE: runDocuments,
}

func init() {
	documentsCmd.Flags().BoolVar(&documentsJSON, "json", false, "output documents as JSON")
	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docs, err := corpusService.Documents(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	if documentsJSON {
		return outputJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Println("No documents loaded.")
		return nil
	}

	for _, doc := range docs {
		cmd.Printf("  %s\n", doc.ID)
		cmd.Printf("    Name: %s\n", doc.Name)
		cmd.Printf("    Grammars: %s\n", strings.Join(doc.Grammars, ", "))
		if entry, err := documents.Lookup(doc.ID); err == nil && entry.Priority != "" {
			cmd.Printf("    Priority: %s\n", entry.Priority)
		}
		cmd.Printf("    Rows: %d\n", doc.Rows)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}
