package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

var tocJSON bool

var tocCmd = &cobra.Command{
	Use:   "toc [document]",
	Short: "Print the table of contents",
	Long: `Prints the combined table of contents of every document, one entry per
line, preceded by its position. Pass the position to "regdoc item" to read
that entry.

With a document id, prints only that document's table of contents; its
positions start at the document root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToc,
}

func init() {
	tocCmd.Flags().BoolVar(&tocJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(tocCmd)
}

func runToc(cmd *cobra.Command, args []string) error {
	if tocService == nil {
		return errors.New("table of contents service not configured")
	}

	var (
		items []domain.TocItem
		err   error
	)
	if len(args) == 1 {
		items, err = tocService.DocumentTree(cmd.Context(), args[0])
	} else {
		items, err = tocService.Items(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to build table of contents: %w", err)
	}

	if tocJSON {
		return outputJSON(cmd, items)
	}

	for _, item := range items {
		cmd.Println(formatTocLine(item))
	}
	return nil
}

// formatTocLine renders "   3      II.A Profiling": position, then the
// title indented two spaces per level.
func formatTocLine(item domain.TocItem) string {
	return fmt.Sprintf("%4d  %s%s", item.Index, strings.Repeat("  ", item.Depth), item.Title())
}
