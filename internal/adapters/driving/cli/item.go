package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

var itemInfo bool

var itemCmd = &cobra.Command{
	Use:   "item [position]",
	Short: "Print a table of contents entry",
	Long: `Prints the text of the table of contents entry at a position, together
with everything nested under it, as markdown. Positions are the ones printed
by "regdoc toc"; 0 is the corpus root.

Entries without text of their own (the corpus root, documents and grouping
levels) print "No selection to display."

A negative position reads as a flag; pass it after "--" (regdoc item -- -1).`,
	Example: `  regdoc item 9
  regdoc item 6 --info
  regdoc item -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runItem,
}

func init() {
	itemCmd.Flags().BoolVar(&itemInfo, "info", false, "show the entry instead of its text")
	rootCmd.AddCommand(itemCmd)
}

func runItem(cmd *cobra.Command, args []string) error {
	if tocService == nil {
		return errors.New("table of contents service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position must be a number, got %q", args[0])
	}

	if itemInfo {
		item, err := tocService.Item(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}
		printItemInfo(cmd, item)
		return nil
	}

	text, err := tocService.ItemText(cmd.Context(), n)
	if errors.Is(err, domain.ErrNoSelection) {
		cmd.Println("No selection to display.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	cmd.Println(formatSection(text))
	return nil
}

func printItemInfo(cmd *cobra.Command, item domain.TocItem) {
	cmd.Printf("Position:  %d\n", item.Index)
	cmd.Printf("Depth:     %d\n", item.Depth)
	cmd.Printf("Title:     %s\n", item.Title())
	if item.DocumentID != "" {
		cmd.Printf("Document:  %s\n", item.DocumentID)
	}
	if item.Reference != "" {
		cmd.Printf("Reference: %s\n", item.Reference)
	}
	cmd.Printf("Children:  %t\n", item.HasChildren)
}
