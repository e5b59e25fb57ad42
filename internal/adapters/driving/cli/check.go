package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [document] [reference]",
	Short: "Check a reference against a document's grammar",
	Long: `Parses a reference with the grammars of a document and prints the level
tokens and the canonical form. Exits with an error when the reference is not
well formed.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	documentID, ref := args[0], args[1]
	info, err := corpusService.CheckReference(cmd.Context(), documentID, ref)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !info.Valid {
		return domain.NewInvalidReference(documentID, ref)
	}

	cmd.Printf("Reference: %s\n", info.Input)
	cmd.Printf("Grammar:   %s\n", info.Grammar)
	cmd.Printf("Tokens:    %s\n", strings.Join(info.Tokens, " / "))
	cmd.Printf("Canonical: %s\n", info.Canonical)
	return nil
}
