package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

var (
	textDescendants bool
	textNoHeadings  bool
	textPlain       bool
	textDecorated   bool
	textJSON        bool
)

var textCmd = &cobra.Command{
	Use:   "text [document] [reference]",
	Short: "Print the text of a section",
	Long: `Prints the text of every row a reference addresses, followed by the
footnotes those rows define.

Partial references are accepted: "II.A" addresses the rows referenced exactly
"II.A"; with --descendants it also covers "II.A.1", "II.A.2" and so on.

Markdown decoration follows the output.decorated setting unless --plain or
--decorated is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runText,
}

func init() {
	textCmd.Flags().BoolVarP(&textDescendants, "descendants", "d", false, "include nested sections")
	textCmd.Flags().BoolVar(&textNoHeadings, "no-headings", false, "omit reference and heading lines")
	textCmd.Flags().BoolVar(&textPlain, "plain", false, "plain text output")
	textCmd.Flags().BoolVar(&textDecorated, "decorated", false, "markdown output")
	textCmd.MarkFlagsMutuallyExclusive("plain", "decorated")
	textCmd.Flags().BoolVar(&textJSON, "json", false, "output text and footnotes as JSON")
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	decorated, err := decoration(textPlain, textDecorated)
	if err != nil {
		return err
	}

	opts := domain.TextOptions{
		IncludeHeadings: !textNoHeadings,
		Decorated:       decorated,
		Scope:           domain.ScopeSection,
	}
	if textDescendants {
		opts.Scope = domain.ScopeDescendants
	}

	text, err := corpusService.GetText(cmd.Context(), args[0], args[1], opts)
	if err != nil {
		return fmt.Errorf("failed to get text: %w", err)
	}

	if textJSON {
		return outputJSON(cmd, text)
	}
	cmd.Println(formatSection(text))
	return nil
}

// decoration resolves the --plain and --decorated flags against the
// output.decorated setting.
func decoration(plain, decorated bool) (bool, error) {
	switch {
	case plain:
		return false, nil
	case decorated:
		return true, nil
	case settingsService == nil:
		return domain.DefaultSettings().Decorated, nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return false, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Decorated, nil
}

// formatSection renders the body, then the footnotes after a blank line.
func formatSection(text domain.SectionText) string {
	if len(text.Footnotes) == 0 {
		return text.Text
	}
	return text.Text + "\n\n" + strings.Join(text.Footnotes, "\n")
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
