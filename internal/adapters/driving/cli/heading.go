package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var headingCmd = &cobra.Command{
	Use:   "heading [document] [reference]",
	Short: "Print the heading of a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runHeading,
}

func init() {
	rootCmd.AddCommand(headingCmd)
}

func runHeading(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	heading, err := corpusService.GetHeading(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to get heading: %w", err)
	}

	cmd.Println(heading)
	return nil
}
