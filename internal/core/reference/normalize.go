package reference

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds compatibility characters (non-breaking spaces, full-width
// digits) with NFKC, trims the input and collapses inner whitespace runs.
func Normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(text)), " ")
}
