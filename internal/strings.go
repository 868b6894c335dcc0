package internal

import (
	"regexp"
	"strings"
)

var colonSpaces = regexp.MustCompile(": +")

// TrimLines flattens a pretty printed JSON literal into its compact form.
func TrimLines(s string) string {
	trimmed := colonSpaces.ReplaceAllString(s, ":")
	trimmed = strings.NewReplacer("\n", "", "\t", "").Replace(trimmed)
	return strings.TrimSpace(trimmed)
}
