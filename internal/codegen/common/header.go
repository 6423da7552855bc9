package common

import (
	"fmt"
	"strings"
	"time"
)

// FileHeaderTS renders the banner written at the top of generated TypeScript
// modules. The stamp is derived from the inputs, never from the clock, so
// regenerating unchanged schemas yields identical files.
func FileHeaderTS(stamp time.Time) string {
	return fmt.Sprintf("\n/**\n * Generated at %s\n */\n", stamp.Format("02/Jan/2006"))
}

var tsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeTS escapes s for use inside a double-quoted TypeScript string.
func EscapeTS(s string) string {
	return tsStringEscaper.Replace(s)
}
