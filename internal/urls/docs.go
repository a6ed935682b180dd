package urls

import (
	"fmt"
	"strings"
)

// Markdown documents the contract as a markdown table. base is printed as the
// API base the client will talk to; health is served from origin.
func Markdown(base, origin string) string {
	var b strings.Builder

	b.WriteString("# Items API\n\n")
	fmt.Fprintf(&b, "API base: `%s`\n\n", base)
	b.WriteString("| Method | Path | Request | Response | Description |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, r := range Contract {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s | %s |\n",
			r.Method, r.Path, orDash(r.Request), r.Response, r.Description)
	}
	fmt.Fprintf(&b, "\nService health: `GET %s%s`\n", origin, Health)

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
