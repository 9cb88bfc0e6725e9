// Package renderer turns tracker state into markdown suitable for
// terminal display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/oduffy/tracker"
)

//go:embed *.md
var templates embed.FS

// Dashboard renders the logged-in account header: username and cash.
func Dashboard(a *tracker.Account) string {
	return renderTemplate("dashboard", "dashboard.md", map[string]any{
		"Username": a.Username(),
		"Cash":     a.CashBalance(),
	})
}

// Portfolio renders the account's current positions as a markdown table.
func Portfolio(holdings []tracker.Holding) string {
	return renderTemplate("portfolio", "portfolio.md", map[string]any{
		"Holdings": holdings,
	})
}

// History renders the account's transaction log as a markdown table,
// oldest first.
func History(transactions []tracker.Transaction) string {
	return renderTemplate("history", "history.md", map[string]any{
		"Transactions": transactions,
	})
}

// renderTemplate is a generic utility to render one embedded template.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
