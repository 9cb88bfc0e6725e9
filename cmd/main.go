// Package cmd implements the CLI application around the tracker core.
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "session")
	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders md to the terminal, falling back to the raw
// markdown when rendering fails (e.g. no usable terminal).
func printMarkdown(w io.Writer, md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
