package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/bookbind/bookbind"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	articles, err := deps.Manifest.FindConversions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbind.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions recorded. Run 'bookbind build' first.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s: %d articles\n\n", deps.Config.Title, len(articles))

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTITLE\tURL\tCONVERTED")
	for _, a := range articles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			a.Position, a.Title, a.SourceURL, a.ConvertedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
