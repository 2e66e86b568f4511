package main

import (
	"fmt"

	"github.com/bookbind/bookbind"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := deps.Builder.Build(deps.Ctx, deps.Config); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbind.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Built %q in %s\n", deps.Config.Title, deps.Config.OutputDir)
	return nil
}
