package main

import (
	"fmt"
	"os"

	"github.com/bookbind/bookbind/fs"
)

// Run executes the new command.
func (c *NewCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(c.Input); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %q", c.Input)
	}

	if err := fs.WriteConfigTemplate(c.Input); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s. Fill in the placeholders and add article URLs.\n", c.Input)
	return nil
}
