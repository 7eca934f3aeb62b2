package main

import (
	"fmt"

	"curator"
)

// Run executes the feature command.
func (c *FeatureCmd) Run(deps *Dependencies) error {
	name := c.Article
	if name == "random" {
		name = ""
	}

	title, err := deps.Builder.Feature(deps.Ctx, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", curator.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, title)
	return nil
}
