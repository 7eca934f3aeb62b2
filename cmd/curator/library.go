package main

import (
	"fmt"

	"curator"
)

// Run executes the library list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	dirs, err := deps.Library.Articles()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", curator.ErrorMessage(err))
		return err
	}

	for _, dir := range dirs {
		fmt.Fprintln(deps.Stdout, dir)
	}

	return nil
}

// Run executes the library add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	if len(c.Articles) == 1 && c.Articles[0] == "all" {
		return deps.Builder.AddAll(deps.Ctx)
	}

	for _, dir := range c.Articles {
		if err := deps.Builder.AddArticle(deps.Ctx, dir); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", curator.ErrorMessage(err))
			return err
		}
	}

	return nil
}

// Run executes the library reindex command.
func (c *ReindexCmd) Run(deps *Dependencies) error {
	if err := deps.Builder.Reindex(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", curator.ErrorMessage(err))
		return err
	}

	return nil
}
