package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"curator"
	"curator/build"
)

// Run executes the minify command. A remote-service failure is reported
// and skipped; an unresolvable target aborts.
func (c *MinifyCmd) Run(deps *Dependencies) error {
	info, err := os.Stat(c.Target)
	if os.IsNotExist(err) {
		return curator.Errorf(curator.ENOTFOUND, "minify target %q not found", c.Target)
	} else if err != nil {
		return err
	}

	if !info.IsDir() {
		return c.minifyOne(deps, c.Target)
	}

	entries, err := os.ReadDir(c.Target)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".css") || strings.HasSuffix(name, ".min.css") {
			continue
		}
		if err := c.minifyOne(deps, filepath.Join(c.Target, name)); err != nil {
			return err
		}
	}

	return nil
}

func (c *MinifyCmd) minifyOne(deps *Dependencies, path string) error {
	if err := build.MinifyFile(deps.Ctx, deps.Minifier, path); err != nil {
		if curator.ErrorCode(err) == curator.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", path, curator.ErrorMessage(err))
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", curator.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "minified %s\n", path)
	return nil
}
