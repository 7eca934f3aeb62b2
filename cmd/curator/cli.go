package main

import (
	"context"
	"io"

	"curator"
	"curator/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   curator.Config
	Library  curator.Library
	Minifier curator.Minifier
	Builder  *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Library LibraryCmd `cmd:"" help:"Manage the article library"`
	Feature FeatureCmd `cmd:"" help:"Set the homepage featured article"`
	Minify  MinifyCmd  `cmd:"" help:"Minify CSS via the remote service"`
}

// LibraryCmd groups the library subcommands.
type LibraryCmd struct {
	List    ListCmd    `cmd:"" help:"List article directories, one per line"`
	Add     AddCmd     `cmd:"" help:"Build pages and derived assets for articles"`
	Reindex ReindexCmd `cmd:"" help:"Rebuild the library index page"`
}

// ListCmd is the "library list" subcommand.
type ListCmd struct{}

// AddCmd is the "library add" subcommand.
type AddCmd struct {
	Articles []string `arg:"" help:"Article directories, or the literal token 'all'"`
}

// ReindexCmd is the "library reindex" subcommand.
type ReindexCmd struct{}

// FeatureCmd is the "feature" command.
type FeatureCmd struct {
	Article string `arg:"" help:"Article directory, or the literal token 'random'"`
}

// MinifyCmd is the "minify" command.
type MinifyCmd struct {
	Target string `arg:"" help:"A .css file or a directory containing .css files"`
}
