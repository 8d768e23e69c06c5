package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/scenectl/internal/logging"
	"github.com/danmuck/scenectl/internal/scene"
	"github.com/danmuck/scenectl/internal/scenefile"
)

type options struct {
	file    string
	skipOps bool
	paths   bool
}

func parseFlags() options {
	file := flag.String("file", "scene.toml", "scene file to load")
	skipOps := flag.Bool("skip-ops", false, "build the hierarchy without running the op script")
	paths := flag.Bool("paths", false, "print node paths instead of the rendered tree")
	flag.Parse()

	return options{
		file:    *file,
		skipOps: *skipOps,
		paths:   *paths,
	}
}

func main() {
	logging.ConfigureRuntime("scenectl")
	opts := parseFlags()
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "scenectl: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	doc, err := scenefile.Load(opts.file)
	if err != nil {
		return err
	}
	s, err := scenefile.Build(doc)
	if err != nil {
		return err
	}
	if !opts.skipOps {
		if err := scenefile.Apply(s, doc.Ops); err != nil {
			return err
		}
	}

	for _, root := range s.Roots() {
		if opts.paths {
			if err := printPaths(root, out); err != nil {
				return err
			}
			continue
		}
		fmt.Fprint(out, scene.Render(root))
	}
	return nil
}

func printPaths(root *scene.Node, out io.Writer) error {
	return scene.Walk(root, func(n *scene.Node, depth int) error {
		_, err := fmt.Fprintln(out, n.Path())
		return err
	})
}
