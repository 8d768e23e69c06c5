package main

import (
	"flag"
	"log"
	"os"

	"github.com/danmuck/scenectl/internal/scenefile"
)

func exampleDocument() scenefile.Document {
	return scenefile.Document{
		Scene: "example",
		Nodes: []scenefile.NodeSpec{
			{Name: "world"},
			{Name: "camera", Parent: "world", Attrs: map[string]string{"kind": "perspective"}},
			{Name: "props", Parent: "world", Attrs: map[string]string{"kind": "group"}},
			{Name: "crate", Parent: "world/props", Attrs: map[string]string{"kind": "mesh"}},
			{Name: "lamp", Parent: "world/props", Attrs: map[string]string{"kind": "light"}},
		},
		Ops: []scenefile.OpSpec{
			// Hang the lamp off the crate, then cut the camera loose.
			{Action: scenefile.ActionAppend, Parent: "world/props/crate", Node: "world/props/lamp"},
			{Action: scenefile.ActionDetach, Node: "world/camera"},
		},
	}
}

func main() {
	output := flag.String("output", "", "output path for the example scene (defaults to stdout)")
	force := flag.Bool("force", false, "overwrite an existing file")
	flag.Parse()

	doc := exampleDocument()
	if *output == "" {
		if err := scenefile.Encode(os.Stdout, doc); err != nil {
			log.Fatal(err)
		}
		return
	}

	if !*force {
		if _, err := os.Stat(*output); err == nil {
			log.Fatalf("refusing to overwrite %s (use -force)", *output)
		}
	}
	if err := scenefile.Save(*output, doc); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote example scene to %s", *output)
}
