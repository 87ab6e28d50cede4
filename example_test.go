package mdblock_test

import (
	"fmt"
	"log"

	mdblock "github.com/alnah/go-mdblock"
)

func ExampleParse() {
	doc, err := mdblock.Parse("# Title\n\n- one\n- two\n\n> quoted")
	if err != nil {
		log.Fatal(err)
	}
	for _, child := range doc.Children {
		fmt.Println(child.Kind())
	}
	// Output:
	// Heading
	// List
	// Blockquote
}

func ExampleParse_frontMatter() {
	doc, err := mdblock.Parse("---\ntitle: Notes\n---\nbody", mdblock.WithFrontMatter())
	if err != nil {
		log.Fatal(err)
	}
	fm := doc.Children[0].(*mdblock.FrontMatter)
	fmt.Println(fm.Fields["title"])
	// Output:
	// Notes
}
