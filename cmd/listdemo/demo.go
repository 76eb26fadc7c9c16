package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/graxinc/arraylist"
)

var (
	demoCapacity int
	colorMode    string
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	stepColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
)

func runDemo(cmd *cobra.Command, args []string) error {
	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("unknown --color value %q", colorMode)
	}

	out := cmd.OutOrStdout()

	if err := demoOwned(out); err != nil {
		return err
	}
	return demoBound(out)
}

// demoOwned shows a self-allocated list growing past its starting
// capacity, then insertion, removal and search.
func demoOwned(out io.Writer) error {
	sectionColor.Fprintln(out, "== owned storage ==")

	list, err := arraylist.NewSized[int](demoCapacity)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderList(list))

	for _, v := range []int{10, 20, 30, 40, 50} {
		before := list.Cap()
		if err := list.Append(v); err != nil {
			return err
		}
		stepColor.Fprintf(out, "append %d", v)
		if list.Cap() != before {
			stepColor.Fprintf(out, " (grew %d -> %d)", before, list.Cap())
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderList(list))
	}

	if err := list.Insert(1, 15); err != nil {
		return err
	}
	stepColor.Fprintln(out, "insert 15 at index 1")
	fmt.Fprintln(out, renderList(list))

	if err := list.RemoveAt(0); err != nil {
		return err
	}
	stepColor.Fprintln(out, "remove index 0")
	fmt.Fprintln(out, renderList(list))

	if i, ok := list.IndexOf(30); ok {
		stepColor.Fprintf(out, "30 found at index %d\n", i)
	}
	if !list.Contains(60) {
		stepColor.Fprintln(out, "60 not in the list")
	}
	return nil
}

// demoBound shows a list running on a caller-supplied buffer: it fills
// up, refuses to grow and stays intact.
func demoBound(out io.Writer) error {
	sectionColor.Fprintln(out, "== bound storage ==")

	buffer := make([]int, 3)
	list := arraylist.New[int]()
	list.Bind(buffer)

	for _, v := range []int{1, 2, 3, 4} {
		if err := list.Append(v); err != nil {
			failColor.Fprintf(out, "append %d: %v\n", v, err)
			continue
		}
		stepColor.Fprintf(out, "append %d\n", v)
	}
	fmt.Fprintln(out, renderList(list))
	fmt.Fprintf(out, "caller's buffer now holds %v\n", buffer)
	return nil
}
