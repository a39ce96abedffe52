// Command mazecheck loads a maze file given as its first argument,
// validates it, and prints its dimensions and wall layout to stdout.
// A malformed file is reported to stderr with a nonzero exit code.
package main

import (
	"fmt"
	"os"

	"github.com/mmsim/micromouse-core/internal/maze"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mazecheck <maze-file>")
		os.Exit(1)
	}

	path := os.Args[1]
	format, err := maze.DetectFormat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error detecting maze format: %v\n", err)
		os.Exit(1)
	}

	m, err := maze.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading maze: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("format: %s\n", format)
	fmt.Printf("dimensions: %dx%d (rectangular: %v)\n", m.Width(), m.Height(), m.IsRectangular())
	printMaze(m)
}

func printMaze(m *maze.Maze) {
	for y := m.Height() - 1; y >= 0; y -= 1 {
		for x := 0; x < m.Width(); x += 1 {
			fmt.Print("+")
			if m.HasWall(x, y, maze.North) {
				fmt.Print("---")
			} else {
				fmt.Print("   ")
			}
		}
		fmt.Println("+")

		for x := 0; x < m.Width(); x += 1 {
			if m.HasWall(x, y, maze.West) {
				fmt.Print("|")
			} else {
				fmt.Print(" ")
			}
			fmt.Print("   ")
		}
		if m.HasWall(m.Width()-1, y, maze.East) {
			fmt.Println("|")
		} else {
			fmt.Println(" ")
		}
	}
	for x := 0; x < m.Width(); x += 1 {
		fmt.Print("+")
		if m.HasWall(x, 0, maze.South) {
			fmt.Print("---")
		} else {
			fmt.Print("   ")
		}
	}
	fmt.Println("+")
}
