package maze

import (
	"strings"

	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// loadMap parses the ASCII-art map form: corner lines ("+---+---+...")
// alternate with cell lines ("|   |   |..."). Each tile cell is 4
// characters wide (a corner/vertical-wall char plus 3 interior chars).
// The grid is read top to bottom and then flipped so y=0 is the bottom
// row, per §4.C/§6.
//
// This generalizes the reference's loadMazeFileMapType: the reference
// only inspects the middle character of a 3-character horizontal
// segment, but the wire format (§6) specifies "any non-space indicates
// wall", so every character of the segment is checked here.
func loadMap(path string) (*Maze, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	numCols, err := mapColumnCount(path, lines)
	if err != nil {
		return nil, err
	}

	var rows [][]map[Direction]bool
	pendingNorth := make([]bool, numCols)
	rowIndex := -1

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "+") {
			walls := parseHorizontalSegment(line, numCols)
			if rowIndex == -1 {
				pendingNorth = walls
				continue
			}
			for c := 0; c < numCols; c += 1 {
				rows[rowIndex][c][South] = walls[c]
			}
			pendingNorth = walls
			continue
		}

		vertical := parseVerticalSegment(line, numCols)
		rowIndex += 1
		rowTiles := make([]map[Direction]bool, numCols)
		for c := 0; c < numCols; c += 1 {
			rowTiles[c] = map[Direction]bool{
				North: pendingNorth[c],
				West:  vertical[c],
				East:  vertical[c+1],
			}
		}
		rows = append(rows, rowTiles)
	}

	numRows := len(rows)
	if numRows == 0 {
		return nil, &simerrors.MalformedMazeError{Path: path, Reason: "map contains no cell rows"}
	}

	columns := make([][]BasicTile, numCols)
	for c := 0; c < numCols; c += 1 {
		columns[c] = make([]BasicTile, numRows)
		for y := 0; y < numRows; y += 1 {
			r := numRows - 1 - y // flip so y=0 is the bottom row
			columns[c][y] = NewBasicTile(rows[r][c])
		}
	}

	return NewMaze(columns, false)
}

func mapColumnCount(path string, lines []string) (int, error) {
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "+") {
			continue
		}
		n := strings.Count(trimmed, "+") - 1
		if n <= 0 {
			return 0, &simerrors.MalformedMazeError{Path: path, Reason: "corner line has no cells"}
		}
		return n, nil
	}
	return 0, &simerrors.MalformedMazeError{Path: path, Reason: "no corner line found"}
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func parseHorizontalSegment(line string, numCols int) []bool {
	padded := padRight(line, numCols*4+1)
	out := make([]bool, numCols)
	for c := 0; c < numCols; c += 1 {
		start := 4*c + 1
		out[c] = strings.TrimSpace(padded[start:start+3]) != ""
	}
	return out
}

func parseVerticalSegment(line string, numCols int) []bool {
	padded := padRight(line, numCols*4+1)
	out := make([]bool, numCols+1)
	for c := 0; c <= numCols; c += 1 {
		out[c] = padded[4*c] != ' '
	}
	return out
}
