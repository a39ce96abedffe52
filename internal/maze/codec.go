package maze

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// Format identifies one of the three maze file wire formats.
type Format int

const (
	FormatNumeric Format = iota
	FormatMap
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatNumeric:
		return "numeric"
	case FormatMap:
		return "map"
	case FormatBinary:
		return "binary"
	}
	return "unknown"
}

// ErrBinaryUnimplemented is returned by Load when a path is explicitly
// loaded as binary. No sniffing rule ever reports FormatBinary from
// DetectFormat — the reference implementation never finished the binary
// format, so we surface that as a typed, documented non-feature rather
// than guessing a layout (see SPEC_FULL.md §4.C).
var ErrBinaryUnimplemented = fmt.Errorf("binary maze format is not implemented")

// ErrSaveUnsupported is returned by Save for any format other than numeric.
var ErrSaveUnsupported = fmt.Errorf("only the numeric maze format supports writing")

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simerrors.NoSuchMazeFileError{Path: path}
	}
	content := string(data)
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// DetectFormat sniffs a maze file's wire format by content inspection,
// not by file extension.
func DetectFormat(path string) (Format, error) {
	lines, err := readLines(path)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, &simerrors.MalformedMazeError{Path: path, Reason: "file is empty"}
	}
	if looksLikeMapFormat(lines) {
		return FormatMap, nil
	}
	if err := validateNumericLines(path, lines); err != nil {
		return 0, err
	}
	return FormatNumeric, nil
}

func looksLikeMapFormat(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "+")
	}
	return false
}

// validateNumericLines ports MazeFileUtilities::isMazeFileNumType from
// original_source verbatim: the sequence of (x,y) records must start at
// (0,0), never decrease, and advance by at most one column/row at a
// time, with every record's last four tokens being "0" or "1".
func validateNumericLines(path string, lines []string) error {
	expectedX := 0
	expectedY := 0
	for i, line := range lines {
		lineNum := i + 1
		tokens := strings.Fields(line)
		if len(tokens) != 6 {
			return &simerrors.MalformedMazeError{
				Path: path, Line: lineNum,
				Reason: fmt.Sprintf("expected 6 entries, found %d", len(tokens)),
			}
		}
		values := make([]int, 6)
		for j, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return &simerrors.MalformedMazeError{
					Path: path, Line: lineNum,
					Reason: fmt.Sprintf("entry %q in position %d is not numeric", tok, j+1),
				}
			}
			values[j] = v
		}

		caseOne := values[0] == expectedX && values[1] == expectedY
		caseTwo := values[0] == expectedX+1 && values[1] == 0 && expectedY != 0
		switch {
		case caseOne:
			expectedY += 1
		case caseTwo:
			expectedX += 1
			expectedY = 1
		default:
			return &simerrors.MalformedMazeError{
				Path: path, Line: lineNum,
				Reason: fmt.Sprintf("unexpected x and y values of %d and %d", values[0], values[1]),
			}
		}

		for j := 0; j < 4; j += 1 {
			v := values[2+j]
			if v != 0 && v != 1 {
				return &simerrors.MalformedMazeError{
					Path: path, Line: lineNum,
					Reason: fmt.Sprintf("wall value %d in position %d must be 0 or 1", v, 2+j+1),
				}
			}
		}
	}
	return nil
}

// Load detects a maze file's format and parses it into a Maze.
func Load(path string) (*Maze, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatNumeric:
		return loadNumeric(path)
	case FormatMap:
		return loadMap(path)
	default:
		return loadBinary(path)
	}
}

func loadNumeric(path string) (*Maze, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if err := validateNumericLines(path, lines); err != nil {
		return nil, err
	}

	var columns [][]BasicTile
	var column []BasicTile
	for _, line := range lines {
		tokens := strings.Fields(line)
		x, _ := strconv.Atoi(tokens[0])

		walls := make(map[Direction]bool, 4)
		for idx, d := range Directions {
			v, _ := strconv.Atoi(tokens[2+idx])
			walls[d] = v == 1
		}
		tile := NewBasicTile(walls)

		if len(columns) < x {
			columns = append(columns, column)
			column = nil
		}
		column = append(column, tile)
	}
	columns = append(columns, column)

	return NewMaze(columns, false)
}

// Save writes a maze to path. Only the numeric form supports writing;
// the other two formats return ErrSaveUnsupported.
func Save(m *Maze, path string, format Format) error {
	if format != FormatNumeric {
		return ErrSaveUnsupported
	}
	return saveNumeric(m, path)
}

func saveNumeric(m *Maze, path string) error {
	var b strings.Builder
	for x := 0; x < m.Width(); x += 1 {
		for y := 0; y < m.ColumnHeight(x); y += 1 {
			tile, _ := m.TileAt(x, y)
			fmt.Fprintf(&b, "%d %d", x, y)
			for _, d := range Directions {
				if tile.HasWall(d) {
					b.WriteString(" 1")
				} else {
					b.WriteString(" 0")
				}
			}
			b.WriteString("\n")
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
