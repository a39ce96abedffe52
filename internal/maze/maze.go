package maze

import (
	"fmt"

	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// Maze is an ordered sequence of columns (indexed by x), each column an
// ordered sequence of tiles (indexed by y). Tile (0,0) is bottom-left.
// A Maze is immutable once constructed; the constructor symmetrizes wall
// flags so that every pair of adjacent tiles agrees about the wall
// between them.
type Maze struct {
	columns [][]BasicTile
}

// NewMaze builds a Maze from a column-major tile grid. If
// requireRectangular is true, every column must have the same height or
// construction fails with a MalformedMazeError — a well-formed maze for
// simulation is rectangular even though the file-level grammar does not
// require it (§3).
func NewMaze(columns [][]BasicTile, requireRectangular bool) (*Maze, error) {
	if requireRectangular && len(columns) > 0 {
		want := len(columns[0])
		for x, col := range columns {
			if len(col) != want {
				return nil, &simerrors.MalformedMazeError{
					Reason: fmt.Sprintf("column %d has height %d, expected %d", x, len(col), want),
				}
			}
		}
	}
	return &Maze{columns: symmetrize(columns)}, nil
}

// symmetrize returns a copy of columns where, for every pair of
// edge-adjacent tiles, the wall between them is present if either side's
// original data claimed it.
func symmetrize(columns [][]BasicTile) [][]BasicTile {
	out := make([][]BasicTile, len(columns))
	for x, col := range columns {
		out[x] = make([]BasicTile, len(col))
		for y, tile := range col {
			walls := make(map[Direction]bool, 4)
			for _, d := range Directions {
				walls[d] = tile.HasWall(d)
			}
			out[x][y] = NewBasicTile(walls)
		}
	}
	for x, col := range out {
		for y := range col {
			for _, d := range Directions {
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= len(out) || ny < 0 || ny >= len(out[nx]) {
					continue
				}
				if out[nx][ny].HasWall(d.Opposite()) && !out[x][y].HasWall(d) {
					out[x][y] = out[x][y].withWall(d, true)
				}
			}
		}
	}
	return out
}

// Width returns the number of columns.
func (m *Maze) Width() int { return len(m.columns) }

// Height returns the height of column 0 (meaningful for rectangular mazes).
func (m *Maze) Height() int {
	if len(m.columns) == 0 {
		return 0
	}
	return len(m.columns[0])
}

// ColumnHeight returns the height of a specific column, for non-rectangular mazes.
func (m *Maze) ColumnHeight(x int) int {
	if x < 0 || x >= len(m.columns) {
		return 0
	}
	return len(m.columns[x])
}

// TileAt returns the tile at (x,y) and whether it exists.
func (m *Maze) TileAt(x, y int) (BasicTile, bool) {
	if x < 0 || x >= len(m.columns) || y < 0 || y >= len(m.columns[x]) {
		return BasicTile{}, false
	}
	return m.columns[x][y], true
}

// HasWall reports whether the tile at (x,y) has a wall in direction d.
// Out-of-bounds tiles are treated as having no walls.
func (m *Maze) HasWall(x, y int, d Direction) bool {
	tile, ok := m.TileAt(x, y)
	if !ok {
		return false
	}
	return tile.HasWall(d)
}

// IsRectangular reports whether every column has the same height.
func (m *Maze) IsRectangular() bool {
	if len(m.columns) == 0 {
		return true
	}
	h := len(m.columns[0])
	for _, col := range m.columns {
		if len(col) != h {
			return false
		}
	}
	return true
}
