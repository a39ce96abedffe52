// Package mazegraphic holds the controller's belief about the maze,
// entirely separate from the maze package's ground truth: declared
// walls, tile colors/text/fog, and declared tile distances, all of
// which a controller builds up incrementally and which a viewer draws
// on top of (never instead of) the true maze. This mirrors the
// reference's MazeGraphic, kept as its own mutex-guarded store so a
// controller goroutine and a rendering goroutine can touch it
// concurrently without coordinating through the mouse or maze locks.
package mazegraphic

import (
	"sync"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// TileBelief is one tile's worth of controller-declared overlay state.
// Zero value means nothing has been declared about the tile.
type TileBelief struct {
	HasColor bool
	Color    byte

	Text string

	Foggy bool

	DeclaredWalls map[maze.Direction]bool

	HasDistance bool
	Distance    int // negative means infinite, per §4.H
}

func newTileBelief() *TileBelief {
	return &TileBelief{DeclaredWalls: make(map[maze.Direction]bool, 4)}
}

type tileKey struct{ x, y int }

// Overlay is the controller's maze belief store for one run.
type Overlay struct {
	mu             sync.RWMutex
	tiles          map[tileKey]*TileBelief
	allowableChars map[rune]bool
}

// NewOverlay builds an empty overlay. allowableChars restricts the
// runes setTileText will accept; a nil/empty set allows any rune.
func NewOverlay(allowableChars []rune) *Overlay {
	o := &Overlay{tiles: make(map[tileKey]*TileBelief)}
	if len(allowableChars) > 0 {
		o.allowableChars = make(map[rune]bool, len(allowableChars))
		for _, r := range allowableChars {
			o.allowableChars[r] = true
		}
	}
	return o
}

func (o *Overlay) tile(x, y int) *TileBelief {
	key := tileKey{x, y}
	t, ok := o.tiles[key]
	if !ok {
		t = newTileBelief()
		o.tiles[key] = t
	}
	return t
}

func (o *Overlay) SetTileColor(x, y int, color byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	t := o.tile(x, y)
	t.HasColor = true
	t.Color = color
}

func (o *Overlay) ClearTileColor(x, y int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.tiles[tileKey{x, y}]; ok {
		t.HasColor = false
	}
}

func (o *Overlay) ClearAllTileColor() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, t := range o.tiles {
		t.HasColor = false
	}
}

// SetTileText sets a tile's overlay text, filtering out any character
// not in the allowable set. It returns a *simerrors.TextCharNotAllowedError
// for the first filtered character so the caller can warn, but still
// applies the filtered remainder — a disallowed character is a warning,
// not a reason to drop the whole call.
func (o *Overlay) SetTileText(x, y int, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var firstBad error
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if o.allowableChars != nil && !o.allowableChars[r] {
			if firstBad == nil {
				firstBad = &simerrors.TextCharNotAllowedError{Ch: r}
			}
			continue
		}
		filtered = append(filtered, r)
	}
	o.tile(x, y).Text = string(filtered)
	return firstBad
}

func (o *Overlay) ClearTileText(x, y int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.tiles[tileKey{x, y}]; ok {
		t.Text = ""
	}
}

func (o *Overlay) ClearAllTileText() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, t := range o.tiles {
		t.Text = ""
	}
}

func (o *Overlay) SetTileFogginess(x, y int, foggy bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tile(x, y).Foggy = foggy
}

// DeclareWall records a believed wall (or lack of one) on tile (x,y)'s
// edge in direction d, and mirrors the same declaration onto the
// neighboring tile's opposing edge, exactly as the reference's
// getOpposingWall keeps both sides of a declared wall in agreement.
func (o *Overlay) DeclareWall(x, y int, d maze.Direction, wallExists bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tile(x, y).DeclaredWalls[d] = wallExists
	dx, dy := d.Delta()
	o.tile(x+dx, y+dy).DeclaredWalls[d.Opposite()] = wallExists
}

// UndeclareWall removes a previously declared wall belief on both
// sides of the edge.
func (o *Overlay) UndeclareWall(x, y int, d maze.Direction) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.tiles[tileKey{x, y}]; ok {
		delete(t.DeclaredWalls, d)
	}
	dx, dy := d.Delta()
	if t, ok := o.tiles[tileKey{x + dx, y + dy}]; ok {
		delete(t.DeclaredWalls, d.Opposite())
	}
}

// DeclareTileDistance records a tile's believed distance; a negative
// value declares the tile's distance as infinite (§4.H).
func (o *Overlay) DeclareTileDistance(x, y int, distance int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	t := o.tile(x, y)
	t.HasDistance = true
	t.Distance = distance
}

func (o *Overlay) UndeclareTileDistance(x, y int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.tiles[tileKey{x, y}]; ok {
		t.HasDistance = false
	}
}

// TileAt returns a snapshot of a tile's belief state for rendering.
func (o *Overlay) TileAt(x, y int) TileBelief {
	o.mu.RLock()
	defer o.mu.RUnlock()
	t, ok := o.tiles[tileKey{x, y}]
	if !ok {
		return TileBelief{}
	}
	out := *t
	out.DeclaredWalls = make(map[maze.Direction]bool, len(t.DeclaredWalls))
	for k, v := range t.DeclaredWalls {
		out.DeclaredWalls[k] = v
	}
	return out
}
