package mazegraphic

import (
	"testing"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/simerrors"
)

func TestDeclareWallMirrorsToNeighbor(t *testing.T) {
	o := NewOverlay(nil)
	o.DeclareWall(0, 0, maze.East, true)

	self := o.TileAt(0, 0)
	if v, ok := self.DeclaredWalls[maze.East]; !ok || !v {
		t.Errorf("tile(0,0) east declared wall = %v,%v, want true,true", v, ok)
	}
	neighbor := o.TileAt(1, 0)
	if v, ok := neighbor.DeclaredWalls[maze.West]; !ok || !v {
		t.Errorf("tile(1,0) west declared wall = %v,%v, want true,true", v, ok)
	}
}

func TestUndeclareWallClearsBothSides(t *testing.T) {
	o := NewOverlay(nil)
	o.DeclareWall(0, 0, maze.North, false)
	o.UndeclareWall(0, 0, maze.North)

	if _, ok := o.TileAt(0, 0).DeclaredWalls[maze.North]; ok {
		t.Errorf("tile(0,0) north still declared after undeclare")
	}
	if _, ok := o.TileAt(0, 1).DeclaredWalls[maze.South]; ok {
		t.Errorf("tile(0,1) south still declared after undeclare")
	}
}

func TestSetTileTextFiltersDisallowedChars(t *testing.T) {
	o := NewOverlay([]rune("0123456789"))
	err := o.SetTileText(2, 2, "1a2b3")
	if err == nil {
		t.Fatal("SetTileText succeeded, want a TextCharNotAllowedError for the filtered chars")
	}
	if _, ok := err.(*simerrors.TextCharNotAllowedError); !ok {
		t.Fatalf("error type = %T, want *TextCharNotAllowedError", err)
	}
	if got := o.TileAt(2, 2).Text; got != "123" {
		t.Errorf("Text = %q, want %q", got, "123")
	}
}

func TestDeclareTileDistanceNegativeMeansInfinite(t *testing.T) {
	o := NewOverlay(nil)
	o.DeclareTileDistance(0, 0, -1)
	tile := o.TileAt(0, 0)
	if !tile.HasDistance || tile.Distance >= 0 {
		t.Errorf("tile distance = %+v, want HasDistance=true, Distance<0", tile)
	}
}

func TestClearAllTileColor(t *testing.T) {
	o := NewOverlay(nil)
	o.SetTileColor(0, 0, 'R')
	o.SetTileColor(1, 1, 'G')
	o.ClearAllTileColor()
	if o.TileAt(0, 0).HasColor || o.TileAt(1, 1).HasColor {
		t.Errorf("tiles still have color after ClearAllTileColor")
	}
}
