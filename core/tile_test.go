package core

import (
	"testing"
)

func TestTileValid(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want bool
	}{
		{"zero", Tile{}, false},
		{"positioned zero extent", Tile{X: 50, Y: 100}, false},
		{"width only", Tile{Width: 25}, true},
		{"height only", Tile{Height: 25}, true},
		{"full", Tile{X: 0, Y: 0, Width: 50, Height: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tile.Valid(); got != tt.want {
				t.Errorf("Expected Valid()=%v for %+v, got %v", tt.want, tt.tile, got)
			}
		})
	}
}

func TestTouchesX(t *testing.T) {
	a := Tile{X: 0, Y: 0, Width: 50, Height: 50}

	tests := []struct {
		name string
		b    Tile
		want bool
	}{
		{"right neighbor", Tile{X: 50, Y: 0, Width: 50, Height: 50}, true},
		{"left neighbor", Tile{X: -25, Y: 0, Width: 25, Height: 50}, true},
		{"half width right neighbor", Tile{X: 50, Y: 0, Width: 25, Height: 50}, true},
		{"gap", Tile{X: 75, Y: 0, Width: 50, Height: 50}, false},
		{"overlap", Tile{X: 25, Y: 0, Width: 50, Height: 50}, false},
		{"different height", Tile{X: 50, Y: 0, Width: 50, Height: 25}, false},
		{"different y", Tile{X: 50, Y: 25, Width: 50, Height: 50}, false},
		{"below", Tile{X: 0, Y: 50, Width: 50, Height: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TouchesX(a, tt.b); got != tt.want {
				t.Errorf("Expected TouchesX(%+v, %+v)=%v, got %v", a, tt.b, tt.want, got)
			}
			if got := TouchesX(tt.b, a); got != tt.want {
				t.Errorf("Expected TouchesX to be symmetric for %+v", tt.b)
			}
		})
	}
}

func TestTouchesY(t *testing.T) {
	a := Tile{X: 50, Y: 50, Width: 50, Height: 50}

	tests := []struct {
		name string
		b    Tile
		want bool
	}{
		{"below", Tile{X: 50, Y: 100, Width: 50, Height: 50}, true},
		{"above half", Tile{X: 50, Y: 25, Width: 50, Height: 25}, true},
		{"different width", Tile{X: 50, Y: 100, Width: 25, Height: 50}, false},
		{"different x", Tile{X: 75, Y: 100, Width: 50, Height: 50}, false},
		{"gap", Tile{X: 50, Y: 150, Width: 50, Height: 50}, false},
		{"right", Tile{X: 100, Y: 50, Width: 50, Height: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TouchesY(a, tt.b); got != tt.want {
				t.Errorf("Expected TouchesY(%+v, %+v)=%v, got %v", a, tt.b, tt.want, got)
			}
			if got := TouchesY(tt.b, a); got != tt.want {
				t.Errorf("Expected TouchesY to be symmetric for %+v", tt.b)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	left := Tile{X: 0, Y: 0, Width: 50, Height: 50}
	right := Tile{X: 50, Y: 0, Width: 25, Height: 50}

	want := Tile{X: 0, Y: 0, Width: 75, Height: 50}
	if got := UnionX(left, right); got != want {
		t.Errorf("Expected UnionX %+v, got %+v", want, got)
	}
	if got := UnionX(right, left); got != want {
		t.Errorf("Expected UnionX to be order independent, got %+v", got)
	}

	top := Tile{X: 0, Y: 0, Width: 100, Height: 50}
	bottom := Tile{X: 0, Y: 50, Width: 100, Height: 50}
	wantY := Tile{X: 0, Y: 0, Width: 100, Height: 100}
	if got := UnionY(bottom, top); got != wantY {
		t.Errorf("Expected UnionY %+v, got %+v", wantY, got)
	}
}

func TestTileHelpers(t *testing.T) {
	tile := Tile{X: 10, Y: 20, Width: 30, Height: 40}

	if tile.Area() != 1200 {
		t.Errorf("Expected area 1200, got %d", tile.Area())
	}

	moved := tile.Translate(5, -5)
	if moved.X != 15 || moved.Y != 15 || moved.Width != 30 || moved.Height != 40 {
		t.Errorf("Expected translated tile {15 15 30 40}, got %+v", moved)
	}

	if !tile.Contains(10, 20) {
		t.Error("Expected top-left corner to be contained")
	}
	if tile.Contains(40, 20) {
		t.Error("Expected right edge to be exclusive")
	}
	if tile.Contains(10, 60) {
		t.Error("Expected bottom edge to be exclusive")
	}
}
