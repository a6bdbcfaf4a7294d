package dinorun

import "github.com/vovakirdan/dino-run/internal/core"

// Grid dimensions and the rows entities live on.
const (
	Cols = 16
	Rows = 3

	ApexRow   = 0 // Player row at the top of a jump
	GroundRow = 1 // Player row when standing
	DirtRow   = 2 // Lowest row; projectiles and coins may spawn here too
)

// bounds is the playable area.
var bounds = core.NewRect(0, 0, Cols, Rows)

// Direction is a horizontal heading.
type Direction int

const (
	Right Direction = iota
	Left
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// dx returns the column delta for one step in this direction.
func (d Direction) dx() int {
	if d == Left {
		return -1
	}
	return 1
}

// Projectile travels one column per tick until it leaves the grid.
type Projectile struct {
	ID  uint64
	Pos core.Point
	Dir Direction
}

// Coin waits at a fixed cell until picked up.
type Coin struct {
	ID  uint64
	Pos core.Point
}
