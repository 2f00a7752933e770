package maze

import "fmt"

// Direction names one face of a cell.
type Direction int

const (
	North Direction = iota // towards row+1 (+Z)
	South                  // towards row-1 (-Z)
	East                   // towards col+1 (+X)
	West                   // towards col-1 (-X)
)

// Directions lists the four faces in neighbour-scan order.
var Directions = []Direction{North, East, South, West}

// Opposite returns the face a neighbour shares with this one.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

// Delta returns the row and column offset of the neighbour in this direction.
func (d Direction) Delta() CellPosition {
	switch d {
	case North:
		return CellPosition{Row: 1, Col: 0}
	case South:
		return CellPosition{Row: -1, Col: 0}
	case East:
		return CellPosition{Row: 0, Col: 1}
	case West:
		return CellPosition{Row: 0, Col: -1}
	}
	return CellPosition{}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}

// ParseDirection maps a direction name back to its value.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return North, false
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", string(b))
	}
	*d = parsed
	return nil
}

// Cell represents a single cell in a maze grid.
type Cell struct {
	NorthWall bool `bson:"n" json:"north" yaml:"n"` // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool `bson:"s" json:"south" yaml:"s"` // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool `bson:"e" json:"east" yaml:"e"`  // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool `bson:"w" json:"west" yaml:"w"`  // WestWall indicates whether there is a wall on the west side of the cell.
}

// closedCell returns a cell with all four walls standing.
func closedCell() Cell {
	return Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// HasWall reports whether the wall on the given face is standing.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return false
}

// SetWall raises or removes the wall on the given face.
func (c *Cell) SetWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	case West:
		c.WestWall = hasWall
	}
}

// WallCount returns how many of the four walls are standing.
func (c *Cell) WallCount() int {
	n := 0
	for _, d := range Directions {
		if c.HasWall(d) {
			n++
		}
	}
	return n
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `bson:"row" json:"row" yaml:"row"` // Row index of the cell
	Col int `bson:"col" json:"col" yaml:"col"` // Column index of the cell
}

// Step returns the neighbouring position in direction d, without bounds checks.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Move represents a movement from one cell to a neighbour.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Face crossed when leaving From
}
