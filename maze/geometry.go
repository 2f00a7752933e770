package maze

import (
	"fmt"
)

// Vec3 is a world-space vector. Y is up; the maze lies on the XZ plane.
type Vec3 struct {
	X float64 `bson:"x" json:"x" yaml:"x"`
	Y float64 `bson:"y" json:"y" yaml:"y"`
	Z float64 `bson:"z" json:"z" yaml:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Segment is one axis-aligned wall box.
type Segment struct {
	Cell      CellPosition `json:"cell"`      // cell that owns the wall face
	Direction Direction    `json:"direction"` // face of Cell the wall stands on
	Position  Vec3         `json:"position"`  // box centre
	Extent    Vec3         `json:"extent"`    // full box size along each axis
}

// Layout maps grid coordinates to world space.
type Layout struct {
	Spacing       float64 `bson:"spacing" json:"spacing" yaml:"spacing"`                     // cell size, > 0
	WallHeight    float64 `bson:"wallHeight" json:"wall_height" yaml:"wall_height"`          // wall box height
	WallThickness float64 `bson:"wallThickness" json:"wall_thickness" yaml:"wall_thickness"` // wall box depth
}

// Validate rejects layouts that cannot produce geometry.
func (l Layout) Validate() error {
	if l.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %.2f must be positive", ErrInvalidDimension, l.Spacing)
	}
	if l.WallHeight < 0 || l.WallThickness < 0 {
		return fmt.Errorf("%w: wall height %.2f and thickness %.2f must not be negative", ErrInvalidDimension, l.WallHeight, l.WallThickness)
	}
	return nil
}

// CellHalf is half the cell size.
func (l Layout) CellHalf() float64 {
	return l.Spacing * 0.5
}

// Offsets returns the world X and Z of the grid's (0,0) corner; the grid is centred on the origin.
func (l Layout) Offsets(m *Maze) (offsetX, offsetZ float64) {
	return -float64(m.Cols) * l.Spacing * 0.5, -float64(m.Rows) * l.Spacing * 0.5
}

// CellCenter returns the world position of the centre of pos at ground level (Y = 0).
func (l Layout) CellCenter(m *Maze, pos CellPosition) Vec3 {
	offsetX, offsetZ := l.Offsets(m)
	return Vec3{
		X: offsetX + float64(pos.Col)*l.Spacing + l.CellHalf(),
		Y: 0,
		Z: offsetZ + float64(pos.Row)*l.Spacing + l.CellHalf(),
	}
}

// Bounds returns the world width (X), depth (Z) and the centre of the middle cell.
func (l Layout) Bounds(m *Maze) (width, depth float64, center Vec3) {
	return float64(m.Cols) * l.Spacing,
		float64(m.Rows) * l.Spacing,
		l.CellCenter(m, CellPosition{Row: m.Rows / 2, Col: m.Cols / 2})
}

// Emit converts standing walls into boxes.
//
// Every interior wall is shared by two cells and is emitted once, by the cell that owns its
// North or East face. Row 0 additionally emits its South faces and column 0 its West faces to
// close the outer ring.
func (l Layout) Emit(m *Maze) []Segment {
	segments := make([]Segment, 0, 2*m.Rows*m.Cols+m.Rows+m.Cols)
	half := l.CellHalf()
	horizontal := Vec3{X: l.Spacing, Y: l.WallHeight, Z: l.WallThickness}
	vertical := Vec3{X: l.WallThickness, Y: l.WallHeight, Z: l.Spacing}

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := m.Grid[row][col]
			center := l.CellCenter(m, pos)
			center.Y = l.WallHeight * 0.5

			if cell.NorthWall {
				segments = append(segments, Segment{Cell: pos, Direction: North, Position: center.Add(Vec3{Z: half}), Extent: horizontal})
			}
			if cell.EastWall {
				segments = append(segments, Segment{Cell: pos, Direction: East, Position: center.Add(Vec3{X: half}), Extent: vertical})
			}
			if row == 0 && cell.SouthWall {
				segments = append(segments, Segment{Cell: pos, Direction: South, Position: center.Sub(Vec3{Z: half}), Extent: horizontal})
			}
			if col == 0 && cell.WestWall {
				segments = append(segments, Segment{Cell: pos, Direction: West, Position: center.Sub(Vec3{X: half}), Extent: vertical})
			}
		}
	}

	return segments
}

// GridLocator binds a Layout to one maze so cell centres can be looked up by position alone.
type GridLocator struct {
	layout Layout
	maze   *Maze
}

// Locator returns a GridLocator for m.
func (l Layout) Locator(m *Maze) GridLocator {
	return GridLocator{layout: l, maze: m}
}

// CellCenter returns the world centre of pos at ground level.
func (g GridLocator) CellCenter(pos CellPosition) Vec3 {
	return g.layout.CellCenter(g.maze, pos)
}

// CellHalf is half the cell size.
func (g GridLocator) CellHalf() float64 {
	return g.layout.CellHalf()
}
