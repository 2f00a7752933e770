/*
Package maze builds perfect mazes over a rectangular grid.

A Maze is a grid of Cell values, each carrying four wall flags. Generation uses a randomized
recursive backtracker (depth-first search with an explicit stack) starting at cell (0,0), so the
open passages always form a spanning tree: every cell is reachable and there is exactly one path
between any two cells.

The package also carves the entrance and exit, emits axis-aligned wall segments for a renderer
(see Layout) and answers path queries over the finished grid.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// MinDimension is the smallest accepted number of rows or columns.
const MinDimension = 2

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrAsymmetricWall   = errors.New("asymmetric wall between neighbouring cells")
	ErrOutOfBounds      = errors.New("cell position out of bounds")
	ErrNoPath           = errors.New("no path between cells")
)

// Maze represents a rectangular maze of Rows x Cols cells.
type Maze struct {
	Rows int      // number of rows (Z axis)
	Cols int      // number of columns (X axis)
	Grid [][]Cell // Grid[row][col]

	rng *rand.Rand
}

// Option configures maze generation.
type Option func(*Maze)

// WithRand sets the random source used for generation.
func WithRand(r *rand.Rand) Option {
	return func(m *Maze) {
		m.rng = r
	}
}

// WithSeed makes generation reproducible for the given seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New initializes a new maze of the given dimensions and generates its layout.
// Dimensions below MinDimension are rejected with ErrInvalidDimension.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrInvalidDimension, rows, cols, MinDimension, MinDimension)
	}

	m := &Maze{
		Rows: rows,
		Cols: cols,
		Grid: closedGrid(rows, cols),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m.generate()
	return m, nil
}

// FromGrid restores a maze from a previously generated grid.
// The grid must be rectangular, at least MinDimension in both directions, and every shared wall
// must agree on both sides.
func FromGrid(grid [][]Cell) (*Maze, error) {
	rows := len(grid)
	if rows < MinDimension {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidDimension, rows)
	}
	cols := len(grid[0])
	if cols < MinDimension {
		return nil, fmt.Errorf("%w: %d columns", ErrInvalidDimension, cols)
	}

	m := &Maze{Rows: rows, Cols: cols, Grid: make([][]Cell, rows)}
	for row := range grid {
		if len(grid[row]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, row, len(grid[row]), cols)
		}
		m.Grid[row] = append([]Cell(nil), grid[row]...)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for _, d := range []Direction{North, East} {
				pos := CellPosition{Row: row, Col: col}
				next := pos.Step(d)
				if !m.InBound(next.Row, next.Col) {
					continue
				}
				if m.Grid[row][col].HasWall(d) != m.Grid[next.Row][next.Col].HasWall(d.Opposite()) {
					return nil, fmt.Errorf("%w: %v %s", ErrAsymmetricWall, pos, d)
				}
			}
		}
	}

	return m, nil
}

func closedGrid(rows, cols int) [][]Cell {
	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
		for j := range grid[i] {
			grid[i][j] = closedCell()
		}
	}
	return grid
}

// generate carves passages with a randomized recursive backtracker.
func (m *Maze) generate() {
	visited := make([][]bool, m.Rows)
	for i := range visited {
		visited[i] = make([]bool, m.Cols)
	}

	start := CellPosition{Row: 0, Col: 0}
	visited[start.Row][start.Col] = true
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates := m.unvisitedNeighbors(current, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		move := candidates[m.rng.Intn(len(candidates))]
		m.openWall(move)
		visited[move.To.Row][move.To.Col] = true
		stack = append(stack, move.To)
	}
}

// unvisitedNeighbors finds in-bound neighbours not yet reached by the generator.
func (m *Maze) unvisitedNeighbors(pos CellPosition, visited [][]bool) []Move {
	var result []Move
	for _, d := range Directions {
		next := pos.Step(d)
		if m.InBound(next.Row, next.Col) && !visited[next.Row][next.Col] {
			result = append(result, Move{From: pos, To: next, Direction: d})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells on both sides.
func (m *Maze) openWall(move Move) {
	m.Grid[move.From.Row][move.From.Col].SetWall(move.Direction, false)
	m.Grid[move.To.Row][move.To.Col].SetWall(move.Direction.Opposite(), false)
}

// InBound reports whether (row, col) lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// Cell returns a copy of the cell at pos.
func (m *Maze) Cell(pos CellPosition) (Cell, error) {
	if !m.InBound(pos.Row, pos.Col) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return m.Grid[pos.Row][pos.Col], nil
}

// HasWall reports whether the wall on face d of pos is standing.
// Positions outside the grid are treated as solid.
func (m *Maze) HasWall(pos CellPosition, d Direction) bool {
	if !m.InBound(pos.Row, pos.Col) {
		return true
	}
	return m.Grid[pos.Row][pos.Col].HasWall(d)
}

// IsValidMove checks whether a player in from can step through face d into a neighbouring cell.
func (m *Maze) IsValidMove(from CellPosition, d Direction) bool {
	to := from.Step(d)
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return false
	}
	return !m.Grid[from.Row][from.Col].HasWall(d) && !m.Grid[to.Row][to.Col].HasWall(d.Opposite())
}

// Neighbors returns the moves available from pos through open walls.
func (m *Maze) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, d := range Directions {
		if m.IsValidMove(pos, d) {
			result = append(result, Move{From: pos, To: pos.Step(d), Direction: d})
		}
	}
	return result
}

// OpenPassages counts the interior walls that have been removed.
// For a perfect maze this equals Rows*Cols-1.
func (m *Maze) OpenPassages() int {
	n := 0
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			if m.IsValidMove(pos, North) {
				n++
			}
			if m.IsValidMove(pos, East) {
				n++
			}
		}
	}
	return n
}

// Path returns the shortest sequence of cells from one position to another, both inclusive.
func (m *Maze) Path(from, to CellPosition) ([]CellPosition, error) {
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return nil, ErrOutOfBounds
	}

	visited := mapset.New[CellPosition]()
	visited.Put(from)
	parent := map[CellPosition]CellPosition{}
	queue := []CellPosition{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			break
		}
		for _, move := range m.Neighbors(current) {
			if visited.Has(move.To) {
				continue
			}
			visited.Put(move.To)
			parent[move.To] = current
			queue = append(queue, move.To)
		}
	}

	if !visited.Has(to) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	path := []CellPosition{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Reachable returns the number of cells reachable from pos.
func (m *Maze) Reachable(pos CellPosition) int {
	if !m.InBound(pos.Row, pos.Col) {
		return 0
	}
	seen := mapset.New[CellPosition]()
	seen.Put(pos)
	stack := []CellPosition{pos}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, move := range m.Neighbors(current) {
			if !seen.Has(move.To) {
				seen.Put(move.To)
				stack = append(stack, move.To)
			}
		}
	}
	return seen.Size()
}

// String provides a textual representation of the maze.
// Row Rows-1 (the northern edge) is printed first.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for col := 0; col < m.Cols; col++ {
		if m.Grid[m.Rows-1][col].NorthWall {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := m.Rows - 1; row >= 0; row-- {
		if m.Grid[row][0].WestWall {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < m.Cols; col++ {
			if m.Grid[row][col].EastWall {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < m.Cols; col++ {
			if m.Grid[row][col].SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
