// Package spawn hands out free maze cells for item placement.
//
// A Pool keeps an occupancy grid of reserved cells (player start, entrance, exit, placed items)
// and a pool of the cells still free. Placements are drawn uniformly from the pool and jittered
// inside their cell so items keep a minimum clearance from the cell's walls.
package spawn

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-level/maze"
)

var ErrNoCellsAvailable = errors.New("no free cells available")

// Locator maps a cell to its world-space centre.
type Locator interface {
	CellCenter(pos maze.CellPosition) maze.Vec3
	CellHalf() float64
}

// Placement is one reserved cell and the jittered world position chosen inside it.
type Placement struct {
	Cell     maze.CellPosition
	Position maze.Vec3
}

// Pool tracks reserved cells and the free cells eligible for placement.
// A Pool is not safe for concurrent use.
type Pool struct {
	rows, cols int
	occupied   [][]bool
	available  []maze.CellPosition
	locator    Locator
	rng        *rand.Rand
}

// Option configures a Pool.
type Option func(*Pool)

// WithRand sets the random source for cell choice and jitter.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) {
		p.rng = r
	}
}

// NewPool creates a pool over a rows x cols grid with no reserved cells.
// The pool starts empty; call Rebuild after the deterministic reservations.
func NewPool(rows, cols int, locator Locator, opts ...Option) (*Pool, error) {
	if rows < maze.MinDimension || cols < maze.MinDimension {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, rows, cols)
	}
	if locator == nil {
		return nil, errors.New("spawn pool requires a cell locator")
	}

	occupied := make([][]bool, rows)
	for i := range occupied {
		occupied[i] = make([]bool, cols)
	}

	p := &Pool{
		rows:     rows,
		cols:     cols,
		occupied: occupied,
		locator:  locator,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p, nil
}

func (p *Pool) inBound(pos maze.CellPosition) bool {
	return pos.Row >= 0 && pos.Row < p.rows && pos.Col >= 0 && pos.Col < p.cols
}

// Reserve marks pos as occupied and withdraws it from the pool if it is still there.
// Reserving an occupied cell is a no-op, and positions outside the grid are ignored.
func (p *Pool) Reserve(pos maze.CellPosition) {
	if !p.inBound(pos) || p.occupied[pos.Row][pos.Col] {
		return
	}
	p.occupied[pos.Row][pos.Col] = true
	for i, cell := range p.available {
		if cell == pos {
			p.removeAt(i)
			return
		}
	}
}

// removeAt drops available[i] by swapping in the last cell.
func (p *Pool) removeAt(i int) {
	last := len(p.available) - 1
	p.available[i] = p.available[last]
	p.available = p.available[:last]
}

// IsReserved reports whether pos is occupied.
func (p *Pool) IsReserved(pos maze.CellPosition) bool {
	return p.inBound(pos) && p.occupied[pos.Row][pos.Col]
}

// Rebuild refills the pool with every cell not marked occupied.
func (p *Pool) Rebuild() {
	p.available = p.available[:0]
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			if !p.occupied[row][col] {
				p.available = append(p.available, maze.CellPosition{Row: row, Col: col})
			}
		}
	}
}

// Available returns the number of cells left in the pool.
func (p *Pool) Available() int {
	return len(p.available)
}

// TryReserve draws a free cell, marks it occupied and returns a position inside it.
// The position is the cell centre offset on X and Z by independent uniform jitter within
// ±max(cellHalf-clearance, 0), so it stays at least clearance away from the cell's walls.
// A negative clearance counts as zero; the position never leaves the cell.
func (p *Pool) TryReserve(clearance float64) (Placement, error) {
	if len(p.available) == 0 {
		return Placement{}, ErrNoCellsAvailable
	}

	index := p.rng.Intn(len(p.available))
	cell := p.available[index]
	p.removeAt(index)
	p.occupied[cell.Row][cell.Col] = true

	clearance = math.Max(clearance, 0)
	maxOffset := math.Max(p.locator.CellHalf()-clearance, 0)
	position := p.locator.CellCenter(cell)
	position.X += p.jitter(maxOffset)
	position.Z += p.jitter(maxOffset)

	return Placement{Cell: cell, Position: position}, nil
}

func (p *Pool) jitter(maxOffset float64) float64 {
	if maxOffset <= 0 {
		return 0
	}
	return (p.rng.Float64()*2 - 1) * maxOffset
}

// PlaceBatch reserves up to count cells at the given height.
// Running out of cells is not fatal: the placements made so far are returned together with an
// error wrapping ErrNoCellsAvailable.
func (p *Pool) PlaceBatch(count int, clearance, height float64) ([]Placement, error) {
	if count <= 0 {
		return nil, nil
	}

	placed := make([]Placement, 0, count)
	for i := 0; i < count; i++ {
		placement, err := p.TryReserve(clearance)
		if err != nil {
			return placed, fmt.Errorf("placed %d of %d: %w", len(placed), count, err)
		}
		placement.Position.Y = height
		placed = append(placed, placement)
	}
	return placed, nil
}
