package level

import (
	"sync"

	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/google/uuid"
)

// Kind distinguishes the two collectible families.
type Kind string

const (
	Coin     Kind = "coin"
	Treasure Kind = "treasure"
)

// Collectible is one item placed in the maze.
type Collectible struct {
	ID        uuid.UUID         `bson:"id" json:"id" yaml:"id"`
	Kind      Kind              `bson:"kind" json:"kind" yaml:"kind"`
	Points    int               `bson:"points" json:"points" yaml:"points"`
	Cell      maze.CellPosition `bson:"cell" json:"cell" yaml:"cell"`
	Position  maze.Vec3         `bson:"position" json:"position" yaml:"position"`
	Animation Animation         `bson:"animation" json:"animation" yaml:"animation"`
	Collected bool              `bson:"collected" json:"collected" yaml:"collected"`
}

// ScoreSink receives points when a collectible is picked up.
type ScoreSink interface {
	AddPoints(points int, treasure bool)
}

// ScoreBoard keeps separate coin and treasure totals.
type ScoreBoard struct {
	coins     int
	treasures int
	sync.RWMutex
}

var _ ScoreSink = &ScoreBoard{}

// AddPoints implements ScoreSink.
func (s *ScoreBoard) AddPoints(points int, treasure bool) {
	s.Lock()
	defer s.Unlock()
	if treasure {
		s.treasures += points
		return
	}
	s.coins += points
}

// Coins returns the coin total.
func (s *ScoreBoard) Coins() int {
	s.RLock()
	defer s.RUnlock()
	return s.coins
}

// Treasures returns the treasure total.
func (s *ScoreBoard) Treasures() int {
	s.RLock()
	defer s.RUnlock()
	return s.treasures
}
