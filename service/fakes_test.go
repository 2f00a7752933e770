package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-level/identity"
	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
)

var errNotFound = errors.New("not found")

type fakeLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *fakeLogger) Info(msg string)    { l.Lock(); l.infos = append(l.infos, msg); l.Unlock() }
func (l *fakeLogger) Warning(msg string) { l.Lock(); l.warnings = append(l.warnings, msg); l.Unlock() }
func (l *fakeLogger) Error(msg string)   { l.Lock(); l.errors = append(l.errors, msg); l.Unlock() }

type fakePlayerRepo struct {
	sync.Mutex
	players map[uuid.UUID]*identity.Player
	saveErr error
	addErr  error
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[uuid.UUID]*identity.Player{}}
}

func (r *fakePlayerRepo) Save(p *identity.Player) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, existing := range r.players {
		if existing.Username == p.Username && existing.ID != p.ID {
			return i.ErrUsernameTaken
		}
	}
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *fakePlayerRepo) ByID(id uuid.UUID) (*identity.Player, error) {
	r.Lock()
	defer r.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlayerRepo) ByUsername(username string) (*identity.Player, error) {
	r.Lock()
	defer r.Unlock()
	for _, p := range r.players {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *fakePlayerRepo) AddScore(id uuid.UUID, coins, treasures int) error {
	r.Lock()
	defer r.Unlock()
	if r.addErr != nil {
		return r.addErr
	}
	p, ok := r.players[id]
	if !ok {
		return errNotFound
	}
	p.Coins += coins
	p.Treasures += treasures
	return nil
}

type fakeLevelRepo struct {
	sync.Mutex
	levels map[uuid.UUID]level.Snapshot
	saves  int
}

func newFakeLevelRepo() *fakeLevelRepo {
	return &fakeLevelRepo{levels: map[uuid.UUID]level.Snapshot{}}
}

func (r *fakeLevelRepo) Save(_ context.Context, s *level.Snapshot) error {
	r.Lock()
	defer r.Unlock()
	cp := *s
	cp.Collectibles = append([]level.Collectible(nil), s.Collectibles...)
	r.levels[s.ID] = cp
	r.saves++
	return nil
}

func (r *fakeLevelRepo) ByID(_ context.Context, id uuid.UUID) (*level.Snapshot, error) {
	r.Lock()
	defer r.Unlock()
	s, ok := r.levels[id]
	if !ok {
		return nil, i.ErrLevelNotFound
	}
	s.Collectibles = append([]level.Collectible(nil), s.Collectibles...)
	return &s, nil
}

type fakeLocker struct {
	mu    sync.Mutex
	keys  map[string]*sync.Mutex
	taken []string
}

func (l *fakeLocker) Lock(_ context.Context, key string) (func() error, error) {
	l.mu.Lock()
	if l.keys == nil {
		l.keys = map[string]*sync.Mutex{}
	}
	m, ok := l.keys[key]
	if !ok {
		m = &sync.Mutex{}
		l.keys[key] = m
	}
	l.taken = append(l.taken, key)
	l.mu.Unlock()

	m.Lock()
	return func() error {
		m.Unlock()
		return nil
	}, nil
}

type fakeLeaderboard struct {
	sync.Mutex
	scores map[level.Kind]map[uuid.UUID]int
	err    error
}

func (b *fakeLeaderboard) Add(_ context.Context, kind level.Kind, id uuid.UUID, points int) error {
	b.Lock()
	defer b.Unlock()
	if b.err != nil {
		return b.err
	}
	if b.scores == nil {
		b.scores = map[level.Kind]map[uuid.UUID]int{}
	}
	if b.scores[kind] == nil {
		b.scores[kind] = map[uuid.UUID]int{}
	}
	b.scores[kind][id] += points
	return nil
}

func (b *fakeLeaderboard) Top(_ context.Context, kind level.Kind, n int64) ([]i.Standing, error) {
	b.Lock()
	defer b.Unlock()
	var out []i.Standing
	for id, score := range b.scores[kind] {
		out = append(out, i.Standing{PlayerID: id, Score: score})
	}
	sort.Slice(out, func(a, c int) bool { return out[a].Score > out[c].Score })
	if int64(len(out)) > n {
		out = out[:n]
	}
	return out, nil
}

type fakeTokenizer struct {
	err error
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + claims[ClaimPlayerID].(string), nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
