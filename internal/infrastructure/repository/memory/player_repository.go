package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
)

// PlayerRepository is an in-memory player.Store used for local runs
// and tests. Reads hand out copies; storage order is insertion order.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	nextID  int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	var maxID int64
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.ID > maxID {
			maxID = p.ID
		}
		out = append(out, p)
	}

	return &PlayerRepository{
		players: out,
		nextID:  maxID + 1,
	}
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]player.Player(nil), r.players...), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, team string) ([]player.Player, error) {
	return r.filter(func(p player.Player) bool { return p.Team == team })
}

func (r *PlayerRepository) ListByNationality(_ context.Context, code string) ([]player.Player, error) {
	return r.filter(func(p player.Player) bool { return p.Nationality == code })
}

func (r *PlayerRepository) ListByPositionContains(_ context.Context, position string) ([]player.Player, error) {
	return r.filter(func(p player.Player) bool { return strings.Contains(p.Position, position) })
}

func (r *PlayerRepository) DistinctTeams(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return distinctSorted(r.players, func(p player.Player) string { return p.Team }), nil
}

func (r *PlayerRepository) DistinctNationalityCodes(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return distinctSorted(r.players, func(p player.Player) string { return p.Nationality }), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.ID == id {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.players = append(r.players, p)

	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ID == p.ID {
			r.players[i] = p
			return nil
		}
	}

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (r *PlayerRepository) filter(keep func(player.Player) bool) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

func distinctSorted(players []player.Player, value func(player.Player) string) []string {
	seen := make(map[string]struct{}, len(players))
	out := make([]string, 0, len(players))
	for _, p := range players {
		v := value(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
