package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/refdata"
)

// QueryService is the read-side player engine: listing, grouping,
// ranking, filtering and search over the season roster. It never
// mutates the store; every call works on its own snapshot.
type QueryService struct {
	store player.Store
}

func NewQueryService(store player.Store) *QueryService {
	return &QueryService{store: store}
}

// GetAll returns the full roster in storage order.
func (s *QueryService) GetAll(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetAll")
	defer span.End()

	players, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all players: %w", err)
	}

	return players, nil
}

// ListUniqueTeams returns distinct raw team values ascending. Team
// display normalization happens only in filtering, not here.
func (s *QueryService) ListUniqueTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListUniqueTeams")
	defer span.End()

	teams, err := s.store.DistinctTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct teams: %w", err)
	}

	return teams, nil
}

// ListUniqueNationalities normalizes each distinct raw code to its
// display name, dedupes the results and sorts ascending.
func (s *QueryService) ListUniqueNationalities(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListUniqueNationalities")
	defer span.End()

	codes, err := s.store.DistinctNationalityCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct nationality codes: %w", err)
	}

	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		name := refdata.NormalizeNationality(code)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)

	return out, nil
}

// ListUniquePositions returns the closed position vocabulary,
// independent of stored data.
func (s *QueryService) ListUniquePositions(ctx context.Context) ([]string, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.ListUniquePositions")
	defer span.End()

	return refdata.PositionCodes(), nil
}

// GetByTeam matches the raw stored team value exactly; callers supply
// the raw encoding, not the parsed display name.
func (s *QueryService) GetByTeam(ctx context.Context, team string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetByTeam")
	defer span.End()

	players, err := s.store.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

// GetByNationality matches the raw stored nationality code exactly.
func (s *QueryService) GetByNationality(ctx context.Context, code string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetByNationality")
	defer span.End()

	players, err := s.store.ListByNationality(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list players by nationality: %w", err)
	}

	return players, nil
}

// GetByPosition substring-matches the raw stored position, so "DF"
// also finds "DF,MF" players.
func (s *QueryService) GetByPosition(ctx context.Context, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetByPosition")
	defer span.End()

	players, err := s.store.ListByPositionContains(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("list players by position: %w", err)
	}

	return players, nil
}

// GetTop ranks the full roster descending by one of goals/assists/
// xg/xag (case-insensitive), nulls as zero. Unlike AdvancedFilter it
// rejects unknown metrics with ErrInvalidMetric; the divergence is
// inherited and deliberate. Ties keep storage order (stable sort).
func (s *QueryService) GetTop(ctx context.Context, metric string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetTop")
	defer span.End()

	parsed, ok := player.ParseMetric(metric)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetric, metric)
	}

	players, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all players: %w", err)
	}

	sortByMetricDesc(players, parsed)

	return players, nil
}

// FilterInput carries the optional AdvancedFilter criteria. Zero
// values mean "not provided"; the handler applies the sortBy and
// limit defaults before calling.
type FilterInput struct {
	Nationality string
	Position    string
	Team        string
	MinGoals    int
	SortBy      string
	Limit       int
}

// AdvancedFilter ANDs up to four predicates over the full roster,
// sorts descending by SortBy and truncates to Limit.
//
//   - nationality: normalized display name, case-insensitive
//   - position: any comma-split token matches the query as a raw code
//     or as its display name, case-insensitive
//   - team: raw value with country prefix stripped, case-insensitive
//   - minGoals: always applied, null goals count as zero
//
// An unknown SortBy leaves the collection order untouched rather than
// failing; Limit <= 0 yields an empty result.
func (s *QueryService) AdvancedFilter(ctx context.Context, in FilterInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.AdvancedFilter")
	defer span.End()

	players, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all players: %w", err)
	}

	filtered := make([]player.Player, 0, len(players))
	for _, p := range players {
		if !matchesNationality(p, in.Nationality) {
			continue
		}
		if !matchesPosition(p, in.Position) {
			continue
		}
		if !matchesTeam(p, in.Team) {
			continue
		}
		if p.GoalsOrZero() < in.MinGoals {
			continue
		}
		filtered = append(filtered, p)
	}

	if metric, ok := player.ParseMetric(in.SortBy); ok {
		sortByMetricDesc(filtered, metric)
	}

	if in.Limit <= 0 {
		return []player.Player{}, nil
	}
	if in.Limit < len(filtered) {
		filtered = filtered[:in.Limit]
	}

	return filtered, nil
}

// SearchByName is a case-insensitive substring match; the empty query
// matches everyone. A stored player without a name violates the data
// model invariant and fails the whole call.
func (s *QueryService) SearchByName(ctx context.Context, name string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.SearchByName")
	defer span.End()

	players, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all players: %w", err)
	}

	needle := strings.ToLower(name)
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrInvalidInput, p.ID)
		}
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}

	return out, nil
}

func matchesNationality(p player.Player, query string) bool {
	if query == "" {
		return true
	}
	return strings.EqualFold(refdata.NormalizeNationality(p.Nationality), query)
}

func matchesPosition(p player.Player, query string) bool {
	if query == "" {
		return true
	}
	for _, token := range p.PositionTokens() {
		if strings.EqualFold(token, query) {
			return true
		}
		if name := refdata.NormalizePosition(token); name != "" && strings.EqualFold(name, query) {
			return true
		}
	}
	return false
}

func matchesTeam(p player.Player, query string) bool {
	if query == "" {
		return true
	}
	return strings.EqualFold(p.ParsedTeam(), query)
}

// sortByMetricDesc is stable so equal metric values keep snapshot
// order, the documented tie-break rule.
func sortByMetricDesc(players []player.Player, metric player.Metric) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].MetricValue(metric) > players[j].MetricValue(metric)
	})
}
