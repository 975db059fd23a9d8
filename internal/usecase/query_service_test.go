package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/infrastructure/repository/memory"
)

func intPtr(v int) *int { return &v }

func fixtureService(t *testing.T) *QueryService {
	t.Helper()
	return NewQueryService(memory.NewPlayerRepository(memory.SeedPlayers()))
}

func TestGetAll_StorageOrder(t *testing.T) {
	service := fixtureService(t)

	players, err := service.GetAll(t.Context())
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(players) != len(memory.SeedPlayers()) {
		t.Fatalf("expected full roster, got %d players", len(players))
	}
	for i, p := range players {
		if p.ID != int64(i+1) {
			t.Fatalf("expected storage order, got id %d at index %d", p.ID, i)
		}
	}
}

func TestListUniqueNationalities_NormalizedDedupedSorted(t *testing.T) {
	store := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "A", Nationality: "eng ENG", Position: "DF", Team: "eng Arsenal"},
		{ID: 2, Name: "B", Nationality: "es ESP", Position: "FW", Team: "es Real Madrid"},
		{ID: 3, Name: "C", Nationality: "eng ENG", Position: "MF", Team: "eng Chelsea"},
		{ID: 4, Name: "D", Nationality: "", Position: "GK", Team: "eng Chelsea"},
	})
	service := NewQueryService(store)

	names, err := service.ListUniqueNationalities(t.Context())
	if err != nil {
		t.Fatalf("list unique nationalities failed: %v", err)
	}
	want := []string{"England", "Spain"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestListUniqueTeams_RawValues(t *testing.T) {
	service := fixtureService(t)

	teams, err := service.ListUniqueTeams(t.Context())
	if err != nil {
		t.Fatalf("list unique teams failed: %v", err)
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1] >= teams[i] {
			t.Fatalf("expected ascending distinct teams, got %v", teams)
		}
	}
	// Listing keeps the raw country-prefixed encoding.
	found := false
	for _, team := range teams {
		if team == "eng Manchester City" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected raw team encoding in %v", teams)
	}
}

func TestListUniquePositions_ClosedVocabulary(t *testing.T) {
	service := NewQueryService(memory.NewPlayerRepository(nil))

	positions, err := service.ListUniquePositions(t.Context())
	if err != nil {
		t.Fatalf("list unique positions failed: %v", err)
	}
	want := []string{"GK", "DF", "MF", "FW"}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, positions)
		}
	}
}

func TestGetByPosition_SubstringAgainstRawValue(t *testing.T) {
	service := fixtureService(t)

	players, err := service.GetByPosition(t.Context(), "DF")
	if err != nil {
		t.Fatalf("get by position failed: %v", err)
	}
	for _, p := range players {
		if !strings.Contains(p.Position, "DF") {
			t.Fatalf("player %s position %q does not contain DF", p.Name, p.Position)
		}
	}
	// Kimmich is "DF,MF" and must match via substring.
	if !hasPlayer(players, "Joshua Kimmich") {
		t.Fatalf("expected multi-position player in result")
	}
}

func TestGetTop_CaseInsensitiveMetric(t *testing.T) {
	service := fixtureService(t)

	lower, err := service.GetTop(t.Context(), "goals")
	if err != nil {
		t.Fatalf("get top goals failed: %v", err)
	}
	upper, err := service.GetTop(t.Context(), "GOALS")
	if err != nil {
		t.Fatalf("get top GOALS failed: %v", err)
	}
	if len(lower) != len(upper) {
		t.Fatalf("expected identical result sizes")
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID {
			t.Fatalf("expected identical ordering regardless of metric case")
		}
	}
	for i := 1; i < len(lower); i++ {
		if lower[i-1].GoalsOrZero() < lower[i].GoalsOrZero() {
			t.Fatalf("expected descending goals order")
		}
	}
}

func TestGetTop_InvalidMetric(t *testing.T) {
	service := fixtureService(t)

	_, err := service.GetTop(t.Context(), "tackles")
	if !errors.Is(err, ErrInvalidMetric) {
		t.Fatalf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestGetTop_NullsAsZeroAndStableTies(t *testing.T) {
	store := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "First", Nationality: "eng ENG", Position: "FW", Team: "eng Arsenal", Goals: intPtr(2)},
		{ID: 2, Name: "NoGoals", Nationality: "es ESP", Position: "MF", Team: "es Barcelona"},
		{ID: 3, Name: "Tied", Nationality: "fr FRA", Position: "FW", Team: "fr Lyon", Goals: intPtr(2)},
		{ID: 4, Name: "Zero", Nationality: "de GER", Position: "DF", Team: "de Bayern Munich", Goals: intPtr(0)},
	})
	service := NewQueryService(store)

	ranked, err := service.GetTop(t.Context(), "goals")
	if err != nil {
		t.Fatalf("get top failed: %v", err)
	}
	// Equal keys keep storage order: 1 before 3, and the nil-goals
	// player ties with the explicit zero, again in storage order.
	wantIDs := []int64{1, 3, 2, 4}
	for i, id := range wantIDs {
		if ranked[i].ID != id {
			t.Fatalf("expected stable tie-break order %v, got %d at %d", wantIDs, ranked[i].ID, i)
		}
	}
}

func TestAdvancedFilter_DefaultsReturnTopGoals(t *testing.T) {
	service := fixtureService(t)

	got, err := service.AdvancedFilter(t.Context(), FilterInput{SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	top, err := service.GetTop(t.Context(), "goals")
	if err != nil {
		t.Fatalf("get top failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected limit-sized result, got %d", len(got))
	}
	for i := range got {
		if got[i].ID != top[i].ID {
			t.Fatalf("expected default filter to equal top-by-goals prefix")
		}
	}
}

func TestAdvancedFilter_PositionMatchesCodeAndDisplayName(t *testing.T) {
	store := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "A", Team: "eng Man City", Position: "DF,MF", Nationality: "eng ENG", Goals: intPtr(5)},
		{ID: 2, Name: "B", Team: "es Real Madrid", Position: "FW", Nationality: "es ESP", Goals: intPtr(10)},
	})
	service := NewQueryService(store)

	byName, err := service.AdvancedFilter(t.Context(), FilterInput{Position: "Defender", SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "A" {
		t.Fatalf("expected only A via display-name token match, got %v", byName)
	}

	byCode, err := service.AdvancedFilter(t.Context(), FilterInput{Position: "df", SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(byCode) != 1 || byCode[0].Name != "A" {
		t.Fatalf("expected only A via raw-code token match, got %v", byCode)
	}
}

func TestAdvancedFilter_TeamPrefixStripped(t *testing.T) {
	store := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "A", Team: "eng Man City", Position: "DF,MF", Nationality: "eng ENG", Goals: intPtr(5)},
		{ID: 2, Name: "B", Team: "es Real Madrid", Position: "FW", Nationality: "es ESP", Goals: intPtr(10)},
		{ID: 3, Name: "C", Team: "Standalone", Position: "GK", Nationality: "fr FRA"},
	})
	service := NewQueryService(store)

	got, err := service.AdvancedFilter(t.Context(), FilterInput{Team: "real madrid", SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("expected only B via prefix-stripped team match, got %v", got)
	}

	// A raw team value with no space compares whole.
	whole, err := service.AdvancedFilter(t.Context(), FilterInput{Team: "standalone", SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(whole) != 1 || whole[0].Name != "C" {
		t.Fatalf("expected only C via whole-value match, got %v", whole)
	}
}

func TestAdvancedFilter_NationalityNormalized(t *testing.T) {
	service := fixtureService(t)

	got, err := service.AdvancedFilter(t.Context(), FilterInput{Nationality: "germany", SortBy: "goals", Limit: 10})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the two German players, got %d", len(got))
	}
	for _, p := range got {
		if p.Nationality != "de GER" {
			t.Fatalf("unexpected nationality %q", p.Nationality)
		}
	}
}

func TestAdvancedFilter_MinGoalsTreatsNullAsZero(t *testing.T) {
	service := fixtureService(t)

	got, err := service.AdvancedFilter(t.Context(), FilterInput{MinGoals: 1, SortBy: "goals", Limit: 50})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	for _, p := range got {
		if p.GoalsOrZero() < 1 {
			t.Fatalf("player %s below min goals", p.Name)
		}
		if p.Goals == nil {
			t.Fatalf("null-goals player must be excluded at minGoals=1")
		}
	}

	all, err := service.AdvancedFilter(t.Context(), FilterInput{MinGoals: 0, SortBy: "goals", Limit: 50})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if !hasPlayer(all, "Marc Bernal") {
		t.Fatalf("expected null-goals player at minGoals=0")
	}
}

func TestAdvancedFilter_UnknownSortKeyKeepsOrder(t *testing.T) {
	service := fixtureService(t)

	got, err := service.AdvancedFilter(t.Context(), FilterInput{SortBy: "minutes", Limit: 50})
	if err != nil {
		t.Fatalf("unknown sort key must not error: %v", err)
	}
	// Identity comparator: storage order is preserved. This is the
	// documented divergence from GetTop's strict metric validation.
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("expected storage order under unknown sort key")
		}
	}
}

func TestAdvancedFilter_LimitBounds(t *testing.T) {
	service := fixtureService(t)

	empty, err := service.AdvancedFilter(t.Context(), FilterInput{SortBy: "goals", Limit: 0})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result for limit 0, got %d", len(empty))
	}

	negative, err := service.AdvancedFilter(t.Context(), FilterInput{SortBy: "goals", Limit: -3})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(negative) != 0 {
		t.Fatalf("expected empty result for negative limit")
	}

	two, err := service.AdvancedFilter(t.Context(), FilterInput{SortBy: "goals", Limit: 2})
	if err != nil {
		t.Fatalf("advanced filter failed: %v", err)
	}
	if len(two) != 2 {
		t.Fatalf("expected 2 results, got %d", len(two))
	}
}

func TestSearchByName(t *testing.T) {
	service := fixtureService(t)

	all, err := service.SearchByName(t.Context(), "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(all) != len(memory.SeedPlayers()) {
		t.Fatalf("empty query must match every player")
	}

	got, err := service.SearchByName(t.Context(), "haal")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Erling Haaland" {
		t.Fatalf("expected case-insensitive substring match, got %v", got)
	}
}

func TestSearchByName_UnnamedPlayerFails(t *testing.T) {
	store := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "Named", Nationality: "eng ENG", Position: "FW", Team: "eng Arsenal"},
		{ID: 2, Nationality: "es ESP", Position: "MF", Team: "es Barcelona"},
	})
	service := NewQueryService(store)

	_, err := service.SearchByName(t.Context(), "a")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unnamed player, got %v", err)
	}
}

func hasPlayer(players []player.Player, name string) bool {
	for _, p := range players {
		if p.Name == name {
			return true
		}
	}
	return false
}
