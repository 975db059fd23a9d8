package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
)

// PlayerInput is a validated write payload. For Patch, nil numerics
// and blank strings leave the stored field untouched.
type PlayerInput struct {
	Name          string
	Nationality   string
	Position      string
	Team          string
	Age           *int
	MatchesPlayed *int
	Starts        *int
	Minutes       *int
	Goals         *int
	Assists       *int
	PKMade        *int
	XG            *float64
	XAG           *float64
}

// AdminService is the write path: create, replace, patch and delete
// player records. Reads stay in QueryService.
type AdminService struct {
	store player.Store
}

func NewAdminService(store player.Store) *AdminService {
	return &AdminService{store: store}
}

func (s *AdminService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.GetByID")
	defer span.End()

	p, exists, err := s.store.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return p, nil
}

func (s *AdminService) Create(ctx context.Context, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Create")
	defer span.End()

	if err := validateInput(in); err != nil {
		return player.Player{}, err
	}

	created, err := s.store.Create(ctx, applyInput(player.Player{}, in))
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// Update replaces every field of an existing record.
func (s *AdminService) Update(ctx context.Context, id int64, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Update")
	defer span.End()

	if err := validateInput(in); err != nil {
		return player.Player{}, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	updated := applyInput(player.Player{ID: current.ID}, in)
	if err := s.store.Update(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return updated, nil
}

// Patch overwrites only the provided fields: non-blank strings and
// non-nil numerics.
func (s *AdminService) Patch(ctx context.Context, id int64, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Patch")
	defer span.End()

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	patched := mergeInput(current, in)
	if err := validatePlayer(patched); err != nil {
		return player.Player{}, err
	}
	if err := s.store.Update(ctx, patched); err != nil {
		return player.Player{}, fmt.Errorf("patch player: %w", err)
	}

	return patched, nil
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Delete")
	defer span.End()

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return nil
}

func validateInput(in PlayerInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Nationality) == "" {
		return fmt.Errorf("%w: nationality is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Team) == "" {
		return fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	for name, v := range map[string]*int{
		"age":            in.Age,
		"matches_played": in.MatchesPlayed,
		"starts":         in.Starts,
		"minutes":        in.Minutes,
		"goals":          in.Goals,
		"assists":        in.Assists,
		"pk_made":        in.PKMade,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidInput, name)
		}
	}
	for name, v := range map[string]*float64{"xg": in.XG, "xag": in.XAG} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidInput, name)
		}
	}

	return nil
}

func validatePlayer(p player.Player) error {
	return validateInput(PlayerInput{
		Name:          p.Name,
		Nationality:   p.Nationality,
		Position:      p.Position,
		Team:          p.Team,
		Age:           p.Age,
		MatchesPlayed: p.MatchesPlayed,
		Starts:        p.Starts,
		Minutes:       p.Minutes,
		Goals:         p.Goals,
		Assists:       p.Assists,
		PKMade:        p.PKMade,
		XG:            p.XG,
		XAG:           p.XAG,
	})
}

func applyInput(p player.Player, in PlayerInput) player.Player {
	p.Name = in.Name
	p.Nationality = in.Nationality
	p.Position = in.Position
	p.Team = in.Team
	p.Age = in.Age
	p.MatchesPlayed = in.MatchesPlayed
	p.Starts = in.Starts
	p.Minutes = in.Minutes
	p.Goals = in.Goals
	p.Assists = in.Assists
	p.PKMade = in.PKMade
	p.XG = in.XG
	p.XAG = in.XAG
	return p
}

func mergeInput(p player.Player, in PlayerInput) player.Player {
	if strings.TrimSpace(in.Name) != "" {
		p.Name = in.Name
	}
	if strings.TrimSpace(in.Nationality) != "" {
		p.Nationality = in.Nationality
	}
	if strings.TrimSpace(in.Position) != "" {
		p.Position = in.Position
	}
	if strings.TrimSpace(in.Team) != "" {
		p.Team = in.Team
	}
	if in.Age != nil {
		p.Age = in.Age
	}
	if in.MatchesPlayed != nil {
		p.MatchesPlayed = in.MatchesPlayed
	}
	if in.Starts != nil {
		p.Starts = in.Starts
	}
	if in.Minutes != nil {
		p.Minutes = in.Minutes
	}
	if in.Goals != nil {
		p.Goals = in.Goals
	}
	if in.Assists != nil {
		p.Assists = in.Assists
	}
	if in.PKMade != nil {
		p.PKMade = in.PKMade
	}
	if in.XG != nil {
		p.XG = in.XG
	}
	if in.XAG != nil {
		p.XAG = in.XAG
	}
	return p
}
