package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
	qb "github.com/jasonjesuraja06/ucl-tracker-project/internal/platform/querybuilder"
)

const playersTable = "players2025"

var playerSelectColumns = []string{
	"id",
	"name",
	"nationality",
	"position",
	"team",
	"age",
	"matches_played",
	"starts",
	"minutes",
	"goals",
	"assists",
	"pk_made",
	"xg",
	"xag",
}

// PlayerRepository is the relational player.Store over the season
// table. Storage order is the identity column.
type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select all players")
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, team string) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select players by team", qb.Eq("team", team))
}

func (r *PlayerRepository) ListByNationality(ctx context.Context, code string) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select players by nationality", qb.Eq("nationality", code))
}

func (r *PlayerRepository) ListByPositionContains(ctx context.Context, position string) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select players by position", qb.Like("position", "%"+position+"%"))
}

func (r *PlayerRepository) DistinctTeams(ctx context.Context) ([]string, error) {
	return r.selectDistinct(ctx, "team")
}

func (r *PlayerRepository) DistinctNationalityCodes(ctx context.Context) ([]string, error) {
	return r.selectDistinct(ctx, "nationality")
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto(playersTable).
		Columns(playerSelectColumns[1:]...).
		Values(writeValues(p)...).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	p.ID = id

	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	builder := qb.Update(playersTable)
	values := writeValues(p)
	for i, column := range playerSelectColumns[1:] {
		builder.Set(column, values[i])
	}

	query, args, err := builder.Where(qb.Eq("id", p.ID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom(playersTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, action string, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", action, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) selectDistinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := qb.Select(column).
		Distinct().
		From(playersTable).
		Where(qb.NotNull(column)).
		OrderBy(column + " ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build distinct %s query: %w", column, err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct %s: %w", column, err)
	}

	return out, nil
}

// writeValues lines up with playerSelectColumns minus the id column.
func writeValues(p player.Player) []any {
	return []any{
		p.Name,
		p.Nationality,
		p.Position,
		p.Team,
		intToNull(p.Age),
		intToNull(p.MatchesPlayed),
		intToNull(p.Starts),
		intToNull(p.Minutes),
		intToNull(p.Goals),
		intToNull(p.Assists),
		intToNull(p.PKMade),
		floatToNull(p.XG),
		floatToNull(p.XAG),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
