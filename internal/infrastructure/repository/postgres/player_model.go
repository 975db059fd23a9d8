package postgres

import (
	"database/sql"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
)

type playerTableModel struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Nationality   sql.NullString  `db:"nationality"`
	Position      sql.NullString  `db:"position"`
	Team          sql.NullString  `db:"team"`
	Age           sql.NullInt64   `db:"age"`
	MatchesPlayed sql.NullInt64   `db:"matches_played"`
	Starts        sql.NullInt64   `db:"starts"`
	Minutes       sql.NullInt64   `db:"minutes"`
	Goals         sql.NullInt64   `db:"goals"`
	Assists       sql.NullInt64   `db:"assists"`
	PKMade        sql.NullInt64   `db:"pk_made"`
	XG            sql.NullFloat64 `db:"xg"`
	XAG           sql.NullFloat64 `db:"xag"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		Name:          m.Name,
		Nationality:   m.Nationality.String,
		Position:      m.Position.String,
		Team:          m.Team.String,
		Age:           nullInt(m.Age),
		MatchesPlayed: nullInt(m.MatchesPlayed),
		Starts:        nullInt(m.Starts),
		Minutes:       nullInt(m.Minutes),
		Goals:         nullInt(m.Goals),
		Assists:       nullInt(m.Assists),
		PKMade:        nullInt(m.PKMade),
		XG:            nullFloat(m.XG),
		XAG:           nullFloat(m.XAG),
	}
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}

func intToNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func floatToNull(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
