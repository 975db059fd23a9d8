package httpapi

import (
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/user"
)

// playerDTO keeps missing stats as JSON null rather than zero so
// clients can distinguish "no data" from a recorded zero.
type playerDTO struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Nationality   string   `json:"nationality"`
	Position      string   `json:"position"`
	Team          string   `json:"team"`
	Age           *int     `json:"age"`
	MatchesPlayed *int     `json:"matchesPlayed"`
	Starts        *int     `json:"starts"`
	Minutes       *int     `json:"minutes"`
	Goals         *int     `json:"goals"`
	Assists       *int     `json:"assists"`
	PKMade        *int     `json:"pkMade"`
	XG            *float64 `json:"xg"`
	XAG           *float64 `json:"xag"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
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
	}
}

func playersToDTO(players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	return items
}

type profileDTO struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Admin   bool   `json:"admin"`
}

func principalToProfileDTO(p user.Principal, admin bool) profileDTO {
	return profileDTO{
		Subject: p.Subject,
		Email:   user.EmailOf(p),
		Name:    p.Name,
		Picture: p.Picture,
		Admin:   admin,
	}
}
