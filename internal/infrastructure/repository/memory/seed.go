package memory

import "github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedPlayers returns a small roster in the raw FBref encodings the
// scraper produces: "<code> <CODE>" nationalities, comma-joined
// positions and country-prefixed team names.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: 1, Name: "Erling Haaland", Nationality: "no NOR", Position: "FW",
			Team: "eng Manchester City", Age: intPtr(24), MatchesPlayed: intPtr(9),
			Starts: intPtr(9), Minutes: intPtr(770), Goals: intPtr(8), Assists: intPtr(0),
			PKMade: intPtr(1), XG: floatPtr(7.1), XAG: floatPtr(0.9),
		},
		{
			ID: 2, Name: "Kylian Mbappe", Nationality: "fr FRA", Position: "FW",
			Team: "es Real Madrid", Age: intPtr(26), MatchesPlayed: intPtr(11),
			Starts: intPtr(10), Minutes: intPtr(905), Goals: intPtr(7), Assists: intPtr(2),
			PKMade: intPtr(2), XG: floatPtr(6.4), XAG: floatPtr(1.8),
		},
		{
			ID: 3, Name: "Jude Bellingham", Nationality: "eng ENG", Position: "MF",
			Team: "es Real Madrid", Age: intPtr(21), MatchesPlayed: intPtr(10),
			Starts: intPtr(10), Minutes: intPtr(864), Goals: intPtr(3), Assists: intPtr(4),
			PKMade: intPtr(0), XG: floatPtr(2.6), XAG: floatPtr(3.2),
		},
		{
			ID: 4, Name: "Joshua Kimmich", Nationality: "de GER", Position: "DF,MF",
			Team: "de Bayern Munich", Age: intPtr(30), MatchesPlayed: intPtr(12),
			Starts: intPtr(12), Minutes: intPtr(1055), Goals: intPtr(1), Assists: intPtr(5),
			PKMade: intPtr(0), XG: floatPtr(0.8), XAG: floatPtr(4.1),
		},
		{
			ID: 5, Name: "Virgil van Dijk", Nationality: "nl NED", Position: "DF",
			Team: "eng Liverpool", Age: intPtr(33), MatchesPlayed: intPtr(12),
			Starts: intPtr(12), Minutes: intPtr(1080), Goals: intPtr(1), Assists: intPtr(0),
			PKMade: intPtr(0), XG: floatPtr(0.9), XAG: floatPtr(0.3),
		},
		{
			ID: 6, Name: "Gianluigi Donnarumma", Nationality: "it ITA", Position: "GK",
			Team: "fr Paris Saint-Germain", Age: intPtr(26), MatchesPlayed: intPtr(13),
			Starts: intPtr(13), Minutes: intPtr(1170), Goals: intPtr(0), Assists: intPtr(0),
			PKMade: intPtr(0), XG: floatPtr(0.0), XAG: floatPtr(0.0),
		},
		{
			ID: 7, Name: "Mohamed Salah", Nationality: "eg EGY", Position: "FW,MF",
			Team: "eng Liverpool", Age: intPtr(32), MatchesPlayed: intPtr(12),
			Starts: intPtr(12), Minutes: intPtr(1032), Goals: intPtr(6), Assists: intPtr(3),
			PKMade: intPtr(2), XG: floatPtr(5.2), XAG: floatPtr(2.7),
		},
		{
			ID: 8, Name: "Lamine Yamal", Nationality: "es ESP", Position: "FW",
			Team: "es Barcelona", Age: intPtr(17), MatchesPlayed: intPtr(13),
			Starts: intPtr(12), Minutes: intPtr(1020), Goals: intPtr(5), Assists: intPtr(4),
			PKMade: intPtr(0), XG: floatPtr(4.0), XAG: floatPtr(3.9),
		},
		{
			ID: 9, Name: "Khvicha Kvaratskhelia", Nationality: "ge GEO", Position: "FW,MF",
			Team: "fr Paris Saint-Germain", Age: intPtr(24), MatchesPlayed: intPtr(11),
			Starts: intPtr(9), Minutes: intPtr(788), Goals: intPtr(2), Assists: intPtr(2),
			PKMade: intPtr(0), XG: floatPtr(2.4), XAG: floatPtr(2.0),
		},
		{
			ID: 10, Name: "Florian Wirtz", Nationality: "de GER", Position: "MF",
			Team: "de Bayer Leverkusen", Age: intPtr(22), MatchesPlayed: intPtr(10),
			Starts: intPtr(10), Minutes: intPtr(840), Goals: intPtr(4), Assists: intPtr(3),
			PKMade: intPtr(1), XG: floatPtr(3.3), XAG: floatPtr(2.9),
		},
		// Youth-squad call-up with no recorded minutes yet: every stat
		// column is null, exercising the absent-means-zero rule.
		{
			ID: 11, Name: "Marc Bernal", Nationality: "es ESP", Position: "MF",
			Team: "es Barcelona",
		},
		{
			ID: 12, Name: "Serhou Guirassy", Nationality: "gn GUI", Position: "FW",
			Team: "de Borussia Dortmund", Age: intPtr(29), MatchesPlayed: intPtr(12),
			Starts: intPtr(11), Minutes: intPtr(934), Goals: intPtr(10), Assists: intPtr(1),
			PKMade: intPtr(3), XG: floatPtr(8.2), XAG: floatPtr(1.1),
		},
	}
}
