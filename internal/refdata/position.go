package refdata

// positionNames maps the closed position vocabulary to display names.
var positionNames = map[string]string{
	"GK": "Goalkeeper",
	"DF": "Defender",
	"MF": "Midfielder",
	"FW": "Forward",
}

// PositionCodes is the fixed position vocabulary in pitch order. The
// unique-positions listing returns this set regardless of stored data.
func PositionCodes() []string {
	return []string{"GK", "DF", "MF", "FW"}
}

// NormalizePosition returns the display name for exactly GK/DF/MF/FW
// and an empty string for anything else. The empty result is only ever
// used in filter comparisons, never for display.
func NormalizePosition(code string) string {
	return positionNames[code]
}
