package refdata

import "testing"

func TestNormalizeNationality(t *testing.T) {
	if got := NormalizeNationality("eng ENG"); got != "England" {
		t.Fatalf("expected England, got %q", got)
	}
	if got := NormalizeNationality("es ESP"); got != "Spain" {
		t.Fatalf("expected Spain, got %q", got)
	}
	// Unmapped codes pass through unchanged.
	if got := NormalizeNationality("zz ZZZ"); got != "zz ZZZ" {
		t.Fatalf("expected pass-through, got %q", got)
	}
	if got := NormalizeNationality(""); got != "" {
		t.Fatalf("expected empty pass-through, got %q", got)
	}
}

func TestNormalizePosition(t *testing.T) {
	cases := map[string]string{
		"GK": "Goalkeeper",
		"DF": "Defender",
		"MF": "Midfielder",
		"FW": "Forward",
		"gk": "",
		"":   "",
		"ST": "",
	}
	for code, want := range cases {
		if got := NormalizePosition(code); got != want {
			t.Fatalf("NormalizePosition(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestPositionCodesOrder(t *testing.T) {
	codes := PositionCodes()
	want := []string{"GK", "DF", "MF", "FW"}
	if len(codes) != len(want) {
		t.Fatalf("expected %d codes, got %d", len(want), len(codes))
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, codes)
		}
	}
}
