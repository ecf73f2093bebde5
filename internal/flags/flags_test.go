package flags

import (
	"testing"

	"github.com/fortuna/pitchside/internal/statsbomb"
)

func TestEmoji_Overrides(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"England", "\U0001F3F4\U000E0067\U000E0062\U000E0065\U000E006E\U000E0067\U000E007F"},
		{"Wales", "\U0001F3F4\U000E0067\U000E0062\U000E0077\U000E006C\U000E0073\U000E007F"},
		{"Northern Ireland", "\U0001F1EC\U0001F1E7"},
		{"Korea Republic", "\U0001F1F0\U0001F1F7"},
		{"Côte d'Ivoire", "\U0001F1E8\U0001F1EE"},
		{"Republic of Ireland", "\U0001F1EE\U0001F1EA"},
		{"USA", "\U0001F1FA\U0001F1F8"},
	}
	for _, tc := range cases {
		if got := Emoji(tc.country); got != tc.want {
			t.Errorf("Emoji(%q) = %q; want %q", tc.country, got, tc.want)
		}
	}
}

func TestEmoji_ExactRegionName(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"Spain", "\U0001F1EA\U0001F1F8"},
		{"France", "\U0001F1EB\U0001F1F7"},
		{"Brazil", "\U0001F1E7\U0001F1F7"},
		{"Germany", "\U0001F1E9\U0001F1EA"},
	}
	for _, tc := range cases {
		if got := Emoji(tc.country); got != tc.want {
			t.Errorf("Emoji(%q) = %q; want %q", tc.country, got, tc.want)
		}
	}
}

func TestEmoji_Unresolvable(t *testing.T) {
	if got := Emoji(""); got != Unknown {
		t.Errorf("Emoji(\"\") = %q; want Unknown", got)
	}
	if got := Emoji("Atlantis"); got != Unknown {
		t.Errorf("Emoji(unknown country) = %q; want Unknown", got)
	}
}

func TestPlayerFlags(t *testing.T) {
	country := func(name string) *statsbomb.Ref { return &statsbomb.Ref{Name: name} }

	lineups := []statsbomb.TeamLineup{
		{
			TeamName: "Barcelona",
			Lineup: []statsbomb.LineupEntry{
				{PlayerID: 1, PlayerName: "A", Country: country("Spain")},
				{PlayerID: 2, PlayerName: "B", Country: country("England")},
			},
		},
		{
			TeamName: "Eibar",
			Lineup: []statsbomb.LineupEntry{
				{PlayerID: 3, PlayerName: "C"},
			},
		},
	}

	got := PlayerFlags(lineups)
	if len(got) != 3 {
		t.Fatalf("len(PlayerFlags) = %d; want 3", len(got))
	}
	if got["A"] != "\U0001F1EA\U0001F1F8" {
		t.Errorf("flag for A = %q", got["A"])
	}
	if got["B"] != overrides["England"] {
		t.Errorf("flag for B = %q", got["B"])
	}
	if got["C"] != Unknown {
		t.Errorf("flag for C = %q; want Unknown", got["C"])
	}
}
