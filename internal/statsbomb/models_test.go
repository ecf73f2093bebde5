package statsbomb

import (
	"encoding/json"
	"testing"
)

// The accessors are the single default-resolution point for sparse feed
// payloads; a bare event must resolve everything to zero values.
func TestEventAccessors_Defaults(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(`{"minute": 5, "type": {"name": "Shot"}, "team": {"name": "Eibar"}}`), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := ev.PlayerName(); got != "" {
		t.Errorf("PlayerName() = %q; want empty", got)
	}
	if got := ev.XG(); got != 0 {
		t.Errorf("XG() = %v; want 0", got)
	}
	if got := ev.ShotOutcome(); got != "" {
		t.Errorf("ShotOutcome() = %q; want empty", got)
	}
	if got := ev.Replacement(); got != "" {
		t.Errorf("Replacement() = %q; want empty", got)
	}
	if got := ev.DuelType(); got != "" {
		t.Errorf("DuelType() = %q; want empty", got)
	}
	if ev.HasLocation() {
		t.Error("HasLocation() = true; want false")
	}
}

func TestEventAccessors_PartialShot(t *testing.T) {
	var ev Event
	// Shot present but outcome absent: xG resolves, outcome stays empty.
	if err := json.Unmarshal([]byte(`{"type": {"name": "Shot"}, "team": {"name": "Eibar"}, "shot": {"statsbomb_xg": 0.07}}`), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := ev.XG(); got != 0.07 {
		t.Errorf("XG() = %v; want 0.07", got)
	}
	if got := ev.ShotOutcome(); got != "" {
		t.Errorf("ShotOutcome() = %q; want empty", got)
	}
}

func TestMatchTeamName(t *testing.T) {
	var m Match
	payload := `{"match_id": 1, "match_date": "2018-08-18",
		"home_team": {"home_team_name": "Barcelona"},
		"away_team": {"away_team_name": "Alavés"},
		"home_score": 3, "away_score": 0}`
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := m.HomeTeam.Name(); got != "Barcelona" {
		t.Errorf("HomeTeam.Name() = %q", got)
	}
	if got := m.AwayTeam.Name(); got != "Alavés" {
		t.Errorf("AwayTeam.Name() = %q", got)
	}
}

func TestLineupEntry_CountryDefaults(t *testing.T) {
	var entry LineupEntry
	if err := json.Unmarshal([]byte(`{"player_id": 1, "player_name": "Y"}`), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := entry.CountryName(); got != "" {
		t.Errorf("CountryName() = %q; want empty", got)
	}
	if entry.JerseyNumber != nil {
		t.Errorf("JerseyNumber = %v; want nil", *entry.JerseyNumber)
	}
}
