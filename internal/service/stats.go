// Package service holds the aggregation core: pure passes over an
// already-fetched event list, plus the season/match browsing logic on top
// of the StatsBomb adapter.
package service

import (
	"sort"

	"github.com/fortuna/pitchside/internal/statsbomb"
)

// Event type and payload names dispatched on during aggregation. The feed's
// vocabulary is open; anything else counts toward player involvement only.
const (
	typeShot         = "Shot"
	typePass         = "Pass"
	typeSubstitution = "Substitution"
	typePressure     = "Pressure"
	typeDuel         = "Duel"

	outcomeGoal = "Goal"
	duelTackle  = "Tackle"
)

// topPlayerCount caps the most-involved-players list.
const topPlayerCount = 3

// Goal is one scored goal, in event order.
type Goal struct {
	Minute int    `json:"minute"`
	Player string `json:"player"`
}

// SubstitutionEntry is one substitution, in event order.
type SubstitutionEntry struct {
	Minute int    `json:"minute"`
	Out    string `json:"out"`
	In     string `json:"in"`
}

// TeamMatchStats is the per-team aggregate derived from one match's events.
type TeamMatchStats struct {
	Shots         int                 `json:"shots"`
	XG            float64             `json:"xg"`
	Passes        int                 `json:"passes"`
	Pressures     int                 `json:"pressures"`
	Tackles       int                 `json:"tackles"`
	Goals         []Goal              `json:"goals"`
	Substitutions []SubstitutionEntry `json:"subs"`
	TopPlayers    []string            `json:"top_players"`
}

// involvement is the internal per-team accumulator for the top-players
// derivation. Insertion order is kept so count ties break stably.
type involvement struct {
	counts map[string]int
	order  []string
}

func newInvolvement() *involvement {
	return &involvement{counts: make(map[string]int)}
}

func (v *involvement) add(player string) {
	if _, seen := v.counts[player]; !seen {
		v.order = append(v.order, player)
	}
	v.counts[player]++
}

// top returns up to n player names by descending count, ties broken by
// first-encounter order.
func (v *involvement) top(n int) []string {
	ranked := make([]string, len(v.order))
	copy(ranked, v.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return v.counts[ranked[i]] > v.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ComputeMatchStats derives both teams' statistics from the full event
// sequence in a single pass. Events whose team is neither homeTeam nor
// awayTeam are skipped: StatsBomb-style feeds include officiating and
// flagged events without a deterministic side. The result always contains
// exactly the two requested team keys, all-zero when no events match.
func ComputeMatchStats(events []statsbomb.Event, homeTeam, awayTeam string) map[string]*TeamMatchStats {
	stats := map[string]*TeamMatchStats{
		homeTeam: newTeamMatchStats(),
		awayTeam: newTeamMatchStats(),
	}
	involved := map[string]*involvement{
		homeTeam: newInvolvement(),
		awayTeam: newInvolvement(),
	}

	for i := range events {
		ev := &events[i]

		team, ok := stats[ev.Team.Name]
		if !ok {
			continue
		}

		if player := ev.PlayerName(); player != "" {
			involved[ev.Team.Name].add(player)
		}

		switch ev.Type.Name {
		case typeShot:
			team.Shots++
			team.XG += ev.XG()
			if ev.ShotOutcome() == outcomeGoal {
				team.Goals = append(team.Goals, Goal{Minute: ev.Minute, Player: ev.PlayerName()})
			}
		case typePass:
			team.Passes++
		case typeSubstitution:
			team.Substitutions = append(team.Substitutions, SubstitutionEntry{
				Minute: ev.Minute,
				Out:    ev.PlayerName(),
				In:     ev.Replacement(),
			})
		case typePressure:
			team.Pressures++
		case typeDuel:
			if ev.DuelType() == duelTackle {
				team.Tackles++
			}
		}
	}

	for name, team := range stats {
		team.TopPlayers = involved[name].top(topPlayerCount)
	}

	return stats
}

func newTeamMatchStats() *TeamMatchStats {
	return &TeamMatchStats{
		Goals:         []Goal{},
		Substitutions: []SubstitutionEntry{},
		TopPlayers:    []string{},
	}
}
