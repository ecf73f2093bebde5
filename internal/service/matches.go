package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fortuna/pitchside/internal/statsbomb"
)

// Result badge characters for a team's match list.
const (
	ResultWin  = "W"
	ResultLoss = "L"
	ResultDraw = "D"
)

// ErrMatchNotFound is returned when a match id is not in the season's list.
var ErrMatchNotFound = errors.New("match not found")

// Source is the read surface of the StatsBomb adapter the services consume.
type Source interface {
	Competitions(ctx context.Context) ([]statsbomb.Competition, error)
	Matches(ctx context.Context, competitionID, seasonID int) ([]statsbomb.Match, error)
	Events(ctx context.Context, matchID int) ([]statsbomb.Event, error)
	Lineups(ctx context.Context, matchID int) ([]statsbomb.TeamLineup, error)
}

// MatchService resolves the configured competition season and serves match
// browsing and per-match aggregation on top of the event source.
type MatchService struct {
	src             Source
	competitionName string
	seasonName      string
}

// NewMatchService creates a match service pinned to one competition season,
// e.g. ("La Liga", "2018/2019").
func NewMatchService(src Source, competitionName, seasonName string) *MatchService {
	return &MatchService{
		src:             src,
		competitionName: competitionName,
		seasonName:      seasonName,
	}
}

// ResolveCompetition finds the configured competition and season in the
// competitions index. Absence is a hard failure: no usable data exists
// without it.
func (s *MatchService) ResolveCompetition(ctx context.Context) (statsbomb.Competition, error) {
	comps, err := s.src.Competitions(ctx)
	if err != nil {
		return statsbomb.Competition{}, fmt.Errorf("fetching competitions: %w", err)
	}

	for _, comp := range comps {
		if comp.CompetitionName == s.competitionName && comp.SeasonName == s.seasonName {
			return comp, nil
		}
	}

	return statsbomb.Competition{}, fmt.Errorf("competition %q season %q not found in open data",
		s.competitionName, s.seasonName)
}

// MatchSummary is one row of the match list. Result is the W/L/D badge for
// the requested team, empty when the list is not filtered by team.
type MatchSummary struct {
	MatchID   int    `json:"match_id"`
	Date      string `json:"date"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Result    string `json:"result,omitempty"`
}

// ListMatches returns the season's matches, newest first. A non-empty team
// filters to matches that side played and stamps each row with its result
// badge.
func (s *MatchService) ListMatches(ctx context.Context, team string) ([]MatchSummary, error) {
	matches, err := s.seasonMatches(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		home, away := m.HomeTeam.Name(), m.AwayTeam.Name()
		if team != "" && home != team && away != team {
			continue
		}

		summary := MatchSummary{
			MatchID:   m.MatchID,
			Date:      m.MatchDate,
			HomeTeam:  home,
			AwayTeam:  away,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
		}
		if team != "" {
			summary.Result = resultFor(m, team)
		}
		summaries = append(summaries, summary)
	}

	// Latest to earliest; dates are ISO strings so string order works.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})

	return summaries, nil
}

// Teams returns the sorted distinct team names of the season.
func (s *MatchService) Teams(ctx context.Context) ([]string, error) {
	matches, err := s.seasonMatches(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var teams []string
	for _, m := range matches {
		for _, name := range []string{m.HomeTeam.Name(), m.AwayTeam.Name()} {
			if name != "" && !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}

	sort.Strings(teams)
	return teams, nil
}

// Match returns one match's score card.
func (s *MatchService) Match(ctx context.Context, matchID int) (statsbomb.Match, error) {
	matches, err := s.seasonMatches(ctx)
	if err != nil {
		return statsbomb.Match{}, err
	}

	for _, m := range matches {
		if m.MatchID == matchID {
			return m, nil
		}
	}

	return statsbomb.Match{}, fmt.Errorf("match %d: %w", matchID, ErrMatchNotFound)
}

// Stats fetches the match's events and aggregates both teams' statistics.
// An empty event list yields all-zero stats for both sides.
func (s *MatchService) Stats(ctx context.Context, matchID int) (*MatchStats, error) {
	match, err := s.Match(ctx, matchID)
	if err != nil {
		return nil, err
	}

	events, err := s.src.Events(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	home, away := match.HomeTeam.Name(), match.AwayTeam.Name()
	return &MatchStats{
		Match:      match,
		HomeTeam:   home,
		AwayTeam:   away,
		EventCount: len(events),
		Teams:      ComputeMatchStats(events, home, away),
	}, nil
}

// MatchStats is the stats view of one match: the score card plus both
// teams' aggregates keyed by team name.
type MatchStats struct {
	Match      statsbomb.Match            `json:"match"`
	HomeTeam   string                     `json:"home_team"`
	AwayTeam   string                     `json:"away_team"`
	EventCount int                        `json:"event_count"`
	Teams      map[string]*TeamMatchStats `json:"teams"`
}

// Positions computes the average-position map for one team of a match.
// Missing lineups or events degrade to an empty map, not an error.
func (s *MatchService) Positions(ctx context.Context, matchID int, team string) ([]PlayerAveragePosition, error) {
	if _, err := s.Match(ctx, matchID); err != nil {
		return nil, err
	}

	events, err := s.src.Events(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	lineups, err := s.src.Lineups(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetching lineups: %w", err)
	}

	for _, tl := range lineups {
		if tl.TeamName == team {
			return AveragePositions(events, tl.Lineup, team), nil
		}
	}

	return []PlayerAveragePosition{}, nil
}

// Lineups returns both teams' lineups for a match, empty when unavailable.
func (s *MatchService) Lineups(ctx context.Context, matchID int) ([]statsbomb.TeamLineup, error) {
	if _, err := s.Match(ctx, matchID); err != nil {
		return nil, err
	}
	return s.src.Lineups(ctx, matchID)
}

func (s *MatchService) seasonMatches(ctx context.Context) ([]statsbomb.Match, error) {
	comp, err := s.ResolveCompetition(ctx)
	if err != nil {
		return nil, err
	}
	return s.src.Matches(ctx, comp.CompetitionID, comp.SeasonID)
}

// resultFor computes the W/L/D badge of a finished match for one side.
func resultFor(m statsbomb.Match, team string) string {
	var scored, conceded int
	switch team {
	case m.HomeTeam.Name():
		scored, conceded = m.HomeScore, m.AwayScore
	case m.AwayTeam.Name():
		scored, conceded = m.AwayScore, m.HomeScore
	default:
		return ""
	}

	switch {
	case scored > conceded:
		return ResultWin
	case scored < conceded:
		return ResultLoss
	default:
		return ResultDraw
	}
}
