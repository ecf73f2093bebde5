package service

import (
	"github.com/fortuna/pitchside/internal/statsbomb"
)

// minLocatedEvents is the activity floor for the position map: a player
// needs strictly more located events than this to earn a marker.
const minLocatedEvents = 5

// PlayerAveragePosition is one pitch-map marker: a starter's mean location
// over all their located events.
type PlayerAveragePosition struct {
	Player string  `json:"player"`
	Jersey int     `json:"jersey"`
	AvgX   float64 `json:"avg_x"`
	AvgY   float64 `json:"avg_y"`
}

// coordSums accumulates a player's located events.
type coordSums struct {
	sumX, sumY float64
	count      int
}

// AveragePositions computes the average on-pitch coordinates of each lineup
// player of team with more than minLocatedEvents located events. Players
// outside the supplied lineup are skipped, which keeps non-starting
// substitutes off the map. Output order is first-seen order of qualifying
// players; empty events or lineup yield an empty result.
func AveragePositions(events []statsbomb.Event, lineup []statsbomb.LineupEntry, team string) []PlayerAveragePosition {
	jerseys := make(map[string]int, len(lineup))
	for _, entry := range lineup {
		if entry.PlayerName == "" || entry.JerseyNumber == nil {
			continue
		}
		jerseys[entry.PlayerName] = *entry.JerseyNumber
	}

	sums := make(map[string]*coordSums)
	var order []string

	for i := range events {
		ev := &events[i]

		if ev.Team.Name != team || !ev.HasLocation() {
			continue
		}
		player := ev.PlayerName()
		if player == "" {
			continue
		}
		if _, inLineup := jerseys[player]; !inLineup {
			continue
		}

		s, ok := sums[player]
		if !ok {
			s = &coordSums{}
			sums[player] = s
			order = append(order, player)
		}
		s.sumX += ev.Location[0]
		s.sumY += ev.Location[1]
		s.count++
	}

	positions := make([]PlayerAveragePosition, 0, len(order))
	for _, player := range order {
		s := sums[player]
		if s.count <= minLocatedEvents {
			continue
		}
		positions = append(positions, PlayerAveragePosition{
			Player: player,
			Jersey: jerseys[player],
			AvgX:   s.sumX / float64(s.count),
			AvgY:   s.sumY / float64(s.count),
		})
	}

	return positions
}
