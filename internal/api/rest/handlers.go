package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fortuna/pitchside/internal/flags"
	"github.com/fortuna/pitchside/internal/service"
	"github.com/fortuna/pitchside/internal/session"
)

// Narrator generates the tactical breakdown text. Satisfied by
// *narrative.Client.
type Narrator interface {
	Generate(ctx context.Context, statsJSON string, homeTeam, awayTeam string, homeScore, awayScore int) (string, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	matches  *service.MatchService
	narrator Narrator
}

// NewHandler creates a new handler
func NewHandler(matches *service.MatchService, narrator Narrator) *Handler {
	return &Handler{
		matches:  matches,
		narrator: narrator,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pitchside",
		"version": "1.0.0",
	})
}

// GetCompetition returns the resolved competition and season. Failure here
// is the one fatal tier: nothing downstream works without the index.
func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	comp, err := h.matches.ResolveCompetition(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to resolve competition season", err)
		return
	}

	respondJSON(w, http.StatusOK, comp)
}

// GetTeams returns the sorted team names of the season
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.matches.Teams(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

// GetMatches returns the season's matches, optionally filtered by team
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")

	matches, err := h.matches.ListMatches(r.Context(), team)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch matches", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetMatch returns a specific match's score card
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromRequest(w, r)
	if !ok {
		return
	}

	match, err := h.matches.Match(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found", err)
		} else {
			respondError(w, http.StatusBadGateway, "Failed to fetch match", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// GetMatchStats returns both teams' aggregated statistics for a match
func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.matches.Stats(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found", err)
		} else {
			respondError(w, http.StatusBadGateway, "Failed to compute match stats", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetMatchPositions returns the average-position map for one team of a match
func (h *Handler) GetMatchPositions(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromRequest(w, r)
	if !ok {
		return
	}

	team := r.URL.Query().Get("team")
	if team == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'team'", nil)
		return
	}

	positions, err := h.matches.Positions(r.Context(), matchID, team)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found", err)
		} else {
			respondError(w, http.StatusBadGateway, "Failed to compute positions", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":      team,
		"positions": positions,
	})
}

// LineupPlayer is one row of the lineup table view.
type LineupPlayer struct {
	Number  int    `json:"number"`
	Player  string `json:"player"`
	Country string `json:"country,omitempty"`
	Flag    string `json:"flag"`
}

// TeamLineupView is one team's lineup, sorted by jersey number.
type TeamLineupView struct {
	TeamName string         `json:"team_name"`
	Players  []LineupPlayer `json:"players"`
}

// GetMatchLineups returns both lineups with jersey numbers and flags.
// Missing lineup data degrades to an empty list, not an error.
func (h *Handler) GetMatchLineups(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromRequest(w, r)
	if !ok {
		return
	}

	lineups, err := h.matches.Lineups(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found", err)
		} else {
			respondError(w, http.StatusBadGateway, "Failed to fetch lineups", err)
		}
		return
	}

	views := make([]TeamLineupView, 0, len(lineups))
	for _, team := range lineups {
		view := TeamLineupView{TeamName: team.TeamName, Players: []LineupPlayer{}}
		for _, p := range team.Lineup {
			if p.JerseyNumber == nil {
				continue
			}
			view.Players = append(view.Players, LineupPlayer{
				Number:  *p.JerseyNumber,
				Player:  p.PlayerName,
				Country: p.CountryName(),
				Flag:    flags.Emoji(p.CountryName()),
			})
		}
		sort.Slice(view.Players, func(i, j int) bool {
			return view.Players[i].Number < view.Players[j].Number
		})
		views = append(views, view)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"lineups": views})
}

// GenerateNarrative computes the match stats and asks the model for a
// tactical breakdown. Model failure is rendered as an inline error string
// in place of the narrative; the stats in the same response are unaffected.
func (h *Handler) GenerateNarrative(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.matches.Stats(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found", err)
		} else {
			respondError(w, http.StatusBadGateway, "Failed to compute match stats", err)
		}
		return
	}

	statsJSON, err := json.MarshalIndent(stats.Teams, "", "  ")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to serialize stats", err)
		return
	}

	narrative, genErr := h.narrator.Generate(r.Context(), string(statsJSON),
		stats.HomeTeam, stats.AwayTeam, stats.Match.HomeScore, stats.Match.AwayScore)

	generated := genErr == nil
	if genErr != nil {
		narrative = fmt.Sprintf("Error generating tactical breakdown: %v", genErr)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"match_id":  matchID,
		"generated": generated,
		"narrative": narrative,
		"stats":     stats.Teams,
	})
}

// ApplyViewAction runs one view-state transition and returns the next state
func (h *Handler) ApplyViewAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State  session.ViewState `json:"state"`
		Action session.Action    `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid view request", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"state": req.State.Apply(req.Action),
	})
}

// matchIDFromRequest parses the matchID path variable, responding 400 on
// garbage.
func matchIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	matchID, err := strconv.Atoi(vars["matchID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid match ID", err)
		return 0, false
	}
	return matchID, true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
