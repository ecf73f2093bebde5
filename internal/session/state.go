// Package session models dashboard navigation as an explicit value object
// instead of server-side mutable state. The frontend round-trips a
// ViewState through the API: every transition is a pure function from one
// state to the next, so there is nothing to store or lock on the server.
package session

// Action names accepted by Apply.
const (
	ActionSelectTeam  = "select_team"
	ActionSelectMatch = "select_match"
	ActionBack        = "back"
)

// ViewState is the serializable navigation state of one dashboard client.
// A zero SelectedMatchID means the match list view; non-zero means the
// detail view of that match.
type ViewState struct {
	SelectedTeam    string `json:"selected_team,omitempty"`
	SelectedMatchID int    `json:"selected_match_id,omitempty"`
}

// Action is a requested navigation transition.
type Action struct {
	Type    string `json:"type"`
	Team    string `json:"team,omitempty"`
	MatchID int    `json:"match_id,omitempty"`
}

// SelectTeam switches the browsed team. Changing team drops any match
// selection; re-selecting the current team keeps it.
func (s ViewState) SelectTeam(team string) ViewState {
	if team != s.SelectedTeam {
		s.SelectedMatchID = 0
	}
	s.SelectedTeam = team
	return s
}

// SelectMatch opens the detail view of a match.
func (s ViewState) SelectMatch(matchID int) ViewState {
	s.SelectedMatchID = matchID
	return s
}

// Back returns from the detail view to the match list.
func (s ViewState) Back() ViewState {
	s.SelectedMatchID = 0
	return s
}

// Apply runs one transition. Unknown action types leave the state as is.
func (s ViewState) Apply(a Action) ViewState {
	switch a.Type {
	case ActionSelectTeam:
		return s.SelectTeam(a.Team)
	case ActionSelectMatch:
		return s.SelectMatch(a.MatchID)
	case ActionBack:
		return s.Back()
	default:
		return s
	}
}
