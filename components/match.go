package components

import (
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/yohamta/donburi"
)

// PlayerScore tracks a player's match statistics
type PlayerScore struct {
	PlayerIndex int
	KOs         int // Kills/knockouts
	Deaths      int
}

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State       cfg.MatchStateID
	ElapsedMs   float64       // gameplay time, paused time excluded
	Scores      []PlayerScore // Score per player slot (indexed by PlayerIndex)
	WinnerIndex int           // PlayerIndex of winner (-1 if no winner yet, -2 for draw)
}

var Match = donburi.NewComponentType[MatchData]()

const (
	NoWinner = -1
	Draw     = -2
)

// GetPlayerScore returns the score for a player, creating it if needed
func (m *MatchData) GetPlayerScore(playerIndex int) *PlayerScore {
	for len(m.Scores) <= playerIndex {
		m.Scores = append(m.Scores, PlayerScore{PlayerIndex: len(m.Scores)})
	}
	return &m.Scores[playerIndex]
}

// AddKO increments KO count for a player
func (m *MatchData) AddKO(playerIndex int) {
	if playerIndex < 0 {
		return
	}
	m.GetPlayerScore(playerIndex).KOs++
}

// AddDeath increments death count for a player
func (m *MatchData) AddDeath(playerIndex int) {
	if playerIndex < 0 {
		return
	}
	m.GetPlayerScore(playerIndex).Deaths++
}

// Leader returns the slot with the most KOs. It reports false while nobody
// has a KO or the top spot is shared.
func (m *MatchData) Leader() (int, bool) {
	leader, best, tied := -1, 0, false
	for _, score := range m.Scores {
		switch {
		case score.KOs > best:
			leader, best, tied = score.PlayerIndex, score.KOs, false
		case score.KOs == best && best > 0:
			tied = true
		}
	}
	if leader < 0 || tied {
		return -1, false
	}
	return leader, true
}
