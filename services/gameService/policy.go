package gameService

import (
	"strings"

	"cfbPickem/models/external"
	"cfbPickem/services/common"
)

const (
	DefaultPoll              = "AP Top 25"
	DefaultPrimaryProvider   = "DraftKings"
	DefaultSecondaryProvider = "ESPN Bet"
)

// Policy decides which games make the curated slate and which sportsbook
// quote is used for the spread.
type Policy struct {
	Poll              string
	Conferences       []string
	Teams             []string
	PrimaryProvider   string
	SecondaryProvider string
}

func DefaultPolicy() Policy {
	return Policy{
		Poll:              DefaultPoll,
		Conferences:       []string{"SEC"},
		Teams:             []string{"UAB"},
		PrimaryProvider:   DefaultPrimaryProvider,
		SecondaryProvider: DefaultSecondaryProvider,
	}
}

// RankedSet is the set of normalized school names in a poll.
type RankedSet map[string]struct{}

func (r RankedSet) Has(name string) bool {
	_, found := r[common.NormalizeName(name)]
	return found
}

// RankedSchools builds the ranked set from the configured poll. Missing
// rankings or a missing poll yield an empty set.
func (p Policy) RankedSchools(rankings []external.CFBD_RankingWeek) RankedSet {
	ranked := RankedSet{}
	poll := p.Poll
	if poll == "" {
		poll = DefaultPoll
	}
	for _, week := range rankings {
		for _, candidate := range week.Polls {
			if !strings.EqualFold(strings.TrimSpace(candidate.Poll), poll) {
				continue
			}
			for _, rank := range candidate.Ranks {
				if name := common.NormalizeName(rank.School); name != "" {
					ranked[name] = struct{}{}
				}
			}
			return ranked
		}
	}
	return ranked
}

// Matchup is a provider game with both teams resolved locally.
type Matchup struct {
	HomeName string
	AwayName string
	Home     *TeamRef
	Away     *TeamRef
}

// Eligible reports whether a matchup belongs in the slate: either team
// ranked, in an included conference, or an included team. Unresolved teams
// are never eligible.
func (p Policy) Eligible(m Matchup, ranked RankedSet) bool {
	if m.Home == nil || m.Away == nil {
		return false
	}
	if ranked.Has(m.HomeName) || ranked.Has(m.AwayName) {
		return true
	}
	for _, ref := range []*TeamRef{m.Home, m.Away} {
		if ranked.Has(ref.Team.Name) {
			return true
		}
		if common.ContainsName(p.Conferences, ref.ConferenceName()) {
			return true
		}
		if common.ContainsName(p.Teams, ref.Team.Name) {
			return true
		}
	}
	return false
}

func (p Policy) PickLine(lines []external.CFBD_Line) *external.CFBD_Line {
	return common.PickLine(lines, p.PrimaryProvider, p.SecondaryProvider)
}
