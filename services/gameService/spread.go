package gameService

import (
	"regexp"
	"strconv"
)

// Anything after the number, such as a provider tag, is ignored.
var spreadPattern = regexp.MustCompile(`^(.*?)\s+([+-]?\d*\.?\d+)`)

// ParsedSpread is a formatted spread resolved against local teams.
type ParsedSpread struct {
	SpreadTeamID string
	Spread       float64
	Team         *TeamRef
}

// ParseFormattedSpread reads strings like "Georgia -7.5". It returns nil when
// the string does not match or the team is not known locally.
func ParseFormattedSpread(formatted string, teams *TeamIndex) *ParsedSpread {
	match := spreadPattern.FindStringSubmatch(formatted)
	if match == nil {
		return nil
	}
	value, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return nil
	}
	ref, found := teams.Lookup(match[1])
	if !found {
		return nil
	}
	return &ParsedSpread{SpreadTeamID: ref.Team.ID, Spread: value, Team: ref}
}
