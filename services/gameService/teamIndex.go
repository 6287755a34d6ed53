package gameService

import (
	"context"
	"log"
	"strings"

	"cfbPickem/models"
	"cfbPickem/services/common"
	"cfbPickem/services/storeService"
)

// TeamRef is a local team with its conference attached.
type TeamRef struct {
	Team       models.Team
	Conference *models.Conference
}

func (r TeamRef) ConferenceName() string {
	if r.Conference == nil {
		return ""
	}
	return r.Conference.Name
}

// TeamIndex resolves provider team names to local teams. Lookups are case
// insensitive and ignore surrounding and repeated whitespace. When two local
// teams normalize to the same name the first one wins.
type TeamIndex struct {
	byName map[string]*TeamRef
	byID   map[string]*TeamRef
	alias  map[string]string
}

// LoadTeamIndex reads every stored team and conference and indexes them.
func LoadTeamIndex(ctx context.Context, store storeService.Store, aliases map[string]string) (*TeamIndex, error) {
	teams, err := storeService.FetchAll(ctx, store.Teams(), nil)
	if err != nil {
		return nil, common.Upstream("store teams", err)
	}
	conferences, err := storeService.FetchAll(ctx, store.Conferences(), nil)
	if err != nil {
		return nil, common.Upstream("store conferences", err)
	}
	return NewTeamIndex(teams, conferences, aliases), nil
}

func NewTeamIndex(teams []models.Team, conferences []models.Conference, aliases map[string]string) *TeamIndex {
	confMap := make(map[string]*models.Conference, len(conferences))
	for i := range conferences {
		confMap[conferences[i].ID] = &conferences[i]
	}

	idx := &TeamIndex{
		byName: make(map[string]*TeamRef, len(teams)),
		byID:   make(map[string]*TeamRef, len(teams)),
		alias:  make(map[string]string, len(aliases)),
	}

	for _, team := range teams {
		key := common.NormalizeName(team.Name)
		if key == "" {
			continue
		}
		ref := &TeamRef{Team: team, Conference: confMap[team.ConferenceID]}
		idx.byID[team.ID] = ref
		if existing, found := idx.byName[key]; found {
			log.Printf("duplicate team name %q: keeping %s, ignoring %s", team.Name, existing.Team.ID, team.ID)
			continue
		}
		idx.byName[key] = ref
	}

	for from, to := range aliases {
		from, to = common.NormalizeName(from), common.NormalizeName(to)
		if from == "" || to == "" {
			continue
		}
		idx.alias[from] = to
	}

	return idx
}

// Lookup finds the local team for a provider name, following aliases when
// the name itself is unknown.
func (idx *TeamIndex) Lookup(name string) (*TeamRef, bool) {
	key := common.NormalizeName(name)
	if key == "" {
		return nil, false
	}
	if ref, found := idx.byName[key]; found {
		return ref, true
	}
	if target, found := idx.alias[key]; found {
		ref, ok := idx.byName[target]
		return ref, ok
	}
	return nil, false
}

func (idx *TeamIndex) ByID(id string) (*TeamRef, bool) {
	ref, found := idx.byID[id]
	return ref, found
}

func (idx *TeamIndex) Len() int {
	return len(idx.byName)
}

// ParseAliases reads "Name=Alias;Other=Alias" pairs.
func ParseAliases(s string) map[string]string {
	aliases := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if from == "" || to == "" {
			continue
		}
		aliases[from] = to
	}
	return aliases
}
