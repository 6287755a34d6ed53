package gameService

import (
	"context"
	"log"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
	"cfbPickem/services/extService"
	"cfbPickem/services/storeService"

	"golang.org/x/sync/errgroup"
)

// SportsData is the part of the CFBD client the curation pipeline reads.
type SportsData interface {
	GetGames(ctx context.Context, q extService.Query) ([]external.CFBD_Game, error)
	GetLines(ctx context.Context, q extService.Query) ([]external.CFBD_BettingLines, error)
	GetRankings(ctx context.Context, q extService.Query) ([]external.CFBD_RankingWeek, error)
}

type Curator struct {
	store   storeService.Store
	data    SportsData
	policy  Policy
	aliases map[string]string
}

func NewCurator(store storeService.Store, data SportsData, policy Policy, aliases map[string]string) *Curator {
	return &Curator{store: store, data: data, policy: policy, aliases: aliases}
}

// ListRequest selects one provider week. SeasonType defaults to "regular".
type ListRequest struct {
	Year       int
	Week       int
	SeasonType string
}

func (r ListRequest) Validate() error {
	if r.Year <= 0 {
		return common.NewValidationError("year", "is required")
	}
	if r.Week <= 0 {
		return common.NewValidationError("week", "is required")
	}
	return nil
}

func (r ListRequest) key() models.WeekKey {
	seasonType := r.SeasonType
	if seasonType == "" {
		seasonType = "regular"
	}
	return models.WeekKey{Year: r.Year, Number: r.Week, SeasonType: seasonType}
}

// FindWeek resolves a week by its canonical key. It returns nil when the
// week does not exist yet.
func FindWeek(ctx context.Context, store storeService.Store, key models.WeekKey) (*models.Week, error) {
	page, err := store.Weeks().List(ctx, storeService.Filter{
		"season":      key.Season(),
		"description": key.Description(),
	}, "")
	if err != nil {
		return nil, common.Upstream("store weeks", err)
	}
	if len(page.Items) == 0 {
		return nil, nil
	}
	return &page.Items[0], nil
}

// Snapshot fetches everything the pipeline needs for one week. Provider and
// store reads run concurrently; the first failure aborts the rest.
func (c *Curator) Snapshot(ctx context.Context, req ListRequest) (CurationInput, error) {
	if err := req.Validate(); err != nil {
		return CurationInput{}, err
	}
	key := req.key()
	query := extService.Query{Year: key.Year, Week: key.Number, SeasonType: key.SeasonType}

	in := CurationInput{Aliases: c.aliases}
	var week *models.Week

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := c.data.GetGames(gctx, extService.Query{
			Year: query.Year, Week: query.Week, SeasonType: query.SeasonType, Classification: "fbs",
		})
		in.APIGames = games
		return common.Upstream("cfbd games", err)
	})
	g.Go(func() error {
		lines, err := c.data.GetLines(gctx, query)
		in.Lines = lines
		return common.Upstream("cfbd lines", err)
	})
	g.Go(func() error {
		rankings, err := c.data.GetRankings(gctx, query)
		in.Rankings = rankings
		return common.Upstream("cfbd rankings", err)
	})
	g.Go(func() error {
		teams, err := storeService.FetchAll(gctx, c.store.Teams(), nil)
		in.Teams = teams
		return common.Upstream("store teams", err)
	})
	g.Go(func() error {
		conferences, err := storeService.FetchAll(gctx, c.store.Conferences(), nil)
		in.Conferences = conferences
		return common.Upstream("store conferences", err)
	})
	g.Go(func() error {
		var err error
		week, err = FindWeek(gctx, c.store, key)
		return err
	})
	if err := g.Wait(); err != nil {
		return CurationInput{}, err
	}

	if week != nil {
		in.WeekID = week.ID
		games, err := storeService.FetchAll(ctx, c.store.Games(), storeService.Filter{"week_id": week.ID})
		if err != nil {
			return CurationInput{}, common.Upstream("store games", err)
		}
		in.StoredGames = games
	}
	return in, nil
}

// ListGames runs the curation pipeline for one week.
func (c *Curator) ListGames(ctx context.Context, req ListRequest) ([]EnrichedGame, error) {
	in, err := c.Snapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	games := FilterAndEnrichGames(in, c.policy)
	if len(in.APIGames) > 0 && len(games) == 0 {
		log.Printf("no eligible games for %s %s out of %d", req.key().Season(), req.key().Description(), len(in.APIGames))
	}
	return games, nil
}
