package extService

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cfbPickem/models/external"
	"cfbPickem/services/common"
)

const (
	DefaultBaseURL  = "https://api.collegefootballdata.com"
	DefaultCacheTTL = 5 * time.Minute
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Cache   ResponseCache
}

// Query selects a slice of the CFBD schedule. Zero values are left out of
// the request.
type Query struct {
	Year           int
	Week           int
	SeasonType     string
	Classification string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	if q.Week != 0 {
		v.Set("week", strconv.Itoa(q.Week))
	}
	if q.SeasonType != "" {
		v.Set("seasonType", q.SeasonType)
	}
	if q.Classification != "" {
		v.Set("classification", q.Classification)
	}
	return v
}

// Client talks to the College Football Data API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      ResponseCache
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("CFBD_TOKEN not set in environment variables")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Cache == nil {
		cfg.Cache = NewMemoryCache(DefaultCacheTTL)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cfg.Cache,
	}, nil
}

func (c *Client) GetGames(ctx context.Context, q Query) ([]external.CFBD_Game, error) {
	var games []external.CFBD_Game
	err := c.get(ctx, "/games", q.values(), &games)
	return games, err
}

func (c *Client) GetLines(ctx context.Context, q Query) ([]external.CFBD_BettingLines, error) {
	var lines []external.CFBD_BettingLines
	err := c.get(ctx, "/lines", q.values(), &lines)
	return lines, err
}

func (c *Client) GetRankings(ctx context.Context, q Query) ([]external.CFBD_RankingWeek, error) {
	var rankings []external.CFBD_RankingWeek
	err := c.get(ctx, "/rankings", q.values(), &rankings)
	return rankings, err
}

func (c *Client) GetFBSTeams(ctx context.Context, year int) ([]external.CFBD_Team, error) {
	var teams []external.CFBD_Team
	err := c.get(ctx, "/teams/fbs", Query{Year: year}.values(), &teams)
	return teams, err
}

func (c *Client) GetConferences(ctx context.Context) ([]external.CFBD_Conference, error) {
	var conferences []external.CFBD_Conference
	err := c.get(ctx, "/conferences", nil, &conferences)
	return conferences, err
}

func (c *Client) GetCalendar(ctx context.Context, year int) ([]external.CFBD_CalendarWeek, error) {
	var calendar []external.CFBD_CalendarWeek
	err := c.get(ctx, "/calendar", Query{Year: year}.values(), &calendar)
	return calendar, err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	if body, found := c.cache.Get(ctx, requestURL); found {
		if err := json.Unmarshal(body, dest); err == nil {
			return nil
		}
	}

	body, err := c.fetch(ctx, requestURL)
	if err != nil {
		return common.Upstream("cfbd "+path, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return common.Upstream("cfbd "+path, fmt.Errorf("error parsing json: %w", err))
	}

	c.cache.Set(ctx, requestURL, body)
	return nil
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
