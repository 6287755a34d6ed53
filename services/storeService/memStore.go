package storeService

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"cfbPickem/models"

	"gorm.io/gorm/schema"
)

// MemStore keeps every collection in memory. Filters resolve column names with
// the same naming rules GORM uses, so callers pass identical filters to either
// store.
type MemStore struct {
	teams       *memCollection[models.Team, *models.Team]
	conferences *memCollection[models.Conference, *models.Conference]
	weeks       *memCollection[models.Week, *models.Week]
	games       *memCollection[models.Game, *models.Game]
	userPicks   *memCollection[models.UserPick, *models.UserPick]
	gameScores  *memCollection[models.GameScore, *models.GameScore]

	mu        sync.Mutex
	errorLogs []models.ErrorLog
}

func NewMemStore() *MemStore {
	return NewMemStoreWithPageSize(DefaultPageSize)
}

func NewMemStoreWithPageSize(pageSize int) *MemStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cache := &sync.Map{}
	return &MemStore{
		teams:       newMemCollection[models.Team, *models.Team](cache, pageSize),
		conferences: newMemCollection[models.Conference, *models.Conference](cache, pageSize),
		weeks:       newMemCollection[models.Week, *models.Week](cache, pageSize),
		games:       newMemCollection[models.Game, *models.Game](cache, pageSize),
		userPicks:   newMemCollection[models.UserPick, *models.UserPick](cache, pageSize),
		gameScores:  newMemCollection[models.GameScore, *models.GameScore](cache, pageSize),
	}
}

func (s *MemStore) Teams() Collection[models.Team] { return s.teams }
func (s *MemStore) Conferences() Collection[models.Conference] { return s.conferences }
func (s *MemStore) Weeks() Collection[models.Week] { return s.weeks }
func (s *MemStore) Games() Collection[models.Game] { return s.games }
func (s *MemStore) UserPicks() Collection[models.UserPick] { return s.userPicks }
func (s *MemStore) GameScores() Collection[models.GameScore] { return s.gameScores }

func (s *MemStore) RecordError(_ context.Context, entry models.ErrorLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.EnsureID()
	entry.Stamp(time.Time{}, time.Now().UTC())
	s.errorLogs = append(s.errorLogs, entry)
	return nil
}

// ErrorLogs returns a copy of the recorded errors.
func (s *MemStore) ErrorLogs() []models.ErrorLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ErrorLog(nil), s.errorLogs...)
}

func (s *MemStore) Ping(context.Context) error {
	return nil
}

type memCollection[T any, PT recordPtr[T]] struct {
	mu        sync.RWMutex
	items     map[string]T
	pageSize  int
	schema    *schema.Schema
	schemaErr error
}

func newMemCollection[T any, PT recordPtr[T]](cache *sync.Map, pageSize int) *memCollection[T, PT] {
	s, err := schema.Parse(new(T), cache, schema.NamingStrategy{})
	return &memCollection[T, PT]{
		items:     make(map[string]T),
		pageSize:  pageSize,
		schema:    s,
		schemaErr: err,
	}
}

func (c *memCollection[T, PT]) List(ctx context.Context, filter Filter, pageToken string) (Page[T], error) {
	if c.schemaErr != nil {
		return Page[T]{}, c.schemaErr
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		if id > pageToken {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var page Page[T]
	for _, id := range ids {
		item := c.items[id]
		ok, err := c.matches(ctx, &item, filter)
		if err != nil {
			return Page[T]{}, err
		}
		if !ok {
			continue
		}
		page.Items = append(page.Items, item)
		if len(page.Items) == c.pageSize {
			page.PageToken = id
			break
		}
	}
	return page, nil
}

func (c *memCollection[T, PT]) matches(ctx context.Context, item *T, filter Filter) (bool, error) {
	rv := reflect.ValueOf(item).Elem()
	for column, want := range filter {
		field := c.schema.LookUpField(column)
		if field == nil {
			return false, fmt.Errorf("%s: unknown column %q", c.schema.Table, column)
		}
		got, _ := field.ValueOf(ctx, rv)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false, nil
		}
	}
	return true, nil
}

func (c *memCollection[T, PT]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return item, ErrNotFound
	}
	return item, nil
}

func (c *memCollection[T, PT]) Create(_ context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := PT(item).EnsureID()
	if _, exists := c.items[id]; exists {
		return fmt.Errorf("create %s: duplicate id %s", c.schema.Table, id)
	}
	PT(item).Stamp(time.Time{}, time.Now().UTC())
	c.items[id] = *item
	return nil
}

func (c *memCollection[T, PT]) Update(_ context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := PT(item).GetID()
	existing, ok := c.items[id]
	if !ok {
		return ErrNotFound
	}
	PT(item).Stamp(PT(&existing).Created(), time.Now().UTC())
	c.items[id] = *item
	return nil
}

func (c *memCollection[T, PT]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	return nil
}
