package storeService

import (
	"context"
	"errors"
	"time"

	"cfbPickem/models"
)

var ErrNotFound = errors.New("record not found")

const DefaultPageSize = 100

// Filter matches records by column name, e.g. {"week_id": "w1"}.
type Filter map[string]any

// Page is one page of a List call. PageToken is empty on the last page.
type Page[T any] struct {
	Items     []T
	PageToken string
}

// Keyed is implemented by pointers to every stored model.
type Keyed interface {
	GetID() string
	SetID(id string)
	EnsureID() string
	Created() time.Time
	Stamp(created, now time.Time)
}

type recordPtr[T any] interface {
	*T
	Keyed
}

// Collection is the narrow adapter every backing store implements per model.
type Collection[T any] interface {
	List(ctx context.Context, filter Filter, pageToken string) (Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

type Store interface {
	Teams() Collection[models.Team]
	Conferences() Collection[models.Conference]
	Weeks() Collection[models.Week]
	Games() Collection[models.Game]
	UserPicks() Collection[models.UserPick]
	GameScores() Collection[models.GameScore]
	RecordError(ctx context.Context, entry models.ErrorLog) error
	Ping(ctx context.Context) error
}

// FetchAll follows page tokens until the collection is exhausted.
func FetchAll[T any](ctx context.Context, c Collection[T], filter Filter) ([]T, error) {
	var all []T
	token := ""
	for {
		page, err := c.List(ctx, filter, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.PageToken == "" || page.PageToken == token {
			return all, nil
		}
		token = page.PageToken
	}
}

// DeleteAll removes every record matching filter and returns the count.
func DeleteAll[T any, PT recordPtr[T]](ctx context.Context, c Collection[T], filter Filter) (int, error) {
	items, err := FetchAll(ctx, c, filter)
	if err != nil {
		return 0, err
	}
	for idx := range items {
		if err := c.Delete(ctx, PT(&items[idx]).GetID()); err != nil {
			return idx, err
		}
	}
	return len(items), nil
}
