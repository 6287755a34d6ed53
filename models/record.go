package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is embedded by every stored model. IDs are UUID strings assigned on
// create so the same records work against any backing store.
type Record struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Record) GetID() string {
	return r.ID
}

func (r *Record) SetID(id string) {
	r.ID = id
}

// EnsureID assigns a new id if none is set and returns it.
func (r *Record) EnsureID() string {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r.ID
}

func (r *Record) Created() time.Time {
	return r.CreatedAt
}

// Stamp sets timestamps for stores that do not manage them. A non-zero
// created wins over the record's own CreatedAt.
func (r *Record) Stamp(created, now time.Time) {
	if !created.IsZero() {
		r.CreatedAt = created
	} else if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	r.EnsureID()
	return nil
}

// All lists every stored model for auto migration.
func All() []interface{} {
	return []interface{}{
		&Conference{},
		&Team{},
		&Week{},
		&Game{},
		&GameScore{},
		&User{},
		&UserPick{},
		&ErrorLog{},
	}
}
