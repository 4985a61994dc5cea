package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/MannavaSravanthi/user-management-ui/infrastructure/cache"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/sqlite"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// Store is the single owner of the persisted session profile. Get and Set are
// its only operations; nothing else reads or writes profile rows.
type Store struct {
	db    *sqlite.DB
	cache *cache.ProfileCache
}

func NewStore(db *sqlite.DB, c *cache.ProfileCache) *Store {
	return &Store{db: db, cache: c}
}

// Get returns the profile stored under id, consulting the in-memory cache
// before sqlite.
func (s *Store) Get(ctx context.Context, id string) (models.Profile, bool) {
	if id == "" {
		return models.Profile{}, false
	}
	if p, ok := s.cache.Find(id); ok {
		return p, true
	}

	var p models.Profile
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&p).Where("p.id = ?", id).Limit(1).Scan(ctx)
	})
	if err != nil {
		return models.Profile{}, false
	}
	s.cache.Add(p)
	return p, true
}

// Set persists p under id; a nil profile clears both the cached and the
// durable copy.
func (s *Store) Set(ctx context.Context, id string, p *models.Profile) error {
	if id == "" {
		return errors.New("profile id is required")
	}

	if p == nil {
		s.cache.Delete(id)
		return s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			_, err := tx.NewDelete().Model((*models.Profile)(nil)).Where("id = ?", id).Exec(ctx)
			return err
		})
	}

	p.ID = id
	now := time.Now()
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO profiles (id, user_id, name, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id = excluded.user_id,
  name = excluded.name,
  role = excluded.role,
  updated_at = excluded.updated_at`, p.ID, p.UserID, p.Name, p.Role, now, now)
		return err
	})
	if err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	s.cache.Add(*p)
	return nil
}
