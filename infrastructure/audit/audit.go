// Package audit records console-initiated mutations against the user API.
package audit

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	"github.com/MannavaSravanthi/user-management-ui/infrastructure/sqlite"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// Actions recorded by the console.
const (
	ActionCreateUser = "create_user"
	ActionUpdateUser = "update_user"
	ActionDeleteUser = "delete_user"
)

type Service struct {
	db  *sqlite.DB
	log zerolog.Logger
}

func NewService(db *sqlite.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Record writes one audit row. Best effort: a failure is logged and never
// propagated, so auditing can't fail a mutation that already succeeded.
func (s *Service) Record(ctx context.Context, actorID int64, action, targetID, detail string) {
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&models.AuditLog{
			ActorID:  actorID,
			Action:   action,
			TargetID: targetID,
			Detail:   detail,
		}).Exec(ctx)
		return err
	})
	if err != nil {
		s.log.Error().Str("action", action).Str("target_id", targetID).Err(err).Msg("audit write failed")
	}
}
