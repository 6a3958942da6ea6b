package health

import (
	"context"
	"database/sql"
)

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. A nil DB skips the database
// check.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns a simple health payload.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"ok": true}
	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			out["ok"] = false
			out["database"] = "down"
		} else {
			out["database"] = "up"
		}
	}
	return out
}
