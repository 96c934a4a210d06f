// Package content manages the portfolio's authored content: projects, profile,
// client sites, contact messages and the admin credentials.
package content

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/notify"
)

// Credentials are the admin login used when no profile exists yet.
type Credentials struct {
	Username string
	Password string
}

// Service implements the content operations on top of the database.
type Service struct {
	db           database.TxQuerier
	notifier     notify.Notifier
	logger       *slog.Logger
	defaultAdmin Credentials
	newID        func() uuid.UUID
}

// NewService creates a new content Service.
func NewService(db database.TxQuerier, notifier notify.Notifier, logger *slog.Logger, defaultAdmin Credentials) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{
		db:           db,
		notifier:     notifier,
		logger:       logger,
		defaultAdmin: defaultAdmin,
		newID:        uuid.New,
	}
}

// translateError maps driver errors onto the application's error types.
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return custom_errors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return custom_errors.ErrConflict
	}
	return err
}

// splitList turns "Go, React ,,SQL" into [Go React SQL].
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &custom_errors.ErrValidation{Field: field, Reason: "is required"}
	}
	return nil
}
