package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

const (
	// DashboardContacts is how many recent messages the dashboard shows.
	DashboardContacts = 5

	defaultContactLimit = 20
	maxContactLimit     = 100
	notifyTimeout       = 15 * time.Second
)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact stores a message and notifies the site owner.
// Notification failures are logged and do not fail the submission.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (model.Contact, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	for _, f := range []struct{ name, value string }{
		{"name", in.Name}, {"email", in.Email}, {"message", in.Message},
	} {
		if err := required(f.name, f.value); err != nil {
			return model.Contact{}, err
		}
	}

	row, err := s.db.CreateContact(ctx, database.CreateContactParams{
		ID:      s.newID(),
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	})
	if err != nil {
		return model.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	contact := toContact(row)

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(notifyCtx, contact); err != nil {
		s.logger.Warn("Failed to send contact notification", "contact_id", contact.ID, "error", err)
	}
	return contact, nil
}

// RecentContacts returns up to limit messages, newest first. Out-of-range limits are clamped.
func (s *Service) RecentContacts(ctx context.Context, limit int) ([]model.Contact, error) {
	if limit <= 0 {
		limit = defaultContactLimit
	}
	if limit > maxContactLimit {
		limit = maxContactLimit
	}
	rows, err := s.db.ListRecentContacts(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return toContacts(rows), nil
}

// MarkContactRead flags a message as read.
func (s *Service) MarkContactRead(ctx context.Context, id uuid.UUID) error {
	n, err := s.db.MarkContactRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark contact %s read: %w", id, err)
	}
	if n == 0 {
		return custom_errors.ErrNotFound
	}
	return nil
}

func toContacts(rows []database.Contact) []model.Contact {
	out := make([]model.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, toContact(r))
	}
	return out
}

func toContact(r database.Contact) model.Contact {
	return model.Contact{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}
