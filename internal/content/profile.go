package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-site/internal/auth"
	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

// MinPasswordLength applies to newly chosen admin passwords.
const MinPasswordLength = 8

// CredentialsInput is the admin security form. Empty fields are left unchanged.
type CredentialsInput struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Profile returns the public profile. A missing profile yields the zero value.
func (s *Service) Profile(ctx context.Context) (model.Profile, error) {
	row, err := s.db.GetProfile(ctx)
	if err != nil {
		if errors.Is(translateError(err), custom_errors.ErrNotFound) {
			return model.Profile{}, nil
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return toProfile(row), nil
}

// UpdateProfile replaces the public profile details. Credentials are untouched.
func (s *Service) UpdateProfile(ctx context.Context, in model.Profile) (model.Profile, error) {
	var row database.Profile
	err := s.db.ExecTx(ctx, func(q database.Querier) error {
		current, err := s.ensureProfile(ctx, q)
		if err != nil {
			return err
		}
		row, err = q.UpsertProfileDetails(ctx, database.UpsertProfileDetailsParams{
			Name:          strings.TrimSpace(in.Name),
			Title:         strings.TrimSpace(in.Title),
			Bio:           strings.TrimSpace(in.Bio),
			Email:         strings.TrimSpace(in.Email),
			Phone:         strings.TrimSpace(in.Phone),
			Github:        strings.TrimSpace(in.Github),
			Youtube:       strings.TrimSpace(in.Youtube),
			Linkedin:      strings.TrimSpace(in.Linkedin),
			Location:      strings.TrimSpace(in.Location),
			CvUrl:         strings.TrimSpace(in.CvURL),
			AdminUsername: current.AdminUsername,
			AdminPassword: current.AdminPassword,
		})
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}
	return toProfile(row), nil
}

// Login checks admin credentials and returns the username to put in the session.
// A password still stored in plaintext is replaced by its hash after a successful check.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", &custom_errors.ErrValidation{Reason: "Username and password are required"}
	}

	p, err := s.ensureProfile(ctx, s.db)
	if err != nil {
		return "", err
	}
	if username != p.AdminUsername || !auth.CheckPassword(p.AdminPassword, password) {
		return "", custom_errors.ErrInvalidCredentials
	}

	if !auth.IsHashed(p.AdminPassword) {
		if err := s.storeCredentials(ctx, s.db, p.AdminUsername, password); err != nil {
			s.logger.Error("Failed to upgrade stored admin password", "error", err)
		} else {
			s.logger.Info("Upgraded stored admin password to bcrypt")
		}
	}
	return p.AdminUsername, nil
}

// UpdateCredentials changes the admin username and/or password.
// Changing the password requires the current one.
func (s *Service) UpdateCredentials(ctx context.Context, in CredentialsInput) error {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" && in.NewPassword == "" {
		return &custom_errors.ErrValidation{Reason: "Nothing to update"}
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return &custom_errors.ErrValidation{Field: "currentPassword", Reason: "is required to set a new password"}
		}
		if len(in.NewPassword) < MinPasswordLength {
			return &custom_errors.ErrValidation{Field: "newPassword", Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
		}
	}

	return s.db.ExecTx(ctx, func(q database.Querier) error {
		p, err := s.ensureProfile(ctx, q)
		if err != nil {
			return err
		}

		username := p.AdminUsername
		if in.Username != "" {
			username = in.Username
		}

		if in.NewPassword == "" {
			_, err := q.UpdateAdminCredentials(ctx, database.UpdateAdminCredentialsParams{
				AdminUsername: username,
				AdminPassword: p.AdminPassword,
			})
			if err != nil {
				return fmt.Errorf("update admin credentials: %w", err)
			}
			return nil
		}

		if !auth.CheckPassword(p.AdminPassword, in.CurrentPassword) {
			return &custom_errors.ErrValidation{Field: "currentPassword", Reason: "is incorrect"}
		}
		return s.storeCredentials(ctx, q, username, in.NewPassword)
	})
}

func (s *Service) storeCredentials(ctx context.Context, q database.Querier, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = q.UpdateAdminCredentials(ctx, database.UpdateAdminCredentialsParams{
		AdminUsername: username,
		AdminPassword: hash,
	})
	if err != nil {
		return fmt.Errorf("update admin credentials: %w", err)
	}
	return nil
}

// ensureProfile returns the profile row, creating it with the default admin login if absent.
func (s *Service) ensureProfile(ctx context.Context, q database.Querier) (database.Profile, error) {
	p, err := q.GetProfile(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(translateError(err), custom_errors.ErrNotFound) {
		return database.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	hash, err := auth.HashPassword(s.defaultAdmin.Password)
	if err != nil {
		return database.Profile{}, fmt.Errorf("hash default password: %w", err)
	}
	p, err = q.CreateProfile(ctx, database.CreateProfileParams{
		AdminUsername: s.defaultAdmin.Username,
		AdminPassword: hash,
	})
	if err != nil {
		// Another request may have created it first.
		if existing, getErr := q.GetProfile(ctx); getErr == nil {
			return existing, nil
		}
		return database.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	s.logger.Info("Created profile with default admin credentials", "username", p.AdminUsername)
	return p, nil
}

func toProfile(r database.Profile) model.Profile {
	return model.Profile{
		Name:     r.Name,
		Title:    r.Title,
		Bio:      r.Bio,
		Email:    r.Email,
		Phone:    r.Phone,
		Github:   r.Github,
		Youtube:  r.Youtube,
		Linkedin: r.Linkedin,
		Location: r.Location,
		CvURL:    r.CvUrl,
	}
}
