package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/pkg/cryptox"
	"github.com/yklabs/portal/pkg/slogx"
)

// BootstrapService seeds demo data into an empty store on startup.
type BootstrapService struct {
	Store store.Store
}

// SeedDemoData inserts the starter catalogue and the two demo accounts.
// Courses are always re-seeded (inserts are idempotent); demo users are only
// created while no accounts exist, so a restart never resurrects a deleted
// demo login.
func (s *BootstrapService) SeedDemoData(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Courses().SeedCourses(ctx, domain.SeedCourses()); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	count, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Debug("store already has accounts, skipping demo users", slog.Int64("users", count))
		return nil
	}

	now := time.Now().UTC()
	passwords := map[string]string{
		domain.SeedAdminEmail: domain.SeedAdminPassword,
		domain.SeedUserEmail:  domain.SeedUserPassword,
	}
	for _, user := range domain.SeedUsers(now) {
		digest, err := cryptox.HashPassword(passwords[user.Email])
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		user.PasswordDigest = digest

		if _, err := s.Store.Users().CreateUser(ctx, user); err != nil {
			// Another instance may have seeded between the count and here.
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
		log.Info("seeded demo account", slog.String("email", user.Email), slog.String("role", string(user.Role)))
	}
	return nil
}
