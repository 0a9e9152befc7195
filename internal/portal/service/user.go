package service

import (
	"context"
	"errors"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

var ErrUserNotFound = errors.New("user not found")

// UserService exposes read access to user accounts.
type UserService struct {
	Store store.Store
}

// Profile returns the account for the given id.
func (s *UserService) Profile(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
