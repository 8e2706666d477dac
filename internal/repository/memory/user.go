package memory

import (
	"context"
	"strings"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Name, u.Name) {
			return user.User{}, user.ErrNameTaken
		}
	}

	now := time.Now().UTC()
	u.ID = s.nextUserID()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]user.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users, nil
}

func (r *userRepository) ListEmployees(ctx context.Context) ([]user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var employees []user.User
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Role == user.RoleEmployee {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

func (r *userRepository) AdjustWallet(ctx context.Context, id string, delta decimal.Decimal) (user.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	u.WalletBalance = u.WalletBalance.Add(delta)
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return u, nil
}

func (r *userRepository) SetActiveShift(ctx context.Context, id string, shiftID *string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.ActiveShiftID = shiftID
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return nil
}
