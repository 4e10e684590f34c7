package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emrebkr/vendcare/internal/auth"
	"github.com/emrebkr/vendcare/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

type UserService struct {
	store  UserStore
	issuer TokenIssuer
}

func NewUserService(store UserStore, issuer TokenIssuer) *UserService {
	return &UserService{store: store, issuer: issuer}
}

type LoginResult struct {
	Token string
	User  model.User
}

// Login checks credentials, refuses disabled accounts and stamps LastLogin.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now().UTC()
	if err := s.store.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	user.UpdatedAt = now

	token, err := s.issuer.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *user}, nil
}

type CreateUserInput struct {
	Email    string
	Name     string
	Role     model.Role
	Password string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput, principal model.Principal) (*model.User, error) {
	if !principal.Can(model.CapManageUsers) {
		return nil, ErrPermissionDenied
	}

	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", ErrConflict)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserInput struct {
	Email string
	Name  string
	Role  model.Role
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput, principal model.Principal) (*model.User, error) {
	if !principal.Can(model.CapManageUsers) {
		return nil, ErrPermissionDenied
	}

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" {
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
		}
		user.Email = email
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Role != "" {
		if !validRole(input.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
		}
		user.Role = input.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, user); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetActive gates effective access without deleting the account.
func (s *UserService) SetActive(ctx context.Context, id string, active bool, principal model.Principal) (*model.User, error) {
	if !principal.Can(model.CapManageUsers) {
		return nil, ErrPermissionDenied
	}

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.Can(model.CapManageUsers) {
		return nil, ErrPermissionDenied
	}
	return s.store.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string, principal model.Principal) (*model.User, error) {
	if !principal.Can(model.CapManageUsers) && principal.UserID != id {
		return nil, ErrPermissionDenied
	}
	user, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string, principal model.Principal) error {
	if !principal.Can(model.CapManageUsers) {
		return ErrPermissionDenied
	}
	if principal.UserID == id {
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validRole(role model.Role) bool {
	switch role {
	case model.RoleAdmin, model.RoleRouteman, model.RoleViewer:
		return true
	default:
		return false
	}
}
