package auth

import (
	"context"
	"errors"
	"strings"

	"resume-screen/internal/pkg/jwt"
	"resume-screen/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUserNotFound           = errors.New("user not found")
	ErrInternal               = errors.New("internal error")
)

const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type Tokens struct {
	Access  string
	Refresh string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.User, Tokens, error)
	Login(ctx context.Context, in LoginInput) (repository.User, Tokens, error)
	Profile(ctx context.Context, userID uuid.UUID) (repository.User, error)
}

type Service struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewService(users repository.UserRepository, jwtSvc jwt.Service) *Service {
	return &Service{users: users, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (repository.User, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return repository.User{}, Tokens{}, ErrInvalidInput
	}
	role, ok := normalizeRole(in.Role)
	if !ok {
		return repository.User{}, Tokens{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return repository.User{}, Tokens{}, ErrInternal
	}
	if exists {
		return repository.User{}, Tokens{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, Tokens{}, ErrInternal
	}

	u := repository.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return repository.User{}, Tokens{}, ErrInternal
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return repository.User{}, Tokens{}, ErrInternal
	}
	return sanitize(u), tokens, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (repository.User, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.User{}, Tokens{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, Tokens{}, ErrInvalidCredentials
		}
		return repository.User{}, Tokens{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return repository.User{}, Tokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return repository.User{}, Tokens{}, ErrInternal
	}
	return sanitize(u), tokens, nil
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	if userID == uuid.Nil {
		return repository.User{}, ErrUserNotFound
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, ErrInternal
	}
	return sanitize(u), nil
}

func (s *Service) issueTokens(u repository.User) (Tokens, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{Access: access, Refresh: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return strings.ToLower(email)
}

func normalizeRole(role string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", RoleJobseeker:
		return RoleJobseeker, true
	case RoleRecruiter:
		return RoleRecruiter, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(u repository.User) repository.User {
	u.PasswordHash = ""
	return u
}
