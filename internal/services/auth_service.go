package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/domain/ports"
	"github.com/vipnexus/funil-backend/internal/domain/repositories"
	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

// AuthService emite e valida sessões de administrador
type AuthService struct {
	adminRepo repositories.AdminRepository
	tokens    ports.TokenManager
	logger    ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	adminRepo repositories.AdminRepository,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterAdminInput representa os dados para registrar um administrador
type RegisterAdminInput struct {
	Email    string
	Password string
	Nome     string
}

// Login valida credenciais e emite um token de sessão.
// Falhas sempre retornam ErrInvalidCredentials, sem revelar se o email
// existe ou se a senha está errada.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.Admin, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	// bcrypt faz a comparação em tempo constante
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(admin.ID, admin.Email.String())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("admin logged in", "email", admin.Email.String())
	return admin, tokenString, nil
}

// Authenticate valida um token e resolve o administrador no store.
// Um token de um administrador removido é tratado como inválido.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*entities.Admin, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.ErrInvalidToken
	}

	return admin, nil
}

// Register cria um novo administrador (rota de setup inicial)
func (s *AuthService) Register(ctx context.Context, input RegisterAdminInput) (*entities.Admin, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.adminRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entities.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		Nome:         input.Nome,
		PasswordHash: string(hash),
	}

	if err := admin.Validate(); err != nil {
		return nil, err
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("admin registered", "email", admin.Email.String())
	return admin, nil
}

// SeedAdmin garante que o administrador configurado exista no startup.
// No-op quando o seed não está configurado ou o email já está cadastrado.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password, nome string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = s.Register(ctx, RegisterAdminInput{
		Email:    email,
		Password: password,
		Nome:     nome,
	})
	if err != nil {
		return err
	}

	s.logger.Info("seeded initial admin", "email", email)
	return nil
}
