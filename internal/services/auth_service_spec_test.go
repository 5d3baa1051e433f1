package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/infrastructure/token"
	"github.com/vipnexus/funil-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		repo    *fakeAdminRepo
		service *services.AuthService
		ctx     context.Context
	)

	seedInput := services.RegisterAdminInput{
		Email:    "admin@vipnexus.com",
		Password: "senha-segura",
		Nome:     "Admin",
	}

	BeforeEach(func() {
		repo = newFakeAdminRepo()
		tokens := token.NewJWTManager("test-secret", 24*time.Hour)
		service = services.NewAuthService(repo, tokens, nopLogger{})
		ctx = context.Background()

		_, err := service.Register(ctx, seedInput)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Login", func() {
		It("emite um token aceito por Authenticate", func() {
			admin, tokenString, err := service.Login(ctx, "admin@vipnexus.com", "senha-segura")

			Expect(err).NotTo(HaveOccurred())
			Expect(tokenString).NotTo(BeEmpty())
			Expect(admin.Nome).To(Equal("Admin"))

			authenticated, err := service.Authenticate(ctx, tokenString)
			Expect(err).NotTo(HaveOccurred())
			Expect(authenticated.ID).To(Equal(admin.ID))
		})

		It("rejeita senha errada com ErrInvalidCredentials", func() {
			_, _, err := service.Login(ctx, "admin@vipnexus.com", "senha-errada")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("rejeita email desconhecido com o mesmo erro genérico", func() {
			_, _, err := service.Login(ctx, "outro@vipnexus.com", "senha-segura")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("rejeita token expirado com ErrTokenExpired", func() {
			expired := token.NewJWTManager("test-secret", -time.Hour)
			expiredService := services.NewAuthService(repo, expired, nopLogger{})

			admin, tokenString, err := expiredService.Login(ctx, "admin@vipnexus.com", "senha-segura")
			Expect(err).NotTo(HaveOccurred())
			Expect(admin).NotTo(BeNil())

			_, err = service.Authenticate(ctx, tokenString)
			Expect(err).To(MatchError(domainerrors.ErrTokenExpired))
		})

		It("rejeita token de um admin removido", func() {
			admin, tokenString, err := service.Login(ctx, "admin@vipnexus.com", "senha-segura")
			Expect(err).NotTo(HaveOccurred())

			repo.remove(admin.ID)

			_, err = service.Authenticate(ctx, tokenString)
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})

		It("rejeita token malformado", func() {
			_, err := service.Authenticate(ctx, "nem-de-longe-um-jwt")
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})
	})

	Describe("Register", func() {
		It("rejeita email já cadastrado", func() {
			_, err := service.Register(ctx, seedInput)
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("armazena a senha como hash bcrypt", func() {
			admin, err := repo.FindByEmail(ctx, "admin@vipnexus.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(admin.PasswordHash).NotTo(ContainSubstring("senha-segura"))
			Expect(admin.PasswordHash).To(HavePrefix("$2"))
		})
	})

	Describe("SeedAdmin", func() {
		It("é idempotente para um email já cadastrado", func() {
			err := service.SeedAdmin(ctx, "admin@vipnexus.com", "outra-senha", "Admin")
			Expect(err).NotTo(HaveOccurred())

			// A senha original continua valendo
			_, _, err = service.Login(ctx, "admin@vipnexus.com", "senha-segura")
			Expect(err).NotTo(HaveOccurred())
		})

		It("cria o admin quando o email não existe", func() {
			err := service.SeedAdmin(ctx, "novo@vipnexus.com", "senha-segura", "Novo")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Login(ctx, "novo@vipnexus.com", "senha-segura")
			Expect(err).NotTo(HaveOccurred())
		})

		It("é no-op sem configuração de seed", func() {
			Expect(service.SeedAdmin(ctx, "", "", "")).To(Succeed())
		})
	})
})
