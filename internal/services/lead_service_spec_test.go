package services_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	domainerrors "github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/services"
)

var _ = Describe("LeadService", func() {
	var (
		repo      *fakeLeadRepo
		publisher *fakePublisher
		service   *services.LeadService
		ctx       context.Context
	)

	BeforeEach(func() {
		repo = newFakeLeadRepo()
		publisher = &fakePublisher{}
		service = services.NewLeadService(repo, fakeUnitOfWork{repo: repo}, publisher, nopLogger{})
		ctx = context.Background()
	})

	validInput := services.CreateLeadInput{
		Nome:     "Ana",
		Email:    "ana@x.com",
		Telefone: "11999999999",
	}

	Describe("Create", func() {
		It("cria o lead com status novo, id e timestamp", func() {
			lead, err := service.Create(ctx, validInput)

			Expect(err).NotTo(HaveOccurred())
			Expect(lead.ID).NotTo(BeEmpty())
			Expect(lead.Status).To(Equal(entities.StatusNovo))
			Expect(lead.Fonte).To(Equal(entities.FonteLandingPage))
			Expect(lead.Timestamp).NotTo(BeZero())
			Expect(lead.UpdatedAt).To(BeNil())
		})

		It("incrementa o total de leads em exatamente um", func() {
			before, _ := service.List(ctx)

			_, err := service.Create(ctx, validInput)
			Expect(err).NotTo(HaveOccurred())

			after, _ := service.List(ctx)
			Expect(len(after)).To(Equal(len(before) + 1))
		})

		It("gera ids únicos para cada lead", func() {
			first, err := service.Create(ctx, validInput)
			Expect(err).NotTo(HaveOccurred())

			second, err := service.Create(ctx, validInput)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).NotTo(Equal(second.ID))
		})

		It("respeita a fonte informada", func() {
			input := validInput
			input.Fonte = "instagram_ads"

			lead, err := service.Create(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(lead.Fonte).To(Equal("instagram_ads"))
		})

		It("rejeita email implausível", func() {
			input := validInput
			input.Email = "nao-e-email"

			_, err := service.Create(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
			leads, _ := service.List(ctx)
			Expect(leads).To(BeEmpty())
		})

		It("publica o evento de captura para o dashboard", func() {
			_, err := service.Create(ctx, validInput)

			Expect(err).NotTo(HaveOccurred())
			Expect(publisher.createdCount()).To(Equal(1))
		})
	})

	Describe("Get", func() {
		It("retorna ErrLeadNotFound para id desconhecido", func() {
			_, err := service.Get(ctx, "nao-existe")
			Expect(err).To(MatchError(domainerrors.ErrLeadNotFound))
		})
	})

	Describe("Update", func() {
		var leadID string

		BeforeEach(func() {
			lead, err := service.Create(ctx, validInput)
			Expect(err).NotTo(HaveOccurred())
			leadID = lead.ID
		})

		It("atualiza o status e registra updated_at", func() {
			status := string(entities.StatusQualificado)

			updated, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.StatusQualificado))
			Expect(updated.UpdatedAt).NotTo(BeNil())

			found, err := service.Get(ctx, leadID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusQualificado))
			Expect(found.UpdatedAt.Before(found.Timestamp)).To(BeFalse())
		})

		It("permite qualquer transição entre status", func() {
			// Triagem manual: vendido pode voltar para novo
			vendido := string(entities.StatusVendido)
			_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &vendido})
			Expect(err).NotTo(HaveOccurred())

			novo := string(entities.StatusNovo)
			updated, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &novo})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.StatusNovo))
		})

		It("mescla apenas os campos enviados", func() {
			notas := "pediu retorno na sexta"
			_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Notas: &notas})
			Expect(err).NotTo(HaveOccurred())

			found, err := service.Get(ctx, leadID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusNovo))
			Expect(found.Notas).NotTo(BeNil())
			Expect(*found.Notas).To(Equal(notas))
		})

		It("rejeita status fora da enumeração sem alterar o registro", func() {
			invalid := "fechado"

			_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &invalid})
			Expect(err).To(MatchError(domainerrors.ErrInvalidStatus))

			found, getErr := service.Get(ctx, leadID)
			Expect(getErr).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusNovo))
			Expect(found.UpdatedAt).To(BeNil())
		})

		It("retorna ErrNothingToUpdate quando nenhum campo é enviado", func() {
			_, err := service.Update(ctx, leadID, services.UpdateLeadInput{})
			Expect(err).To(MatchError(domainerrors.ErrNothingToUpdate))
		})

		It("retorna ErrLeadNotFound para id desconhecido", func() {
			status := string(entities.StatusVendido)
			_, err := service.Update(ctx, "nao-existe", services.UpdateLeadInput{Status: &status})
			Expect(err).To(MatchError(domainerrors.ErrLeadNotFound))
		})

		It("lê a linha com lock de atualização dentro da transação", func() {
			status := string(entities.StatusContatado)

			_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &status})
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lockingReads()).To(Equal(1))
		})

		It("não perde campos entre duas atualizações concorrentes", func() {
			// Uma atualização só de status e outra só de notas no mesmo
			// lead: com o lock de linha cada uma mescla sobre o estado
			// commitado da outra, então as duas mudanças sobrevivem
			vendido := string(entities.StatusVendido)
			notas := "fechou por telefone"

			var wg sync.WaitGroup
			errs := make(chan error, 2)

			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Status: &vendido})
				errs <- err
			}()
			go func() {
				defer wg.Done()
				_, err := service.Update(ctx, leadID, services.UpdateLeadInput{Notas: &notas})
				errs <- err
			}()
			wg.Wait()
			close(errs)

			for err := range errs {
				Expect(err).NotTo(HaveOccurred())
			}

			found, err := service.Get(ctx, leadID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.StatusVendido))
			Expect(found.Notas).NotTo(BeNil())
			Expect(*found.Notas).To(Equal(notas))
		})
	})

	Describe("Stats", func() {
		It("reflete o conteúdo atual do store", func() {
			for i := 0; i < 4; i++ {
				_, err := service.Create(ctx, validInput)
				Expect(err).NotTo(HaveOccurred())
			}

			leads, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())

			vendido := string(entities.StatusVendido)
			_, err = service.Update(ctx, leads[0].ID, services.UpdateLeadInput{Status: &vendido})
			Expect(err).NotTo(HaveOccurred())

			stats, err := service.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalLeads).To(Equal(4))
			Expect(stats.LeadsNovos).To(Equal(3))
			Expect(stats.LeadsVendidos).To(Equal(1))
			Expect(stats.TaxaConversao).To(Equal(25.0))
		})
	})
})
