package launching

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

// Orçamento mínimo aceito pelo Meta após o scale, em centavos
const minBudgetCents = int64(100)

// Launcher define as operações em massa sobre campanhas, conjuntos e anúncios
type Launcher interface {
	BulkUpdateStatus(ctx context.Context, req *domain.BulkStatusRequest) (*domain.BulkOperationReport, error)
	BulkDelete(ctx context.Context, req *domain.BulkDeleteRequest) (*domain.BulkOperationReport, error)
	BulkScaleBudgets(ctx context.Context, req *domain.BulkBudgetScaleRequest) (*domain.BulkOperationReport, error)
	BulkDuplicate(ctx context.Context, req *domain.BulkDuplicateRequest) (*domain.BulkOperationReport, error)
}

type Service struct {
	cfg                        *config.Config
	metaService                meta.MetaIntegrator
	connectionRepository       repository.ConnectionRepository
	campaignCreationRepository repository.CampaignCreationRepository
	metrics                    *metrics.Metrics

	// nowFunc permite injetar o relógio nos testes
	nowFunc func() time.Time
}

func NewService(
	cfg *config.Config,
	metaService meta.MetaIntegrator,
	connectionRepo repository.ConnectionRepository,
	campaignCreationRepo repository.CampaignCreationRepository,
	m *metrics.Metrics,
) Launcher {
	return &Service{
		cfg:                        cfg,
		metaService:                metaService,
		connectionRepository:       connectionRepo,
		campaignCreationRepository: campaignCreationRepo,
		metrics:                    m,
		nowFunc:                    time.Now,
	}
}

// resolveToken busca a conexão Meta do usuário e valida o token antes de
// qualquer chamada ao Graph API
func (s *Service) resolveToken(userID, adAccountID string) (string, error) {
	connection, err := s.connectionRepository.GetMetaConnection(userID, adAccountID)
	if err != nil {
		return "", err
	}

	if connection == nil {
		return "", ErrConnectionNotFound
	}

	if !connection.Active {
		return "", ErrConnectionInactive
	}

	if connection.TokenExpired(s.nowFunc()) {
		return "", ErrTokenExpired
	}

	return connection.AccessToken, nil
}

// BulkUpdateStatus pausa ou reativa as entidades selecionadas em paralelo.
// Falhas individuais não interrompem as demais entidades.
func (s *Service) BulkUpdateStatus(ctx context.Context, req *domain.BulkStatusRequest) (*domain.BulkOperationReport, error) {
	if len(req.Entities) == 0 {
		return nil, ErrEmptyEntityList
	}

	accessToken, err := s.resolveToken(req.UserID, req.AdAccountID)
	if err != nil {
		return nil, err
	}

	start := s.nowFunc()

	results := s.dispatchParallel(ctx, req.Entities, func(ctx context.Context, entity domain.BulkEntity) domain.BulkItemResult {
		result := domain.BulkItemResult{
			EntityID:   entity.ID,
			EntityType: entity.Type,
		}

		if err := s.metaService.UpdateStatus(ctx, accessToken, entity.ID, req.Status); err != nil {
			result.Error = err.Error()
			return result
		}

		result.Success = true
		return result
	})

	report := domain.NewBulkReport(results)
	s.recordBulkMetrics("status", report, start)

	logrus.WithFields(logrus.Fields{
		"account_id": req.AdAccountID,
		"status":     req.Status,
		"total":      report.Total,
		"failed":     report.Failed,
	}).Info("launching: bulk status update finished")

	return report, nil
}

// BulkDelete exclui as entidades selecionadas em paralelo. Campanhas excluídas
// com sucesso também são removidas de campaign_creations.
func (s *Service) BulkDelete(ctx context.Context, req *domain.BulkDeleteRequest) (*domain.BulkOperationReport, error) {
	if len(req.Entities) == 0 {
		return nil, ErrEmptyEntityList
	}

	accessToken, err := s.resolveToken(req.UserID, req.AdAccountID)
	if err != nil {
		return nil, err
	}

	start := s.nowFunc()

	results := s.dispatchParallel(ctx, req.Entities, func(ctx context.Context, entity domain.BulkEntity) domain.BulkItemResult {
		result := domain.BulkItemResult{
			EntityID:   entity.ID,
			EntityType: entity.Type,
		}

		if err := s.metaService.DeleteEntity(ctx, accessToken, entity.ID); err != nil {
			result.Error = err.Error()
			return result
		}

		result.Success = true

		if entity.Type == domain.EntityTypeCampaign {
			if err := s.campaignCreationRepository.DeleteByCampaignID(entity.ID); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": entity.ID,
					"error":       err.Error(),
				}).Warn("launching: failed to remove campaign creation record")
			}
		}

		return result
	})

	report := domain.NewBulkReport(results)
	s.recordBulkMetrics("delete", report, start)

	logrus.WithFields(logrus.Fields{
		"account_id": req.AdAccountID,
		"total":      report.Total,
		"failed":     report.Failed,
	}).Info("launching: bulk delete finished")

	return report, nil
}

// BulkScaleBudgets multiplica o orçamento de cada entidade pelo fator
// informado. O cálculo usa aritmética decimal para não acumular erro de
// ponto flutuante em centavos.
func (s *Service) BulkScaleBudgets(ctx context.Context, req *domain.BulkBudgetScaleRequest) (*domain.BulkOperationReport, error) {
	if len(req.Entities) == 0 {
		return nil, ErrEmptyEntityList
	}

	if req.Factor <= 0 {
		return nil, ErrInvalidScaleFactor
	}

	accessToken, err := s.resolveToken(req.UserID, req.AdAccountID)
	if err != nil {
		return nil, err
	}

	start := s.nowFunc()
	factor := decimal.NewFromFloat(req.Factor)

	results := s.dispatchParallel(ctx, req.Entities, func(ctx context.Context, entity domain.BulkEntity) domain.BulkItemResult {
		result := domain.BulkItemResult{
			EntityID:   entity.ID,
			EntityType: entity.Type,
		}

		if !entity.HasBudget() {
			result.Error = "entity has no budget of its own"
			return result
		}

		var dailyBudget, lifetimeBudget *int64

		if entity.DailyBudget != nil {
			scaled := scaleBudget(*entity.DailyBudget, factor)
			if scaled < minBudgetCents {
				result.OldBudget = entity.DailyBudget
				result.Error = "scaled budget below the minimum allowed"
				return result
			}
			dailyBudget = &scaled
			result.OldBudget = entity.DailyBudget
			result.NewBudget = &scaled
		}

		if entity.LifetimeBudget != nil {
			scaled := scaleBudget(*entity.LifetimeBudget, factor)
			if scaled < minBudgetCents {
				result.OldBudget = entity.LifetimeBudget
				result.Error = "scaled budget below the minimum allowed"
				return result
			}
			lifetimeBudget = &scaled
			result.OldBudget = entity.LifetimeBudget
			result.NewBudget = &scaled
		}

		if err := s.metaService.UpdateBudget(ctx, accessToken, entity.ID, dailyBudget, lifetimeBudget); err != nil {
			result.NewBudget = nil
			result.Error = err.Error()
			return result
		}

		result.Success = true
		return result
	})

	report := domain.NewBulkReport(results)
	s.recordBulkMetrics("budget_scale", report, start)

	logrus.WithFields(logrus.Fields{
		"account_id": req.AdAccountID,
		"factor":     req.Factor,
		"total":      report.Total,
		"failed":     report.Failed,
	}).Info("launching: bulk budget scale finished")

	return report, nil
}

// BulkDuplicate duplica as entidades uma a uma. A duplicação é sequencial
// porque o endpoint /copies do Meta tem limite de requisições bem mais
// agressivo que os demais; o client aplica rate limit e retry com backoff.
func (s *Service) BulkDuplicate(ctx context.Context, req *domain.BulkDuplicateRequest) (*domain.BulkOperationReport, error) {
	if len(req.Entities) == 0 {
		return nil, ErrEmptyEntityList
	}

	accessToken, err := s.resolveToken(req.UserID, req.AdAccountID)
	if err != nil {
		return nil, err
	}

	start := s.nowFunc()
	results := make([]domain.BulkItemResult, 0, len(req.Entities))

	for _, entity := range req.Entities {
		result := domain.BulkItemResult{
			EntityID:   entity.ID,
			EntityType: entity.Type,
		}

		if ctx.Err() != nil {
			result.Error = ctx.Err().Error()
			results = append(results, result)
			continue
		}

		copyID, err := s.metaService.Duplicate(ctx, accessToken, entity.ID, req.NameSuffix, entity.Type == domain.EntityTypeCampaign)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Success = true
		result.CopyID = copyID
		results = append(results, result)
	}

	report := domain.NewBulkReport(results)
	s.recordBulkMetrics("duplicate", report, start)

	logrus.WithFields(logrus.Fields{
		"account_id": req.AdAccountID,
		"total":      report.Total,
		"failed":     report.Failed,
	}).Info("launching: bulk duplicate finished")

	return report, nil
}

// dispatchParallel executa a operação para cada entidade com um pool limitado
// de workers, preservando a ordem dos resultados
func (s *Service) dispatchParallel(
	ctx context.Context,
	entities []domain.BulkEntity,
	operation func(ctx context.Context, entity domain.BulkEntity) domain.BulkItemResult,
) []domain.BulkItemResult {
	maxConcurrent := s.cfg.BulkDispatch.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]domain.BulkItemResult, len(entities))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrent)

	for i, entity := range entities {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, e domain.BulkEntity) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = operation(ctx, e)
		}(i, entity)
	}

	wg.Wait()

	return results
}

func (s *Service) recordBulkMetrics(operation string, report *domain.BulkOperationReport, start time.Time) {
	if s.metrics == nil {
		return
	}

	status := "success"
	if report.Failed > 0 {
		status = "partial_failure"
	}

	s.metrics.RecordBulkOperation(operation, status, s.nowFunc().Sub(start))
	s.metrics.RecordBulkItems(operation, "succeeded", report.Succeeded)
	s.metrics.RecordBulkItems(operation, "failed", report.Failed)
}

// scaleBudget multiplica o orçamento em centavos pelo fator, arredondando
// para o centavo mais próximo
func scaleBudget(budgetCents int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(budgetCents).Mul(factor).Round(0).IntPart()
}
