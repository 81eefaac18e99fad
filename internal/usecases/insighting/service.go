package insighting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/integrator/openai"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/internal/usecases/studio"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

// Quantos assets entram no prompt, em ordem de gasto
const maxAssetsInPrompt = 20

// Janela de dados considerada na geração dos insights
const insightLookbackDays = 30

const systemPrompt = `You are a senior creative strategist for paid social advertising.
You analyze aggregated performance data for ad creatives and return concise, actionable insights.
Respond only with a JSON object in the shape:
{"summary": string, "stage_insights": [{"stage": "hook"|"hold"|"click"|"convert", "insight": string}], "biggest_win": string, "biggest_opportunity": string}`

// Insighter gera e serve os insights de IA sobre os criativos de uma conta
type Insighter interface {
	GetCreativeInsights(ctx context.Context, req *domain.CreativeInsightsRequest) (*domain.CreativeInsights, error)
}

type Service struct {
	cfg                 *config.Config
	librarian           studio.Librarian
	openaiClient        openai.Client
	aiInsightRepository repository.AIInsightRepository
	metrics             *metrics.Metrics

	nowFunc func() time.Time
}

func NewService(
	cfg *config.Config,
	librarian studio.Librarian,
	openaiClient openai.Client,
	aiInsightRepo repository.AIInsightRepository,
	m *metrics.Metrics,
) Insighter {
	return &Service{
		cfg:                 cfg,
		librarian:           librarian,
		openaiClient:        openaiClient,
		aiInsightRepository: aiInsightRepo,
		metrics:             m,
		nowFunc:             time.Now,
	}
}

// GetCreativeInsights devolve os insights do cache quando ainda válidos
// (24 horas); caso contrário agrega os assets da conta, consulta o LLM e
// persiste o resultado
func (s *Service) GetCreativeInsights(ctx context.Context, req *domain.CreativeInsightsRequest) (*domain.CreativeInsights, error) {
	if req.AdAccountID == "" {
		return nil, ErrAccountIDRequired
	}

	now := s.nowFunc()

	if !req.Refresh {
		cached, err := s.aiInsightRepository.GetByAccount(req.AdAccountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": req.AdAccountID,
				"error":      err.Error(),
			}).Warn("insighting: failed to read insight cache")
		}

		if cached.Valid(now) {
			if s.metrics != nil {
				s.metrics.RecordAIInsight("cache")
			}
			return cached, nil
		}
	}

	if !s.openaiClient.IsConfigured() {
		return nil, ErrLLMUnavailable
	}

	startDate := now.AddDate(0, 0, -insightLookbackDays)

	assets, err := s.librarian.ListAssets(req.UserID, req.AdAccountID, startDate, now)
	if err != nil {
		return nil, err
	}

	var totalSpend float64
	for _, asset := range assets {
		totalSpend += asset.Spend
	}

	if totalSpend < domain.MinScoredSpend {
		return nil, ErrInsufficientData
	}

	userPrompt := buildPrompt(assets)

	raw, err := s.openaiClient.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	insights, err := parseInsights(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.AdAccountID,
			"error":      err.Error(),
		}).Error("insighting: invalid response from llm")
		return nil, err
	}

	insights.AdAccountID = req.AdAccountID
	insights.GeneratedAt = now

	if err := s.aiInsightRepository.SaveOrUpdate(insights); err != nil {
		// Falha ao persistir não invalida o resultado já gerado
		logrus.WithFields(logrus.Fields{
			"account_id": req.AdAccountID,
			"error":      err.Error(),
		}).Warn("insighting: failed to persist insight cache")
	}

	if s.metrics != nil {
		s.metrics.RecordAIInsight("generated")
	}

	return insights, nil
}

// buildPrompt resume os assets em linhas compactas para o LLM, limitado aos
// maiores gastos para não estourar a janela de contexto
func buildPrompt(assets []*domain.StudioAsset) string {
	var b strings.Builder

	b.WriteString("Creative performance for the last 30 days, one creative per line:\n")

	count := 0
	for _, asset := range assets {
		if count >= maxAssetsInPrompt {
			break
		}

		b.WriteString(fmt.Sprintf(
			"- %s (%s): spend $%.2f, revenue $%.2f, roas %.2f, ctr %.2f%%, ads %d",
			asset.Name, asset.MediaType, asset.Spend, asset.Revenue, asset.ROAS, asset.CTR, asset.AdCount,
		))

		if asset.Scores.Hook != nil {
			b.WriteString(fmt.Sprintf(", hook %.0f", *asset.Scores.Hook))
		}
		if asset.Scores.Hold != nil {
			b.WriteString(fmt.Sprintf(", hold %.0f", *asset.Scores.Hold))
		}
		if asset.Scores.Click != nil {
			b.WriteString(fmt.Sprintf(", click %.0f", *asset.Scores.Click))
		}
		if asset.Scores.Convert != nil {
			b.WriteString(fmt.Sprintf(", convert %.0f", *asset.Scores.Convert))
		}
		if asset.FatigueScore != nil {
			b.WriteString(fmt.Sprintf(", fatigue %.0f (%s)", *asset.FatigueScore, asset.FatigueStatus))
		}

		b.WriteString("\n")
		count++
	}

	return b.String()
}

func parseInsights(raw string) (*domain.CreativeInsights, error) {
	// Alguns modelos embrulham o JSON em cerca de código mesmo com
	// response_format definido
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	insights := &domain.CreativeInsights{}
	if err := json.Unmarshal([]byte(raw), insights); err != nil {
		return nil, ErrLLMResponse
	}

	if insights.Summary == "" {
		return nil, ErrLLMResponse
	}

	return insights, nil
}
