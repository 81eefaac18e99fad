package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
	"github.com/masterphelps/killscale-api/internal/domain"
)

const aiInsightsTable = "ai_insights ai"

// AIInsightRepository é o cache persistente dos insights de IA por conta,
// com validade controlada pelo caso de uso (24 horas)
type AIInsightRepository interface {
	GetByAccount(adAccountID string) (*domain.CreativeInsights, error)
	SaveOrUpdate(insights *domain.CreativeInsights) error
	DeleteByAccount(adAccountID string) error
}

type aiInsightRepository struct {
	conn *postgres.Connection
}

func NewAIInsightRepository(conn *postgres.Connection) AIInsightRepository {
	return &aiInsightRepository{
		conn: conn,
	}
}

func (r *aiInsightRepository) GetByAccount(adAccountID string) (*domain.CreativeInsights, error) {
	query, args, err := squirrel.
		Select("ai.ad_account_id, ai.payload, ai.generated_at").
		From(aiInsightsTable).
		Where(squirrel.Eq{"ai.ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		accountID   string
		payload     []byte
		generatedAt time.Time
	)

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&accountID, &payload, &generatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ai_insights: %w", err)
	}

	insights := &domain.CreativeInsights{}
	if err := json.Unmarshal(payload, insights); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de ai_insights: %w", err)
	}

	insights.AdAccountID = accountID
	insights.GeneratedAt = generatedAt

	return insights, nil
}

func (r *aiInsightRepository) SaveOrUpdate(insights *domain.CreativeInsights) error {
	payload, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("erro ao serializar insights para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ai_insights").
		Columns("ad_account_id", "payload", "generated_at").
		Values(insights.AdAccountID, payload, insights.GeneratedAt).
		Suffix(`
			ON CONFLICT (ad_account_id) DO UPDATE SET
				payload = EXCLUDED.payload,
				generated_at = EXCLUDED.generated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *aiInsightRepository) DeleteByAccount(adAccountID string) error {
	query, args, err := squirrel.
		Delete("ai_insights").
		Where(squirrel.Eq{"ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
