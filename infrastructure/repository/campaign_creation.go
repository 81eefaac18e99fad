package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/pkg/utils"
)

const campaignCreationsTable = "campaign_creations cc"

type CampaignCreationRepository interface {
	ListByUserAndAccount(userID, adAccountID string) ([]*domain.CampaignCreation, error)
	Save(creation *domain.CampaignCreation) error
	DeleteByCampaignID(campaignID string) error
}

type campaignCreationRepository struct {
	conn *postgres.Connection
}

func NewCampaignCreationRepository(conn *postgres.Connection) CampaignCreationRepository {
	return &campaignCreationRepository{
		conn: conn,
	}
}

// ListByUserAndAccount retorna as campanhas criadas pelo Studio para a junção
// com a lista vinda do Meta (casadas por campaign_id)
func (r *campaignCreationRepository) ListByUserAndAccount(userID, adAccountID string) ([]*domain.CampaignCreation, error) {
	query, args, err := squirrel.
		Select("cc.id, cc.user_id, cc.campaign_id, cc.ad_account_id, cc.name, cc.launched_at, cc.created_at").
		From(campaignCreationsTable).
		Where(squirrel.Eq{"cc.user_id": userID, "cc.ad_account_id": adAccountID}).
		OrderBy("cc.launched_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	creations := make([]*domain.CampaignCreation, 0)
	for rows.Next() {
		creation := &domain.CampaignCreation{}
		err := rows.Scan(
			&creation.ID,
			&creation.UserID,
			&creation.CampaignID,
			&creation.AdAccountID,
			&creation.Name,
			&creation.LaunchedAt,
			&creation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campaign_creations: %w", err)
		}
		creations = append(creations, creation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creations, nil
}

func (r *campaignCreationRepository) Save(creation *domain.CampaignCreation) error {
	if creation.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador: %w", err)
		}
		creation.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_creations").
		Columns("id", "user_id", "campaign_id", "ad_account_id", "name", "launched_at").
		Values(
			creation.ID,
			creation.UserID,
			creation.CampaignID,
			creation.AdAccountID,
			creation.Name,
			creation.LaunchedAt,
		).
		Suffix("ON CONFLICT (campaign_id) DO NOTHING").
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

// DeleteByCampaignID remove o registro quando a campanha é excluída no Meta
func (r *campaignCreationRepository) DeleteByCampaignID(campaignID string) error {
	query, args, err := squirrel.
		Delete("campaign_creations").
		Where(squirrel.Eq{"campaign_id": campaignID}).
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
