package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
)

const starredAssetsTable = "starred_assets sa"

// StarredAssetRepository guarda a curadoria do usuário (assets marcados com estrela)
type StarredAssetRepository interface {
	ListStarred(userID, adAccountID string) (map[string]bool, error)
	SetStarred(userID, adAccountID, mediaHash string, starred bool) error
}

type starredAssetRepository struct {
	conn *postgres.Connection
}

func NewStarredAssetRepository(conn *postgres.Connection) StarredAssetRepository {
	return &starredAssetRepository{
		conn: conn,
	}
}

func (r *starredAssetRepository) ListStarred(userID, adAccountID string) (map[string]bool, error) {
	query, args, err := squirrel.
		Select("sa.media_hash").
		From(starredAssetsTable).
		Where(squirrel.Eq{"sa.user_id": userID, "sa.ad_account_id": adAccountID}).
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

	starred := make(map[string]bool)
	for rows.Next() {
		var mediaHash string
		if err := rows.Scan(&mediaHash); err != nil {
			return nil, fmt.Errorf("erro ao escanear media_hash: %w", err)
		}
		starred[mediaHash] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return starred, nil
}

func (r *starredAssetRepository) SetStarred(userID, adAccountID, mediaHash string, starred bool) error {
	var query string
	var args []interface{}
	var err error

	if starred {
		query, args, err = squirrel.StatementBuilder.
			Insert("starred_assets").
			Columns("user_id", "ad_account_id", "media_hash").
			Values(userID, adAccountID, mediaHash).
			Suffix("ON CONFLICT (user_id, ad_account_id, media_hash) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	} else {
		query, args, err = squirrel.
			Delete("starred_assets").
			Where(squirrel.Eq{"user_id": userID, "ad_account_id": adAccountID, "media_hash": mediaHash}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	}
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
