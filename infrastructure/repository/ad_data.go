package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
	"github.com/masterphelps/killscale-api/internal/domain"
)

const adDataTable = "ad_data ad"

type AdDataRepository interface {
	SaveOrUpdate(entry *domain.AdDataEntry) error
	GetByAccountAndDateRange(adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataEntry, error)
	GetByMediaHash(adAccountID, mediaHash string) ([]*domain.AdDataEntry, error)
	ListAdIDsMissingMedia(adAccountID string) ([]string, error)
	UpdateMediaForAd(adID, mediaHash string, mediaType domain.MediaType, thumbnailURL *string) error
	DeleteOlderThan(days int) (int64, error)
}

type adDataRepository struct {
	conn *postgres.Connection
}

func NewAdDataRepository(conn *postgres.Connection) AdDataRepository {
	return &adDataRepository{
		conn: conn,
	}
}

const adDataColumns = "ad.id, ad.user_id, ad.ad_account_id, ad.campaign_id, ad.adset_id, ad.ad_id, " +
	"ad.media_hash, ad.media_type, ad.media_name, ad.thumbnail_url, ad.storage_url, " +
	"ad.width, ad.height, ad.file_size, ad.date, ad.spend, ad.revenue, ad.impressions, ad.clicks, " +
	"ad.video_views, ad.thruplays, ad.watch_time_seconds, ad.video_3s_views, ad.video_completions, " +
	"ad.hook_score, ad.hold_score, ad.click_score, ad.convert_score, ad.fatigue_score, " +
	"ad.created_at, ad.updated_at"

func (r *adDataRepository) SaveOrUpdate(entry *domain.AdDataEntry) error {
	query := squirrel.StatementBuilder.
		Insert("ad_data").
		Columns(
			"user_id", "ad_account_id", "campaign_id", "adset_id", "ad_id",
			"media_hash", "media_type", "media_name", "thumbnail_url", "storage_url",
			"width", "height", "file_size", "date", "spend", "revenue", "impressions", "clicks",
			"video_views", "thruplays", "watch_time_seconds", "video_3s_views", "video_completions",
		).
		Values(
			entry.UserID,
			entry.AdAccountID,
			entry.CampaignID,
			entry.AdSetID,
			entry.AdID,
			entry.MediaHash,
			entry.MediaType,
			entry.MediaName,
			entry.ThumbnailURL,
			entry.StorageURL,
			entry.Width,
			entry.Height,
			entry.FileSize,
			entry.Date.Format("2006-01-02"),
			entry.Spend,
			entry.Revenue,
			entry.Impressions,
			entry.Clicks,
			entry.VideoViews,
			entry.ThruPlays,
			entry.WatchTime,
			entry.Video3sViews,
			entry.VideoCompletions,
		).
		Suffix(`
			ON CONFLICT (ad_id, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				video_views = EXCLUDED.video_views,
				thruplays = EXCLUDED.thruplays,
				watch_time_seconds = EXCLUDED.watch_time_seconds,
				video_3s_views = EXCLUDED.video_3s_views,
				video_completions = EXCLUDED.video_completions,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adDataRepository) GetByAccountAndDateRange(adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataEntry, error) {
	query, args, err := squirrel.
		Select(adDataColumns).
		From(adDataTable).
		Where(squirrel.Eq{"ad.ad_account_id": adAccountID}).
		Where(squirrel.GtOrEq{"ad.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ad.date": endDate.Format("2006-01-02")}).
		OrderBy("ad.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args...)
}

func (r *adDataRepository) GetByMediaHash(adAccountID, mediaHash string) ([]*domain.AdDataEntry, error) {
	query, args, err := squirrel.
		Select(adDataColumns).
		From(adDataTable).
		Where(squirrel.Eq{"ad.ad_account_id": adAccountID, "ad.media_hash": mediaHash}).
		OrderBy("ad.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args...)
}

// ListAdIDsMissingMedia retorna anúncios sem media hash, para enriquecimento
// posterior pelo sincronizador
func (r *adDataRepository) ListAdIDsMissingMedia(adAccountID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ad.ad_id").
		From(adDataTable).
		Where(squirrel.Eq{"ad.ad_account_id": adAccountID}).
		Where(squirrel.Or{squirrel.Eq{"ad.media_hash": ""}, squirrel.Eq{"ad.media_hash": nil}}).
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

	adIDs := make([]string, 0)
	for rows.Next() {
		var adID string
		if err := rows.Scan(&adID); err != nil {
			return nil, fmt.Errorf("erro ao escanear ad_id: %w", err)
		}
		adIDs = append(adIDs, adID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adIDs, nil
}

func (r *adDataRepository) UpdateMediaForAd(adID, mediaHash string, mediaType domain.MediaType, thumbnailURL *string) error {
	builder := squirrel.StatementBuilder.
		Update("ad_data").
		Set("media_hash", mediaHash).
		Set("media_type", mediaType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"ad_id": adID}).
		PlaceholderFormat(squirrel.Dollar)

	if thumbnailURL != nil {
		builder = builder.Set("thumbnail_url", *thumbnailURL)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("ad_data").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *adDataRepository) queryEntries(query string, args ...interface{}) ([]*domain.AdDataEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AdDataEntry, 0)
	for rows.Next() {
		entry := &domain.AdDataEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.AdAccountID,
			&entry.CampaignID,
			&entry.AdSetID,
			&entry.AdID,
			&entry.MediaHash,
			&entry.MediaType,
			&entry.MediaName,
			&entry.ThumbnailURL,
			&entry.StorageURL,
			&entry.Width,
			&entry.Height,
			&entry.FileSize,
			&entry.Date,
			&entry.Spend,
			&entry.Revenue,
			&entry.Impressions,
			&entry.Clicks,
			&entry.VideoViews,
			&entry.ThruPlays,
			&entry.WatchTime,
			&entry.Video3sViews,
			&entry.VideoCompletions,
			&entry.HookScore,
			&entry.HoldScore,
			&entry.ClickScore,
			&entry.ConvertScore,
			&entry.FatigueScore,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad_data: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
