package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
	"github.com/masterphelps/killscale-api/internal/domain"
)

const (
	metaConnectionsTable   = "meta_connections mc"
	googleConnectionsTable = "google_connections gc"
)

type ConnectionRepository interface {
	GetMetaConnection(userID, adAccountID string) (*domain.Connection, error)
	GetConnectionsByUser(userID string) (*domain.ConnectionStatusResponse, error)
	ListActiveMetaConnections() ([]*domain.Connection, error)
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

const metaConnectionColumns = "mc.id, mc.user_id, mc.ad_account_id, mc.ad_account_name, " +
	"mc.access_token, mc.token_expires_at, mc.active, mc.created_at, mc.updated_at"

func (r *connectionRepository) GetMetaConnection(userID, adAccountID string) (*domain.Connection, error) {
	query, args, err := squirrel.
		Select(metaConnectionColumns).
		From(metaConnectionsTable).
		Where(squirrel.Eq{"mc.user_id": userID, "mc.ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	connection, err := scanConnection(row, domain.ProviderMeta)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	return connection, nil
}

func (r *connectionRepository) GetConnectionsByUser(userID string) (*domain.ConnectionStatusResponse, error) {
	response := &domain.ConnectionStatusResponse{}

	metaQuery, metaArgs, err := squirrel.
		Select(metaConnectionColumns).
		From(metaConnectionsTable).
		Where(squirrel.Eq{"mc.user_id": userID}).
		OrderBy("mc.updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metaConn, err := scanConnection(r.conn.QueryRow(metaQuery, metaArgs...), domain.ProviderMeta)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("erro ao escanear conexão meta: %w", err)
	}
	response.Meta = metaConn

	googleQuery, googleArgs, err := squirrel.
		Select("gc.id, gc.user_id, gc.ad_account_id, gc.ad_account_name, gc.access_token, gc.token_expires_at, gc.active, gc.created_at, gc.updated_at").
		From(googleConnectionsTable).
		Where(squirrel.Eq{"gc.user_id": userID}).
		OrderBy("gc.updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	googleConn, err := scanConnection(r.conn.QueryRow(googleQuery, googleArgs...), domain.ProviderGoogle)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("erro ao escanear conexão google: %w", err)
	}
	response.Google = googleConn

	return response, nil
}

// ListActiveMetaConnections retorna as conexões ativas para o sincronizador
func (r *connectionRepository) ListActiveMetaConnections() ([]*domain.Connection, error) {
	query, args, err := squirrel.
		Select(metaConnectionColumns).
		From(metaConnectionsTable).
		Where(squirrel.Eq{"mc.active": true}).
		OrderBy("mc.created_at ASC").
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

	connections := make([]*domain.Connection, 0)
	for rows.Next() {
		connection := &domain.Connection{Provider: domain.ProviderMeta}
		err := rows.Scan(
			&connection.ID,
			&connection.UserID,
			&connection.AdAccountID,
			&connection.AdAccountName,
			&connection.AccessToken,
			&connection.TokenExpiresAt,
			&connection.Active,
			&connection.CreatedAt,
			&connection.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conexões: %w", err)
		}
		connections = append(connections, connection)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func scanConnection(row *sql.Row, provider domain.ConnectionProvider) (*domain.Connection, error) {
	connection := &domain.Connection{Provider: provider}

	err := row.Scan(
		&connection.ID,
		&connection.UserID,
		&connection.AdAccountID,
		&connection.AdAccountName,
		&connection.AccessToken,
		&connection.TokenExpiresAt,
		&connection.Active,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return connection, nil
}
