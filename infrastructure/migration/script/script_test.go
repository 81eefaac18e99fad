package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ddlFor(t *testing.T, name string) string {
	t.Helper()

	for _, stmt := range statements {
		if stmt.name == name {
			return stmt.ddl
		}
	}

	t.Fatalf("tabela %s não encontrada nas migrações", name)
	return ""
}

// As colunas lidas e escritas pelos repositórios precisam existir no DDL,
// senão toda query contra a tabela falha em tempo de execução
func TestCampaignCreationsColumns(t *testing.T) {
	ddl := ddlFor(t, "campaign_creations")

	for _, column := range []string{
		"id",
		"user_id",
		"campaign_id",
		"ad_account_id",
		"name",
		"launched_at",
		"created_at",
	} {
		assert.Contains(t, ddl, column)
	}

	assert.Contains(t, ddl, "campaign_id TEXT NOT NULL UNIQUE")
}

func TestAdDataColumns(t *testing.T) {
	ddl := ddlFor(t, "ad_data")

	for _, column := range []string{
		"media_hash",
		"media_type",
		"thumbnail_url",
		"watch_time_seconds",
		"video_3s_views",
		"video_completions",
		"hook_score",
		"hold_score",
		"click_score",
		"convert_score",
		"fatigue_score",
	} {
		assert.Contains(t, ddl, column)
	}

	assert.Contains(t, ddl, "UNIQUE (ad_id, date)")
}

func TestConnectionTables(t *testing.T) {
	for _, table := range []string{"meta_connections", "google_connections"} {
		ddl := ddlFor(t, table)

		require.Contains(t, ddl, "token_expires_at")
		require.Contains(t, ddl, "UNIQUE (user_id, ad_account_id)")
	}
}
