//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/config"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

func setupTestDB(t *testing.T) *postgres.Connection {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("cafe_report"),
		tcpostgres.WithUsername("cafe"),
		tcpostgres.WithPassword("cafe"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("falha ao encerrar container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(ctx))
	// a segunda execução não deve falhar
	require.NoError(t, conn.Migrate(ctx))

	return conn
}

func TestPostgresRepositories(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	cafes := repository.NewCafeRepository(conn)
	ads := repository.NewAdsReportRepository(conn)
	content := repository.NewContentReportRepository(conn)

	t.Run("cafes", func(t *testing.T) {
		first, err := cafes.Insert(ctx, &domain.CafeInput{Name: "Kopi Senja", Status: domain.CafeStatusActive})
		require.NoError(t, err)
		assert.Len(t, first.ID, 12)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := cafes.Insert(ctx, &domain.CafeInput{Name: "Warung Kopi", Status: domain.CafeStatusActive})
		require.NoError(t, err)

		listed, err := cafes.Select(ctx, domain.CafeOrder)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, first.ID, listed[0].ID)
		assert.Equal(t, second.ID, listed[1].ID)

		inactive := domain.CafeStatusInactive
		updated, err := cafes.Update(ctx, second.ID, &domain.CafePatch{Status: &inactive})
		require.NoError(t, err)
		assert.Equal(t, domain.CafeStatusInactive, updated.Status)
		assert.Equal(t, "Warung Kopi", updated.Name)
		assert.False(t, updated.UpdatedAt.Before(second.UpdatedAt))

		require.NoError(t, cafes.Delete(ctx, second.ID))
		assert.ErrorIs(t, cafes.Delete(ctx, second.ID), repository.ErrNotFound)

		_, err = cafes.Update(ctx, "missing", &domain.CafePatch{Status: &inactive})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("ads reports", func(t *testing.T) {
		june := domain.NewReportFilter("1", 6, 2024)

		for _, platform := range []string{domain.PlatformMetaAds, domain.PlatformGoogleAds} {
			_, err := ads.Insert(ctx, &domain.AdsReportInput{
				CafeID: "1", Month: 6, Year: 2024, Platform: platform,
				Impressions: 1000, Clicks: 20, Budget: 500000,
			})
			require.NoError(t, err)
		}
		_, err := ads.Insert(ctx, &domain.AdsReportInput{CafeID: "1", Month: 7, Year: 2024, Platform: domain.PlatformMetaAds})
		require.NoError(t, err)

		listed, err := ads.Select(ctx, june, domain.AdsReportOrder)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, domain.PlatformGoogleAds, listed[0].Platform)

		all, err := ads.Select(ctx, domain.ReportFilter{}, domain.AdsReportOrder)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		_, err = ads.Insert(ctx, &domain.AdsReportInput{CafeID: "1", Month: 13, Year: 2024, Platform: domain.PlatformMetaAds})
		assert.Error(t, err)
	})

	t.Run("content reports", func(t *testing.T) {
		url := "https://cdn.example.com/a.jpg"
		for _, day := range []int{3, 20, 11} {
			_, err := content.Insert(ctx, &domain.ContentReportInput{
				CafeID: "1", Month: 6, Year: 2024,
				PostDate:  domain.NewDate(2024, time.June, day),
				Platform:  "Instagram",
				Status:    domain.ContentStatusPublished,
				MediaType: domain.MediaTypeImage,
				MediaURL:  &url,
			})
			require.NoError(t, err)
		}

		listed, err := content.Select(ctx, domain.NewReportFilter("1", 6, 2024), domain.ContentReportOrder)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "2024-06-20", listed[0].PostDate.String())
		assert.Equal(t, "2024-06-03", listed[2].PostDate.String())
		require.NotNil(t, listed[0].MediaURL)

		draft := domain.ContentStatusDraft
		updated, err := content.Update(ctx, listed[0].ID, &domain.ContentReportPatch{Status: &draft})
		require.NoError(t, err)
		assert.Equal(t, domain.ContentStatusDraft, updated.Status)
		require.NotNil(t, updated.MediaURL)

		cleared, err := content.Update(ctx, listed[0].ID, &domain.ContentReportPatch{ClearMediaURL: true})
		require.NoError(t, err)
		assert.Nil(t, cleared.MediaURL)

		require.NoError(t, content.Delete(ctx, listed[0].ID))
	})
}
