package commands

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/log"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insere um café de exemplo com relatórios do mês corrente",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		return conn.RunInTransaction(cmd.Context(), func(tx *sql.Tx) error {
			return seed(cmd.Context(), tx, time.Now())
		})
	},
}

// seed grava os dados de exemplo usando q, que pode ser a conexão ou uma transação
func seed(ctx context.Context, q postgres.Queryer, now time.Time) error {
	month, year := utils.CurrentPeriod(now)

	cafe, err := repository.NewCafeRepository(q).Insert(ctx, &domain.CafeInput{
		Name:        "Kopi Senja",
		Address:     "Jl. Braga No. 12, Bandung",
		Phone:       "+62 22 4201234",
		Email:       "halo@kopisenja.id",
		Description: "Café de exemplo criado pelo comando seed",
		Status:      domain.CafeStatusActive,
	})
	if err != nil {
		return errors.Wrap(err, "inserir café")
	}

	ads := repository.NewAdsReportRepository(q)
	adsInputs := []domain.AdsReportInput{
		{Platform: domain.PlatformMetaAds, Impressions: 20000, Clicks: 400, CTR: 2, CPC: 3750, Conversions: 25, ROAS: 3.2, Budget: 1500000},
		{Platform: domain.PlatformGoogleAds, Impressions: 5000, Clicks: 100, CTR: 2, CPC: 5000, Conversions: 6, ROAS: 1.8, Budget: 500000},
	}
	for i := range adsInputs {
		input := adsInputs[i]
		input.CafeID, input.Month, input.Year = cafe.ID, month, year
		if _, err := ads.Insert(ctx, &input); err != nil {
			return errors.Wrapf(err, "inserir relatório de anúncios %s", input.Platform)
		}
	}

	content := repository.NewContentReportRepository(q)
	contentInputs := []domain.ContentReportInput{
		{Caption: "Menu baru: es kopi gula aren", Platform: "Instagram", Status: domain.ContentStatusPublished, MediaType: domain.MediaTypeImage},
		{Caption: "Behind the bar", Platform: "TikTok", Status: domain.ContentStatusScheduled, MediaType: domain.MediaTypeVideo},
		{Caption: "Promo akhir bulan", Platform: "Instagram", Status: domain.ContentStatusDraft, MediaType: domain.MediaTypeCarousel},
	}
	for i := range contentInputs {
		input := contentInputs[i]
		input.CafeID, input.Month, input.Year = cafe.ID, month, year
		input.PostDate = domain.NewDate(year, time.Month(month), 1+i*7)
		if _, err := content.Insert(ctx, &input); err != nil {
			return errors.Wrapf(err, "inserir relatório de conteúdo %d", i+1)
		}
	}

	log.L.WithFields(log.Fields{
		"id":      cafe.ID,
		"ads":     len(adsInputs),
		"content": len(contentInputs),
	}).Info("seed: dados de exemplo inseridos")

	return nil
}
