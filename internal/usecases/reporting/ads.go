// Package reporting calcula os números exibidos no painel a partir dos snapshots dos hooks
package reporting

import (
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

func AdsTotals(reports []domain.AdsReport) domain.AdsTotals {
	totals := domain.AdsTotals{}

	for _, report := range reports {
		totals.Impressions += report.Impressions
		totals.Clicks += report.Clicks
		totals.Conversions += report.Conversions
		totals.Budget += report.Budget
	}

	totals.CTR = utils.Percentage(totals.Clicks, totals.Impressions)

	return totals
}

// AdsPlatforms devolve uma linha por relatório, na ordem da coleção
func AdsPlatforms(reports []domain.AdsReport) []domain.AdsPlatformRow {
	rows := make([]domain.AdsPlatformRow, 0, len(reports))

	for _, report := range reports {
		rows = append(rows, domain.AdsPlatformRow{
			Platform:    report.Platform,
			Budget:      report.Budget,
			Impressions: report.Impressions,
			Clicks:      report.Clicks,
			CTR:         report.CTR,
			CPC:         report.CPC,
			Conversions: report.Conversions,
			ROAS:        report.ROAS,
		})
	}

	return rows
}

func AdsSummary(filter domain.ReportFilter, reports []domain.AdsReport) domain.AdsSummary {
	return domain.AdsSummary{
		Title:     domain.PeriodTitle(filter.Month, filter.Year),
		Totals:    AdsTotals(reports),
		Platforms: AdsPlatforms(reports),
	}
}

// AdsStatus: o relatório de anúncios está completo assim que tem alguma plataforma
func AdsStatus(reports []domain.AdsReport) domain.ReportStatus {
	hasData := len(reports) > 0
	return domain.ReportStatus{HasData: hasData, Completed: hasData}
}
