package reporting

import (
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

func CafeSummary(cafes []domain.Cafe) domain.CafeSummary {
	summary := domain.CafeSummary{Total: len(cafes)}

	for _, cafe := range cafes {
		switch cafe.Status {
		case domain.CafeStatusActive:
			summary.Active++
		case domain.CafeStatusInactive:
			summary.Inactive++
		}
	}

	return summary
}

// CafeName procura o nome do café selecionado; id desconhecido resulta em ""
func CafeName(cafes []domain.Cafe, id string) string {
	for _, cafe := range cafes {
		if cafe.ID == id {
			return cafe.Name
		}
	}
	return ""
}

func Overview(
	filter domain.ReportFilter,
	cafes []domain.Cafe,
	ads []domain.AdsReport,
	content []domain.ContentReport,
) domain.DashboardOverview {
	totals := AdsTotals(ads)

	title := domain.PeriodTitle(filter.Month, filter.Year)
	if title != "" {
		title = "Laporan " + title
	}

	return domain.DashboardOverview{
		Title:            title,
		CafeName:         CafeName(cafes, filter.CafeID),
		Filter:           filter,
		TotalImpressions: totals.Impressions,
		TotalClicks:      totals.Clicks,
		TotalConversions: totals.Conversions,
		TotalContent:     len(content),
		CTR:              utils.Percentage(totals.Clicks, totals.Impressions),
		AdsStatus:        AdsStatus(ads),
		ContentStatus:    ContentStatus(content),
	}
}
