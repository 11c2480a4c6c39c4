package reporting

import "github.com/vfg2006/cafe-report-api/internal/domain"

var (
	contentStatuses = []domain.ContentStatus{
		domain.ContentStatusPublished,
		domain.ContentStatusDraft,
		domain.ContentStatusScheduled,
	}
	mediaTypes = []domain.MediaType{
		domain.MediaTypeImage,
		domain.MediaTypeVideo,
		domain.MediaTypeCarousel,
	}
)

// CountBy agrupa os itens por categoria preservando a ordem em que cada uma aparece pela primeira vez
func CountBy[T any](items []T, category func(T) string) []domain.CategoryCount {
	counts := make([]domain.CategoryCount, 0)
	index := make(map[string]int)

	for _, item := range items {
		name := category(item)
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, domain.CategoryCount{Name: name, Count: 1})
	}

	return counts
}

// countFixed conta cada categoria conhecida, incluindo as que têm zero itens
func countFixed[T any, K ~string](items []T, known []K, category func(T) K) []domain.CategoryCount {
	counts := make([]domain.CategoryCount, len(known))
	index := make(map[K]int, len(known))
	for i, k := range known {
		counts[i] = domain.CategoryCount{Name: string(k)}
		index[k] = i
	}

	for _, item := range items {
		k := category(item)
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, domain.CategoryCount{Name: string(k), Count: 1})
	}

	return counts
}

func ContentPlatforms(reports []domain.ContentReport) []domain.CategoryCount {
	return CountBy(reports, func(r domain.ContentReport) string { return r.Platform })
}

func ContentStatuses(reports []domain.ContentReport) []domain.CategoryCount {
	return countFixed(reports, contentStatuses, func(r domain.ContentReport) domain.ContentStatus { return r.Status })
}

func ContentMediaTypes(reports []domain.ContentReport) []domain.CategoryCount {
	return countFixed(reports, mediaTypes, func(r domain.ContentReport) domain.MediaType { return r.MediaType })
}

func ContentSummary(filter domain.ReportFilter, reports []domain.ContentReport) domain.ContentSummary {
	return domain.ContentSummary{
		Title:      domain.PeriodTitle(filter.Month, filter.Year),
		Total:      len(reports),
		Platforms:  ContentPlatforms(reports),
		Statuses:   ContentStatuses(reports),
		MediaTypes: ContentMediaTypes(reports),
	}
}

// ContentStatus: completo quando há publicações e nenhuma está em rascunho
func ContentStatus(reports []domain.ContentReport) domain.ReportStatus {
	status := domain.ReportStatus{HasData: len(reports) > 0}
	if !status.HasData {
		return status
	}

	status.Completed = true
	for _, report := range reports {
		if report.Status == domain.ContentStatusDraft {
			status.Completed = false
			break
		}
	}

	return status
}
