package domain

// AdsTotals soma as métricas de todas as plataformas do relatório
type AdsTotals struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Budget      int64   `json:"budget"`
	CTR         float64 `json:"ctr"`
}

type AdsPlatformRow struct {
	Platform    string  `json:"platform"`
	Budget      int64   `json:"budget"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         int64   `json:"cpc"`
	Conversions int64   `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

type AdsSummary struct {
	Title     string           `json:"title"`
	Totals    AdsTotals        `json:"totals"`
	Platforms []AdsPlatformRow `json:"platforms"`
}

// CategoryCount é a contagem de itens de uma categoria (plataforma, status, tipo de mídia)
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ContentSummary struct {
	Title      string          `json:"title"`
	Total      int             `json:"total"`
	Platforms  []CategoryCount `json:"platforms"`
	Statuses   []CategoryCount `json:"statuses"`
	MediaTypes []CategoryCount `json:"media_types"`
}

type CafeSummary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ReportStatus struct {
	HasData   bool `json:"has_data"`
	Completed bool `json:"completed"`
}

// DashboardOverview reúne os números exibidos na tela inicial para o filtro atual
type DashboardOverview struct {
	Title            string       `json:"title"`
	CafeName         string       `json:"cafe_name"`
	Filter           ReportFilter `json:"filter"`
	TotalImpressions int64        `json:"total_impressions"`
	TotalClicks      int64        `json:"total_clicks"`
	TotalConversions int64        `json:"total_conversions"`
	TotalContent     int          `json:"total_content"`
	CTR              float64      `json:"ctr"`
	AdsStatus        ReportStatus `json:"ads_status"`
	ContentStatus    ReportStatus `json:"content_status"`
}
