package domain

import "time"

// Plataformas de anúncio oferecidas no formulário do relatório
const (
	PlatformMetaAds     = "Meta Ads"
	PlatformGoogleAds   = "Google Ads"
	PlatformTikTokAds   = "TikTok Ads"
	PlatformYouTubeAds  = "YouTube Ads"
	PlatformLinkedInAds = "LinkedIn Ads"
)

// AdsReport guarda as métricas mensais de uma plataforma de anúncio para um café.
// Valores monetários (CPC, Budget) estão em rupias inteiras.
type AdsReport struct {
	ID          string    `json:"id"`
	CafeID      string    `json:"cafe_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Platform    string    `json:"platform"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
	CPC         int64     `json:"cpc"`
	Conversions int64     `json:"conversions"`
	ROAS        float64   `json:"roas"`
	Budget      int64     `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdsReportInput struct {
	CafeID      string  `json:"cafe_id" validate:"required"`
	Month       int     `json:"month" validate:"required,min=1,max=12"`
	Year        int     `json:"year" validate:"required,min=1000,max=9999"`
	Platform    string  `json:"platform" validate:"required,max=64"`
	Impressions int64   `json:"impressions" validate:"min=0"`
	Clicks      int64   `json:"clicks" validate:"min=0"`
	CTR         float64 `json:"ctr" validate:"min=0"`
	CPC         int64   `json:"cpc" validate:"min=0"`
	Conversions int64   `json:"conversions" validate:"min=0"`
	ROAS        float64 `json:"roas" validate:"min=0"`
	Budget      int64   `json:"budget" validate:"min=0"`
}

type AdsReportPatch struct {
	CafeID      *string  `json:"cafe_id,omitempty" validate:"omitempty,min=1"`
	Month       *int     `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	Platform    *string  `json:"platform,omitempty" validate:"omitempty,min=1,max=64"`
	Impressions *int64   `json:"impressions,omitempty" validate:"omitempty,min=0"`
	Clicks      *int64   `json:"clicks,omitempty" validate:"omitempty,min=0"`
	CTR         *float64 `json:"ctr,omitempty" validate:"omitempty,min=0"`
	CPC         *int64   `json:"cpc,omitempty" validate:"omitempty,min=0"`
	Conversions *int64   `json:"conversions,omitempty" validate:"omitempty,min=0"`
	ROAS        *float64 `json:"roas,omitempty" validate:"omitempty,min=0"`
	Budget      *int64   `json:"budget,omitempty" validate:"omitempty,min=0"`
}

func (in *AdsReportInput) Materialize(id string, now time.Time) *AdsReport {
	return &AdsReport{
		ID:          id,
		CafeID:      in.CafeID,
		Month:       in.Month,
		Year:        in.Year,
		Platform:    in.Platform,
		Impressions: in.Impressions,
		Clicks:      in.Clicks,
		CTR:         in.CTR,
		CPC:         in.CPC,
		Conversions: in.Conversions,
		ROAS:        in.ROAS,
		Budget:      in.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *AdsReportPatch) Apply(r *AdsReport) {
	if p.CafeID != nil {
		r.CafeID = *p.CafeID
	}
	if p.Month != nil {
		r.Month = *p.Month
	}
	if p.Year != nil {
		r.Year = *p.Year
	}
	if p.Platform != nil {
		r.Platform = *p.Platform
	}
	if p.Impressions != nil {
		r.Impressions = *p.Impressions
	}
	if p.Clicks != nil {
		r.Clicks = *p.Clicks
	}
	if p.CTR != nil {
		r.CTR = *p.CTR
	}
	if p.CPC != nil {
		r.CPC = *p.CPC
	}
	if p.Conversions != nil {
		r.Conversions = *p.Conversions
	}
	if p.ROAS != nil {
		r.ROAS = *p.ROAS
	}
	if p.Budget != nil {
		r.Budget = *p.Budget
	}
}
