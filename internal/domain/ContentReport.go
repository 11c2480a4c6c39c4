package domain

import "time"

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "Draft"
	ContentStatusPublished ContentStatus = "Published"
	ContentStatusScheduled ContentStatus = "Scheduled"
)

type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeCarousel MediaType = "carousel"
)

// ContentReport representa uma publicação em rede social dentro do relatório mensal de conteúdo
type ContentReport struct {
	ID        string        `json:"id"`
	CafeID    string        `json:"cafe_id"`
	Month     int           `json:"month"`
	Year      int           `json:"year"`
	PostDate  Date          `json:"post_date"`
	Caption   string        `json:"caption"`
	Platform  string        `json:"platform"`
	Status    ContentStatus `json:"status"`
	MediaType MediaType     `json:"media_type"`
	MediaURL  *string       `json:"media_url"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ContentReportInput struct {
	CafeID    string        `json:"cafe_id" validate:"required"`
	Month     int           `json:"month" validate:"required,min=1,max=12"`
	Year      int           `json:"year" validate:"required,min=1000,max=9999"`
	PostDate  Date          `json:"post_date" validate:"required"`
	Caption   string        `json:"caption" validate:"max=2200"`
	Platform  string        `json:"platform" validate:"required,max=64"`
	Status    ContentStatus `json:"status" validate:"required,oneof=Draft Published Scheduled"`
	MediaType MediaType     `json:"media_type" validate:"required,oneof=image video carousel"`
	MediaURL  *string       `json:"media_url,omitempty" validate:"omitempty,max=2048"`
}

type ContentReportPatch struct {
	CafeID    *string        `json:"cafe_id,omitempty" validate:"omitempty,min=1"`
	Month     *int           `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year      *int           `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	PostDate  *Date          `json:"post_date,omitempty"`
	Caption   *string        `json:"caption,omitempty" validate:"omitempty,max=2200"`
	Platform  *string        `json:"platform,omitempty" validate:"omitempty,min=1,max=64"`
	Status    *ContentStatus `json:"status,omitempty" validate:"omitempty,oneof=Draft Published Scheduled"`
	MediaType *MediaType     `json:"media_type,omitempty" validate:"omitempty,oneof=image video carousel"`
	MediaURL  *string        `json:"media_url,omitempty" validate:"omitempty,max=2048"`

	// ClearMediaURL remove a mídia do post. media_url nulo e ausente decodificam igual
	ClearMediaURL bool `json:"clear_media_url,omitempty" validate:"excluded_with=MediaURL"`
}

func (in *ContentReportInput) Materialize(id string, now time.Time) *ContentReport {
	return &ContentReport{
		ID:        id,
		CafeID:    in.CafeID,
		Month:     in.Month,
		Year:      in.Year,
		PostDate:  in.PostDate,
		Caption:   in.Caption,
		Platform:  in.Platform,
		Status:    in.Status,
		MediaType: in.MediaType,
		MediaURL:  in.MediaURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *ContentReportPatch) Apply(r *ContentReport) {
	if p.CafeID != nil {
		r.CafeID = *p.CafeID
	}
	if p.Month != nil {
		r.Month = *p.Month
	}
	if p.Year != nil {
		r.Year = *p.Year
	}
	if p.PostDate != nil {
		r.PostDate = *p.PostDate
	}
	if p.Caption != nil {
		r.Caption = *p.Caption
	}
	if p.Platform != nil {
		r.Platform = *p.Platform
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.MediaType != nil {
		r.MediaType = *p.MediaType
	}
	if p.MediaURL != nil {
		url := *p.MediaURL
		r.MediaURL = &url
	}
	if p.ClearMediaURL {
		r.MediaURL = nil
	}
}
