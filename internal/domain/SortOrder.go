package domain

// SortOrder descreve a ordenação pedida ao gateway
type SortOrder struct {
	Column    string
	Ascending bool
}

var (
	CafeOrder          = SortOrder{Column: "created_at", Ascending: true}
	AdsReportOrder     = SortOrder{Column: "created_at", Ascending: false}
	ContentReportOrder = SortOrder{Column: "post_date", Ascending: false}
)

func (o SortOrder) Direction() string {
	if o.Ascending {
		return "ASC"
	}
	return "DESC"
}
