package domain

import "fmt"

// ReportFilter é a seleção (café, mês, ano) que delimita quais relatórios são buscados.
// Campos com valor zero não geram predicado. O valor é imutável: quem precisa de
// outro filtro cria um novo.
type ReportFilter struct {
	CafeID string `json:"cafe_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

func NewReportFilter(cafeID string, month, year int) ReportFilter {
	return ReportFilter{CafeID: cafeID, Month: month, Year: year}
}

func (f ReportFilter) WithCafe(cafeID string) ReportFilter {
	f.CafeID = cafeID
	return f
}

func (f ReportFilter) WithPeriod(month, year int) ReportFilter {
	f.Month = month
	f.Year = year
	return f
}

// Predicates retorna os predicados de igualdade do filtro, no formato coluna -> valor
func (f ReportFilter) Predicates() map[string]any {
	predicates := make(map[string]any, 3)
	if f.CafeID != "" {
		predicates["cafe_id"] = f.CafeID
	}
	if f.Month != 0 {
		predicates["month"] = f.Month
	}
	if f.Year != 0 {
		predicates["year"] = f.Year
	}
	return predicates
}

func (f ReportFilter) Validate() error {
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", f.Month)
	}
	if f.Year != 0 && (f.Year < 1000 || f.Year > 9999) {
		return fmt.Errorf("invalid year %d: must have four digits", f.Year)
	}
	return nil
}

func (f ReportFilter) String() string {
	return fmt.Sprintf("cafe=%q month=%d year=%d", f.CafeID, f.Month, f.Year)
}
