package domain

import "fmt"

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName retorna o nome do mês usado nos cabeçalhos dos relatórios (1 = Januari).
// Meses fora do intervalo retornam string vazia.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// PeriodTitle monta o título do período, ex.: "Juni 2024"
func PeriodTitle(month, year int) string {
	name := MonthName(month)
	switch {
	case name == "" && year == 0:
		return ""
	case name == "":
		return fmt.Sprintf("%d", year)
	case year == 0:
		return name
	}
	return fmt.Sprintf("%s %d", name, year)
}
