package domain

import (
	"errors"
	"fmt"
)

// MonthCode identifica o mês filtrado no formato de dois dígitos ("01".."12")
type MonthCode string

const DefaultMonth MonthCode = "03"

var ErrInvalidMonth = errors.New("invalid month code")

var monthCodes = []MonthCode{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

var monthLabels = map[MonthCode][2]string{
	"01": {"Jan", "January"},
	"02": {"Feb", "February"},
	"03": {"Mar", "March"},
	"04": {"Apr", "April"},
	"05": {"May", "May"},
	"06": {"Jun", "June"},
	"07": {"Jul", "July"},
	"08": {"Aug", "August"},
	"09": {"Sep", "September"},
	"10": {"Oct", "October"},
	"11": {"Nov", "November"},
	"12": {"Dec", "December"},
}

// Months retorna os 12 códigos em ordem de calendário
func Months() []MonthCode {
	out := make([]MonthCode, len(monthCodes))
	copy(out, monthCodes)
	return out
}

// ParseMonthCode valida um código de mês vindo de fora (query, body, config)
func ParseMonthCode(s string) (MonthCode, error) {
	code := MonthCode(s)
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return code, nil
}

func (m MonthCode) Valid() bool {
	_, ok := monthLabels[m]
	return ok
}

func (m MonthCode) String() string {
	return string(m)
}

// ShortLabel retorna o rótulo exibido no seletor (Jan, Feb, ...)
func (m MonthCode) ShortLabel() string {
	if l, ok := monthLabels[m]; ok {
		return l[0]
	}
	return "Unknown"
}

// Name retorna o nome completo usado nos títulos dos painéis
func (m MonthCode) Name() string {
	if l, ok := monthLabels[m]; ok {
		return l[1]
	}
	return "Unknown"
}

// MonthChange é a notificação enviada aos assinantes do seletor de mês.
// Version cresce a cada escrita; assinantes descartam versões antigas.
type MonthChange struct {
	Code    MonthCode
	Version uint64
}
