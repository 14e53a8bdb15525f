package payment

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"boothplan/internal/domain"
)

// Summary is the display-ready view of a ledger entry.
type Summary struct {
	Status       domain.PaymentStatus
	Total        float64
	Received     float64
	Pending      float64
	TotalText    string
	ReceivedText string
	PendingText  string
	HasRecord    bool
}

// Summarize renders p with amounts formatted as BRL for locale.
func Summarize(p *domain.EventPayment, locale language.Tag) Summary {
	s := Summary{Status: p.Status(), Pending: p.PendingAmount(), HasRecord: p != nil}
	if p != nil {
		s.Total = p.TotalValue
		s.Received = p.ReceivedValue
	}
	s.TotalText = FormatBRL(locale, s.Total)
	s.ReceivedText = FormatBRL(locale, s.Received)
	s.PendingText = FormatBRL(locale, s.Pending)
	return s
}

// Summary renders the loaded record.
func (r *Reconciler) Summary(locale language.Tag) Summary {
	return Summarize(r.Payment(), locale)
}

// FormatBRL formats amount in reais using the locale's symbol and separators.
func FormatBRL(locale language.Tag, amount float64) string {
	p := message.NewPrinter(locale)
	return p.Sprint(currency.Symbol(currency.BRL.Amount(amount)))
}
