package access

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	msgTrialDaysLeft = "You are on the free trial: %d days left."
	msgTrialEndsSoon = "Your trial ends in %d days. Upgrade to Pro to keep planning."
	msgTrialEnded    = "Your trial has ended. Upgrade to Pro to keep planning."
	msgFreeUsage     = "You have used %d of %d free content items."
	msgFreeNearLimit = "You are close to the limit: %d of %d free content items used. Upgrade to Pro for unlimited content."
	msgFreeUnmetered = "You are on the free plan."
)

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	pt := language.BrazilianPortuguese
	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.English, msgTrialDaysLeft, plural.Selectf(1, "%d",
		"=1", "You are on the free trial: 1 day left.",
		"other", "You are on the free trial: %[1]d days left."))
	set(language.English, msgTrialEndsSoon, plural.Selectf(1, "%d",
		"=0", "Your trial ends today. Upgrade to Pro to keep planning.",
		"=1", "Your trial ends tomorrow. Upgrade to Pro to keep planning.",
		"other", "Your trial ends in %[1]d days. Upgrade to Pro to keep planning."))

	set(pt, msgTrialDaysLeft, plural.Selectf(1, "%d",
		"=1", "Você está no período de teste: falta 1 dia.",
		"other", "Você está no período de teste: faltam %[1]d dias."))
	set(pt, msgTrialEndsSoon, plural.Selectf(1, "%d",
		"=0", "Seu teste termina hoje. Assine o Pro para continuar planejando.",
		"=1", "Seu teste termina amanhã. Assine o Pro para continuar planejando.",
		"other", "Seu teste termina em %[1]d dias. Assine o Pro para continuar planejando."))
	set(pt, msgTrialEnded, catalog.String("Seu período de teste terminou. Assine o Pro para continuar planejando."))
	set(pt, msgFreeUsage, catalog.String("Você usou %d de %d conteúdos do plano gratuito."))
	set(pt, msgFreeNearLimit, catalog.String("Você está perto do limite: %d de %d conteúdos gratuitos usados. Assine o Pro para conteúdos ilimitados."))
	set(pt, msgFreeUnmetered, catalog.String("Você está no plano gratuito."))
	return b
}

func printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
