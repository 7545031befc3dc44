package ui

import "go-currency-converter/domain"

// Label what the page shows next to a currency
type Label struct {
	Name string
	Icon string
}

var labels = map[domain.Currency]Label{
	domain.BRL: {Name: "Real", Icon: "square (2).png"},
	domain.USD: {Name: "Dólar Americano", Icon: "usa (1).png"},
	domain.EUR: {Name: "Euro", Icon: "euro (1).png"},
	domain.GBP: {Name: "Libra", Icon: "libra.png"},
	domain.ARS: {Name: "$AR Peso Argentino", Icon: "money-bag.png"},
}

// Describe returns the label of c.
func Describe(c domain.Currency) (Label, bool) {
	l, ok := labels[c]
	return l, ok
}

// describeOr returns the label of c, or the label of fallback when c is unknown.
func describeOr(c domain.Currency, fallback domain.Currency) Label {
	if l, ok := labels[c]; ok {
		return l
	}
	return labels[fallback]
}

// SoundFile is the audio cue played when a conversion is requested.
const SoundFile = "conversor_moeda.mp3"
