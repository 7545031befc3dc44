// Package format renders monetary amounts the way each currency's home locale writes them.
package format

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-currency-converter/domain"
)

// nbsp separates symbol and number in locales that space them.
const nbsp = "\u00a0"

// pattern a locale's currency layout
type pattern struct {
	locale  language.Tag
	symbol  string
	suffix  bool // symbol after the number
	spaced  bool // nbsp between symbol and number
	group   string
	decimal string
}

var patterns = map[domain.Currency]pattern{
	domain.BRL: {locale: language.MustParse("pt-BR"), symbol: "R$", spaced: true, group: ".", decimal: ","},
	domain.USD: {locale: language.AmericanEnglish, symbol: "$", group: ",", decimal: "."},
	domain.EUR: {locale: language.MustParse("de-DE"), symbol: "€", suffix: true, spaced: true, group: ".", decimal: ","},
	domain.GBP: {locale: language.BritishEnglish, symbol: "£", group: ",", decimal: "."},
	domain.ARS: {locale: language.MustParse("es-AR"), symbol: "$", spaced: true, group: ".", decimal: ","},
}

// Locale returns the locale used to format code, en-US when code is unmapped.
func Locale(code domain.Currency) language.Tag {
	if p, ok := patterns[code]; ok {
		return p.locale
	}
	return language.AmericanEnglish
}

// Format writes amount in code's currency following its locale's conventions,
// e.g. "R$ 1.234,50" for BRL or "$1,234.50" for USD. An unmapped code is written
// en-US style with its en-US symbol, or the code itself when it is not an ISO code.
func Format(amount float64, code domain.Currency) string {
	p, ok := patterns[code]
	if !ok {
		p = fallback(code)
	}

	number, negative := digits(amount, fractionDigits(code), p)

	sep := ""
	if p.spaced {
		sep = nbsp
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if p.suffix {
		b.WriteString(number + sep + p.symbol)
	} else {
		b.WriteString(p.symbol + sep + number)
	}
	return b.String()
}

// fallback lays out an unmapped code the en-US way. Alphabetic symbols such as
// "CHF" are spaced from the number, sign symbols such as "¥" are not.
func fallback(code domain.Currency) pattern {
	symbol := string(code)
	if unit, err := currency.ParseISO(symbol); err == nil {
		symbol = message.NewPrinter(language.AmericanEnglish).Sprint(currency.Symbol(unit))
	}
	last, _ := utf8.DecodeLastRuneInString(symbol)
	return pattern{
		locale:  language.AmericanEnglish,
		symbol:  symbol,
		spaced:  unicode.IsLetter(last),
		group:   ",",
		decimal: ".",
	}
}

// fractionDigits is the ISO 4217 standard number of decimals, 2 when the code is unknown.
func fractionDigits(code domain.Currency) int {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// digits rounds amount half away from zero and lays out the absolute value with p's separators.
// The sign follows amount, so -0 and negatives rounding to zero keep it.
func digits(amount float64, scale int, p pattern) (string, bool) {
	switch {
	case math.IsNaN(amount):
		return "NaN", false
	case math.IsInf(amount, 0):
		return "∞", amount < 0
	}

	d := decimal.NewFromFloat(amount).Round(int32(scale))
	fixed := d.Abs().StringFixed(int32(scale))

	whole, frac, _ := strings.Cut(fixed, ".")
	number := group(whole, p.group)
	if frac != "" {
		number += p.decimal + frac
	}
	return number, math.Signbit(amount)
}

// group inserts sep between every three digits counted from the right.
func group(whole, sep string) string {
	if len(whole) <= 3 {
		return whole
	}
	var b strings.Builder
	head := len(whole) % 3
	if head > 0 {
		b.WriteString(whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
