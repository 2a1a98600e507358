package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// MarketConfig describes one supported retail market
type MarketConfig struct {
	Country  string `json:"country"`
	Language string `json:"language"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// marketConfigs maps lowercase country codes to their retail market.
// Plain immutable configuration, initialized once.
var marketConfigs = map[string]MarketConfig{
	"us": {Country: "us", Language: "en", Currency: "USD", Locale: "en-US"},
	"gb": {Country: "gb", Language: "en", Currency: "GBP", Locale: "en-GB"},
	"de": {Country: "de", Language: "de", Currency: "EUR", Locale: "de-DE"},
	"fr": {Country: "fr", Language: "fr", Currency: "EUR", Locale: "fr-FR"},
	"es": {Country: "es", Language: "es", Currency: "EUR", Locale: "es-ES"},
	"it": {Country: "it", Language: "it", Currency: "EUR", Locale: "it-IT"},
	"nl": {Country: "nl", Language: "nl", Currency: "EUR", Locale: "nl-NL"},
	"se": {Country: "se", Language: "sv", Currency: "SEK", Locale: "sv-SE"},
	"no": {Country: "no", Language: "no", Currency: "NOK", Locale: "nb-NO"},
	"dk": {Country: "dk", Language: "da", Currency: "DKK", Locale: "da-DK"},
	"fi": {Country: "fi", Language: "fi", Currency: "EUR", Locale: "fi-FI"},
	"pl": {Country: "pl", Language: "pl", Currency: "PLN", Locale: "pl-PL"},
	"au": {Country: "au", Language: "en", Currency: "AUD", Locale: "en-AU"},
	"ca": {Country: "ca", Language: "en", Currency: "CAD", Locale: "en-CA"},
	"jp": {Country: "jp", Language: "ja", Currency: "JPY", Locale: "ja-JP"},
	"at": {Country: "at", Language: "de", Currency: "EUR", Locale: "de-AT"},
	"ch": {Country: "ch", Language: "de", Currency: "CHF", Locale: "de-CH"},
	"be": {Country: "be", Language: "fr", Currency: "EUR", Locale: "fr-BE"},
	"ie": {Country: "ie", Language: "en", Currency: "EUR", Locale: "en-IE"},
	"pt": {Country: "pt", Language: "pt", Currency: "EUR", Locale: "pt-PT"},
}

// currencySymbols holds display symbols for the currencies above
var currencySymbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"AUD": "$",
	"CAD": "$",
	"JPY": "¥",
	"CHF": "CHF ",
}

// GetMarketConfig returns the market for a country code, falling back to
// the US market for unknown codes
func GetMarketConfig(countryCode string) MarketConfig {
	if config, ok := marketConfigs[strings.ToLower(countryCode)]; ok {
		return config
	}
	return marketConfigs["us"]
}

// FormatPrice renders a price for display. JPY carries no decimal part.
func FormatPrice(price float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	if currency == "JPY" {
		return symbol + groupThousands(strconv.FormatFloat(price, 'f', 0, 64))
	}

	formatted := strconv.FormatFloat(price, 'f', 2, 64)
	if dot := strings.Index(formatted, "."); dot > 0 {
		return symbol + groupThousands(formatted[:dot]) + formatted[dot:]
	}
	return symbol + groupThousands(formatted)
}

// groupThousands inserts comma separators into a plain integer string
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return fmt.Sprintf("%s,%s", s, strings.Join(parts, ","))
}
