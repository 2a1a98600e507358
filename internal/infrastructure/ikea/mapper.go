package ikea

import (
	"strconv"
	"strings"

	"github.com/priceguesser/backend/internal/domain"
)

// MapToProduct converts one raw search item to a domain Product. Returns
// nil for anything unusable: missing product record, unparsable price,
// non-positive price, or missing main image.
func MapToProduct(item domain.SearchItem) *domain.Product {
	raw := item.Product
	if raw == nil {
		return nil
	}

	price := parsePrice(raw.SalesPrice)
	if price <= 0 || raw.MainImageURL == "" {
		return nil
	}

	currency := "USD"
	isRange := false
	if raw.SalesPrice != nil {
		if raw.SalesPrice.Currency != "" {
			currency = raw.SalesPrice.Currency
		}
		isRange = raw.SalesPrice.IsRange
	}

	return &domain.Product{
		ID:           raw.ID,
		Name:         raw.Name,
		TypeName:     raw.TypeName,
		MainImageURL: raw.MainImageURL,
		MainImageAlt: raw.MainImageAlt,
		Price: domain.Price{
			CurrentPrice: price,
			Currency:     currency,
			IsRange:      isRange,
		},
		RatingValue:        raw.RatingValue,
		RatingCount:        raw.RatingCount,
		ContextualImageURL: raw.ContextualImageURL,
		PipURL:             raw.PipURL,
	}
}

// parsePrice combines the retailer's split price encoding into a decimal.
// The whole-number field may carry grouping characters ("1,234"); the
// decimals field defaults to "00" when absent.
func parsePrice(salesPrice *domain.SearchItemSalesPrice) float64 {
	if salesPrice == nil || salesPrice.Current == nil || salesPrice.Current.WholeNumber == "" {
		return 0
	}

	whole := stripNonDigits(salesPrice.Current.WholeNumber)
	if whole == "" {
		return 0
	}

	decimals := salesPrice.Current.Decimals
	if decimals == "" {
		decimals = "00"
	}

	value, err := strconv.ParseFloat(whole+"."+decimals, 64)
	if err != nil {
		return 0
	}
	return value
}

// stripNonDigits removes everything but 0-9 from a string
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
