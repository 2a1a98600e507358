package domain

// Price holds the display price of a product
type Price struct {
	CurrentPrice float64 `json:"currentPrice"`
	Currency     string  `json:"currency"`
	IsRange      bool    `json:"isRange"`
}

// Product represents a validated catalog product shown to the player.
// A constructed Product always has CurrentPrice > 0 and a non-empty
// MainImageURL; items failing that are dropped during mapping.
type Product struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	TypeName           string  `json:"typeName"`
	MainImageURL       string  `json:"mainImageUrl"`
	MainImageAlt       string  `json:"mainImageAlt,omitempty"`
	Price              Price   `json:"price"`
	RatingValue        float64 `json:"ratingValue,omitempty"`
	RatingCount        int     `json:"ratingCount,omitempty"`
	ContextualImageURL string  `json:"contextualImageUrl,omitempty"`
	PipURL             string  `json:"pipUrl"`
}

// SearchItemPrice is the retailer's price encoding: whole number and
// decimal fraction arrive as separate strings, with optional currency
// prefix/suffix decoration
type SearchItemPrice struct {
	Prefix            string `json:"prefix,omitempty"`
	WholeNumber       string `json:"wholeNumber"`
	Separator         string `json:"separator,omitempty"`
	Decimals          string `json:"decimals,omitempty"`
	Suffix            string `json:"suffix,omitempty"`
	IsRegularCurrency bool   `json:"isRegularCurrency,omitempty"`
}

// SearchItemSalesPrice wraps the current price with currency metadata
type SearchItemSalesPrice struct {
	Current  *SearchItemPrice `json:"current"`
	Currency string           `json:"currency"`
	IsRange  bool             `json:"isRange,omitempty"`
}

// SearchItemProduct is a single raw product record from the retailer
// search API. Every field is untrusted and may be absent.
type SearchItemProduct struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	TypeName           string                `json:"typeName"`
	MainImageURL       string                `json:"mainImageUrl"`
	MainImageAlt       string                `json:"mainImageAlt,omitempty"`
	SalesPrice         *SearchItemSalesPrice `json:"salesPrice"`
	RatingValue        float64               `json:"ratingValue,omitempty"`
	RatingCount        int                   `json:"ratingCount,omitempty"`
	ContextualImageURL string                `json:"contextualImageUrl,omitempty"`
	PipURL             string                `json:"pipUrl"`
}

// SearchItem is one entry of the retailer's items list
type SearchItem struct {
	Product *SearchItemProduct `json:"product"`
}

// SearchResponse mirrors the nested shape of the retailer search API:
// searchResultPage.products.main.items[].product
type SearchResponse struct {
	SearchResultPage struct {
		Products struct {
			Main struct {
				Items []SearchItem `json:"items"`
			} `json:"main"`
		} `json:"products"`
	} `json:"searchResultPage"`
}

// Items returns the raw item list, tolerating any missing level of nesting
func (r *SearchResponse) Items() []SearchItem {
	if r == nil {
		return nil
	}
	return r.SearchResultPage.Products.Main.Items
}
