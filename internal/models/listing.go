package models

// DataSource says whether a listing client result came from the live
// marketplace API or from the synthetic catalog. It is deliberately not
// serialized; the wire-level equivalent is the MockData flag.
type DataSource string

const (
	DataSourceLive DataSource = "live"
	DataSourceMock DataSource = "mock"
)

// Price mirrors the eBay Browse API money shape: a decimal string plus a
// currency code.
type Price struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Seller struct {
	Username           string `json:"username"`
	FeedbackPercentage string `json:"feedbackPercentage"`
}

type Image struct {
	ImageURL string `json:"imageUrl"`
}

type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Variation is one priced sub-item within a listing, e.g. a single named
// card inside a "pick your card" lot.
type Variation struct {
	Specifications    []Specification `json:"specifications"`
	Price             Price           `json:"price"`
	AvailableQuantity int             `json:"availableQuantity"`
}

// Listing is the detail view of a marketplace item. Variations carry their
// own prices; condition lives only on the parent listing.
type Listing struct {
	ItemID         string      `json:"itemId"`
	Title          string      `json:"title"`
	Price          Price       `json:"price"`
	Condition      string      `json:"condition"`
	Seller         *Seller     `json:"seller,omitempty"`
	ItemVariations []Variation `json:"itemVariations,omitempty"`
	ItemWebURL     string      `json:"itemWebUrl,omitempty"`
	Image          *Image      `json:"image,omitempty"`
	MockData       bool        `json:"mockData,omitempty"`
	Source         DataSource  `json:"-"`
}

// ListingSummary is one row of a search result.
type ListingSummary struct {
	ItemID          string  `json:"itemId"`
	Title           string  `json:"title"`
	Price           Price   `json:"price"`
	Condition       string  `json:"condition,omitempty"`
	ItemWebURL      string  `json:"itemWebUrl,omitempty"`
	ThumbnailImages []Image `json:"thumbnailImages,omitempty"`
	Seller          *Seller `json:"seller,omitempty"`
	ItemHref        string  `json:"itemHref,omitempty"`
}

type SearchResult struct {
	Total    int              `json:"total"`
	Items    []ListingSummary `json:"items"`
	Href     string           `json:"href,omitempty"`
	MockData bool             `json:"mockData,omitempty"`
	Source   DataSource       `json:"-"`
}

// PriceObservation is one flattened (card, price) data point pulled out of
// a listing variation. Observations are ephemeral; they exist only for the
// duration of one analysis run and are never persisted.
type PriceObservation struct {
	CardName          string  `json:"cardName"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	AvailableQuantity int     `json:"availableQuantity"`
	Condition         string  `json:"condition"`
}

// ListingPrices is the per-listing shape handed to the UI layer: the
// listing identity plus its flattened observations.
type ListingPrices struct {
	ItemID     string             `json:"itemId"`
	Title      string             `json:"title"`
	CardPrices []PriceObservation `json:"cardPrices"`
	MockData   bool               `json:"mockData"`
}
