// README: Ride product and estimate records as returned by the Uber API.
package pricing

type Product struct {
	ProductID   string `json:"product_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image"`
}

type PriceEstimate struct {
	ProductID            string  `json:"product_id"`
	DisplayName          string  `json:"display_name"`
	LocalizedDisplayName string  `json:"localized_display_name,omitempty"`
	CurrencyCode         string  `json:"currency_code"`
	Estimate             string  `json:"estimate"`
	LowEstimate          float64 `json:"low_estimate"`
	HighEstimate         float64 `json:"high_estimate"`
	SurgeMultiplier      float64 `json:"surge_multiplier"`
	Duration             int     `json:"duration"`
	Distance             float64 `json:"distance"`
}

type TimeEstimate struct {
	ProductID            string `json:"product_id"`
	DisplayName          string `json:"display_name"`
	LocalizedDisplayName string `json:"localized_display_name,omitempty"`
	Estimate             int    `json:"estimate"`
}

// Source tells whether data came from the live API or the static mock set.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)
