package services

import (
	"strconv"

	"github.com/cardfolio/cardfolio/internal/models"
)

const unknownValue = "Unknown"

// ExtractCardPrices flattens a listing's variations into one observation
// per variation. Listings without variations yield an empty slice, not an
// error: single-item listings simply contribute nothing to matching.
func ExtractCardPrices(listing *models.Listing) []models.PriceObservation {
	if listing == nil || len(listing.ItemVariations) == 0 {
		return []models.PriceObservation{}
	}

	condition := listing.Condition
	if condition == "" {
		condition = unknownValue
	}

	observations := make([]models.PriceObservation, 0, len(listing.ItemVariations))
	for _, variation := range listing.ItemVariations {
		cardName := unknownValue
		if len(variation.Specifications) > 0 && variation.Specifications[0].Name != "" {
			cardName = variation.Specifications[0].Name
		}

		currency := variation.Price.Currency
		if currency == "" {
			currency = "USD"
		}

		observations = append(observations, models.PriceObservation{
			CardName:          cardName,
			Price:             parsePrice(variation.Price.Value),
			Currency:          currency,
			AvailableQuantity: variation.AvailableQuantity,
			// Variations never carry their own condition.
			Condition: condition,
		})
	}

	return observations
}

// parsePrice reads a decimal price string, treating anything missing,
// unparsable, or negative as zero.
func parsePrice(value string) float64 {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
