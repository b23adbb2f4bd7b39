// README: Static fallback dataset served when the Uber API is unavailable.
package pricing

const carTypeImageURL = "https://d1a3f4spazzrp4.cloudfront.net/car-types/mono/mono-"

// MockProducts returns a fresh copy of the fallback product list.
func MockProducts() []Product {
	return []Product{
		{ProductID: "mock-uberx", DisplayName: "UberX", Description: "Affordable, everyday rides", Capacity: 4, Image: carTypeImageURL + "uberx.png"},
		{ProductID: "mock-uberxl", DisplayName: "UberXL", Description: "Room for groups up to 6", Capacity: 6, Image: carTypeImageURL + "uberxl.png"},
		{ProductID: "mock-comfort", DisplayName: "Comfort", Description: "Newer cars with extra legroom", Capacity: 4, Image: carTypeImageURL + "comfort.png"},
	}
}

// MockPriceEstimates returns a fresh copy of the fallback price list.
func MockPriceEstimates() []PriceEstimate {
	est := func(id, name, estimate string, low, high float64) PriceEstimate {
		return PriceEstimate{
			ProductID:       id,
			DisplayName:     name,
			CurrencyCode:    "USD",
			Estimate:        estimate,
			LowEstimate:     low,
			HighEstimate:    high,
			SurgeMultiplier: 1.0,
			Duration:        1800,
			Distance:        10.5,
		}
	}
	return []PriceEstimate{
		est("mock-uberx", "UberX", "$15-20", 15, 20),
		est("mock-uberxl", "UberXL", "$22-28", 22, 28),
		est("mock-comfort", "Comfort", "$18-24", 18, 24),
	}
}

// MockTimeEstimates returns a fresh copy of the fallback pickup ETA list.
func MockTimeEstimates() []TimeEstimate {
	return []TimeEstimate{
		{ProductID: "mock-uberx", DisplayName: "UberX", Estimate: 300},
		{ProductID: "mock-uberxl", DisplayName: "UberXL", Estimate: 420},
		{ProductID: "mock-comfort", DisplayName: "Comfort", Estimate: 360},
	}
}
