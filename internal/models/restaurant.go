package models

// RestaurantRecord is a static, read-only restaurant listing.
type RestaurantRecord struct {
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Location   string  `json:"location"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"price_range"`
	Delivery   bool    `json:"delivery"`
}
