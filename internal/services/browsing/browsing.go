package browsing

import (
	"strings"

	"food-ordering-system/internal/models"
)

// Database is an in-memory, read-only set of restaurant listings owned
// by the session that created it.
type Database struct {
	restaurants []models.RestaurantRecord
}

func NewDatabase(records []models.RestaurantRecord) *Database {
	return &Database{restaurants: records}
}

// SampleDatabase returns the built-in five-restaurant dataset.
func SampleDatabase() *Database {
	return NewDatabase([]models.RestaurantRecord{
		{Name: "Italian Bistro", Cuisine: "Italian", Location: "Downtown", Rating: 4.5, PriceRange: "$$", Delivery: true},
		{Name: "Sushi House", Cuisine: "Japanese", Location: "Midtown", Rating: 4.8, PriceRange: "$$$", Delivery: false},
		{Name: "Burger King", Cuisine: "Fast Food", Location: "Uptown", Rating: 4.0, PriceRange: "$", Delivery: true},
		{Name: "Taco Town", Cuisine: "Mexican", Location: "Downtown", Rating: 4.2, PriceRange: "$", Delivery: true},
		{Name: "Pizza Palace", Cuisine: "Italian", Location: "Uptown", Rating: 3.9, PriceRange: "$$", Delivery: true},
	})
}

// ListRestaurants returns a copy of all records.
func (d *Database) ListRestaurants() []models.RestaurantRecord {
	records := make([]models.RestaurantRecord, len(d.restaurants))
	copy(records, d.restaurants)
	return records
}

// Filters narrows a restaurant search. Empty strings mean "no filter";
// MinRating is a pointer so that no-filter and "rating at least zero"
// stay distinguishable.
type Filters struct {
	Cuisine   string
	Location  string
	MinRating *float64
}

// Browsing runs linear filters over a restaurant database.
type Browsing struct {
	db *Database
}

func NewBrowsing(db *Database) *Browsing {
	return &Browsing{db: db}
}

// SearchByCuisine matches cuisine case-insensitively and exactly.
func (b *Browsing) SearchByCuisine(cuisine string) []models.RestaurantRecord {
	return b.filter(func(r models.RestaurantRecord) bool {
		return strings.EqualFold(r.Cuisine, cuisine)
	})
}

// SearchByLocation matches location case-insensitively and exactly.
func (b *Browsing) SearchByLocation(location string) []models.RestaurantRecord {
	return b.filter(func(r models.RestaurantRecord) bool {
		return strings.EqualFold(r.Location, location)
	})
}

// SearchByRating returns restaurants rated at or above minRating.
func (b *Browsing) SearchByRating(minRating float64) []models.RestaurantRecord {
	return b.filter(func(r models.RestaurantRecord) bool {
		return r.Rating >= minRating
	})
}

// SearchByFilters applies the supplied filters conjunctively.
func (b *Browsing) SearchByFilters(f Filters) []models.RestaurantRecord {
	return b.filter(func(r models.RestaurantRecord) bool {
		if f.Cuisine != "" && !strings.EqualFold(r.Cuisine, f.Cuisine) {
			return false
		}
		if f.Location != "" && !strings.EqualFold(r.Location, f.Location) {
			return false
		}
		if f.MinRating != nil && r.Rating < *f.MinRating {
			return false
		}
		return true
	})
}

func (b *Browsing) filter(keep func(models.RestaurantRecord) bool) []models.RestaurantRecord {
	var results []models.RestaurantRecord
	for _, r := range b.db.ListRestaurants() {
		if keep(r) {
			results = append(results, r)
		}
	}
	return results
}

// Search is the caller-facing entry point over Browsing.
type Search struct {
	browsing *Browsing
}

func NewSearch(b *Browsing) *Search {
	return &Search{browsing: b}
}

func (s *Search) SearchRestaurants(cuisine, location string, minRating *float64) []models.RestaurantRecord {
	return s.browsing.SearchByFilters(Filters{
		Cuisine:   cuisine,
		Location:  location,
		MinRating: minRating,
	})
}
