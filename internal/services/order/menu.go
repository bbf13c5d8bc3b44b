package order

// RestaurantMenu is an immutable set of orderable item names.
type RestaurantMenu struct {
	available map[string]bool
}

func NewRestaurantMenu(items []string) *RestaurantMenu {
	available := make(map[string]bool, len(items))
	for _, item := range items {
		available[item] = true
	}
	return &RestaurantMenu{available: available}
}

func (m *RestaurantMenu) IsItemAvailable(name string) bool {
	return m.available[name]
}
