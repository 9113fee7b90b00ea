package models

// DefaultImage is stored when a shop is created without an image reference.
const DefaultImage = "https://via.placeholder.com/150"

// DayHours holds the opening and closing time for a single day in a loose
// human format, e.g. "7am" or "6:30pm".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklyHours maps lowercase English weekday names to that day's hours.
// A missing key means the shop is closed that day.
type WeeklyHours map[string]DayHours

// CoffeeShop represents a single coffee shop record, containing its location,
// amenities and per-day opening hours.
type CoffeeShop struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Image          string      `json:"image"`
	PhotoReference *string     `json:"photo_reference,omitempty"`
	Accessibility  bool        `json:"accessibility"`
	HasWifi        bool        `json:"has_wifi"`
	Description    string      `json:"description"`
	Machine        string      `json:"machine"`
	WeeklyHours    WeeklyHours `json:"weekly_hours"`
	PourOver       bool        `json:"pour_over"`
	Website        *string     `json:"website,omitempty"`
	Instagram      *string     `json:"instagram,omitempty"`
	Starred        bool        `json:"starred"`
}

// CreateShopParams carries the fields accepted when creating a shop.
// Latitude and longitude are optional; missing coordinates are geocoded from
// the address before the record is persisted.
type CreateShopParams struct {
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Latitude       *float64    `json:"latitude"`
	Longitude      *float64    `json:"longitude"`
	Image          string      `json:"image"`
	PhotoReference *string     `json:"photo_reference"`
	Accessibility  bool        `json:"accessibility"`
	HasWifi        bool        `json:"has_wifi"`
	Description    string      `json:"description"`
	Machine        string      `json:"machine"`
	WeeklyHours    WeeklyHours `json:"weekly_hours"`
	PourOver       bool        `json:"pour_over"`
	Website        *string     `json:"website"`
	Instagram      *string     `json:"instagram"`
	Starred        bool        `json:"starred"`
}

// UpdateShopParams carries a partial update. Every field is tri-state: a key
// absent from the payload leaves the stored value untouched, an explicit null
// clears it, and a value replaces it.
type UpdateShopParams struct {
	Name           Optional[string]      `json:"name"`
	Address        Optional[string]      `json:"address"`
	Latitude       Optional[float64]     `json:"latitude"`
	Longitude      Optional[float64]     `json:"longitude"`
	Image          Optional[string]      `json:"image"`
	PhotoReference Optional[string]      `json:"photo_reference"`
	Accessibility  Optional[bool]        `json:"accessibility"`
	HasWifi        Optional[bool]        `json:"has_wifi"`
	Description    Optional[string]      `json:"description"`
	Machine        Optional[string]      `json:"machine"`
	WeeklyHours    Optional[WeeklyHours] `json:"weekly_hours"`
	PourOver       Optional[bool]        `json:"pour_over"`
	Website        Optional[string]      `json:"website"`
	Instagram      Optional[string]      `json:"instagram"`
	Starred        Optional[bool]        `json:"starred"`
}
