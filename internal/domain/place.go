package domain

import "time"

// Place is a directory entry. Localized name and description live in
// Translations; every boolean attribute flag defaults to false.
type Place struct {
	ID         int64 `json:"id" db:"id"`
	CategoryID int64 `json:"category_id" db:"category_id"`

	Address   *string  `json:"address,omitempty" db:"address"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
	MainImage *string  `json:"main_image,omitempty" db:"main_image"`

	Website  *string `json:"website,omitempty" db:"website"`
	Phone    *string `json:"phone,omitempty" db:"phone"`
	Email    *string `json:"email,omitempty" db:"email"`
	Whatsapp *string `json:"whatsapp,omitempty" db:"whatsapp"`
	MapLink  *string `json:"map_link,omitempty" db:"map_link"`

	Instagram *string `json:"instagram,omitempty" db:"instagram"`
	Twitter   *string `json:"twitter,omitempty" db:"twitter"`
	Facebook  *string `json:"facebook,omitempty" db:"facebook"`
	Pinterest *string `json:"pinterest,omitempty" db:"pinterest"`

	// Expectation flags
	OutsideArea                  bool `json:"outside_area" db:"outside_area"`
	InsideArea                   bool `json:"inside_area" db:"inside_area"`
	Reservation                  bool `json:"reservation" db:"reservation"`
	KidsMenu                     bool `json:"kids_menu" db:"kids_menu"`
	BabySit                      bool `json:"baby_sit" db:"baby_sit"`
	KardPay                      bool `json:"kard_pay" db:"kard_pay"`
	Cash                         bool `json:"cash" db:"cash"`
	FreeParkArea                 bool `json:"free_park_area" db:"free_park_area"`
	Bar                          bool `json:"bar" db:"bar"`
	Coffee                       bool `json:"coffee" db:"coffee"`
	Dessert                      bool `json:"dessert" db:"dessert"`
	Kitchen                      bool `json:"kitchen" db:"kitchen"`
	WheelchairAccessibleEntrance bool `json:"wheelchair_accessible_entrance" db:"wheelchair_accessible_entrance"`
	PetsAllow                    bool `json:"pets_allow" db:"pets_allow"`
	Fish                         bool `json:"fish" db:"fish"`
	MeatAndChicken               bool `json:"meat_and_chicken" db:"meat_and_chicken"`

	// Sorting tag flags
	Popular          bool `json:"popular" db:"popular"`
	HistoricalPlaces bool `json:"historical_places" db:"historical_places"`
	Alcohol          bool `json:"alcohol" db:"alcohol"`
	Beach            bool `json:"beach" db:"beach"`
	CreativePlaces   bool `json:"creative_places" db:"creative_places"`
	Castles          bool `json:"castles" db:"castles"`
	Museum           bool `json:"museum" db:"museum"`
	Parks            bool `json:"parks" db:"parks"`
	Waterfalls       bool `json:"waterfalls" db:"waterfalls"`
	HikingTrails     bool `json:"hiking_trails" db:"hiking_trails"`

	// Region flags
	Kyrenia   bool `json:"kyrenia" db:"kyrenia"`
	Nicosia   bool `json:"nicosia" db:"nicosia"`
	Famagusta bool `json:"famagusta" db:"famagusta"`
	Iskele    bool `json:"iskele" db:"iskele"`
	Guzelyurt bool `json:"guzelyurt" db:"guzelyurt"`
	Karpaz    bool `json:"karpaz" db:"karpaz"`
	Lefke     bool `json:"lefke" db:"lefke"`

	CurrencySupported bool      `json:"currency_supported" db:"currency_supported"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`

	// Count of devices that currently like this place.
	LikeCount int `json:"like_count" db:"like_count"`

	Category     *Category      `json:"-" db:"-"`
	Translations TranslationSet `json:"-" db:"-"`
	Images       []PlaceImage   `json:"-" db:"-"`
	OpenTimes    []OpeningHour  `json:"-" db:"-"`
}

// PlaceImage is an ordered gallery entry. DisplayOrder is a sort key only,
// duplicates are allowed.
type PlaceImage struct {
	PlaceID      int64  `json:"-" db:"place_id"`
	ImageURL     string `json:"image_url" db:"image_url"`
	DisplayOrder int    `json:"order" db:"display_order"`
}

// OpeningHour is one open span for a weekday (0=Monday .. 6=Sunday).
// Open and Close are wall-clock times formatted "HH:MM"; Close may be
// lexicographically smaller than Open, which marks an overnight span.
// A place may have several entries per day; (place, day, open) is unique.
type OpeningHour struct {
	PlaceID   int64  `json:"-" db:"place_id"`
	DayOfWeek int    `json:"-" db:"day_of_week"`
	Open      string `json:"open" db:"open_time"`
	Close     string `json:"close" db:"close_time"`
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the English weekday name for the entry.
func (h OpeningHour) DayName() string {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return ""
	}
	return weekdayNames[h.DayOfWeek]
}

// Contains reports whether the clock time now ("HH:MM") falls inside the
// span. Same-day spans are half-open [open, close); overnight spans cover
// [open, midnight) plus [midnight, close).
func (h OpeningHour) Contains(now string) bool {
	if h.Close < h.Open {
		return now >= h.Open || now < h.Close
	}
	return now >= h.Open && now < h.Close
}
