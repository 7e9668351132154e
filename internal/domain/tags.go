package domain

import "strings"

// TagField binds a client-facing tag key to the Place boolean flag and the
// database column backing it. The same ordered tables feed both the filter
// predicate builder and the display-label resolver, so enumeration order is
// guaranteed to stay consistent between the two.
type TagField struct {
	Key    string
	Column string
	Value  func(*Place) bool
}

// ExpectationFields is the fixed ordered expectation table.
var ExpectationFields = []TagField{
	{"outsideArea", "outside_area", func(p *Place) bool { return p.OutsideArea }},
	{"insideArea", "inside_area", func(p *Place) bool { return p.InsideArea }},
	{"kardPay", "kard_pay", func(p *Place) bool { return p.KardPay }},
	{"kidsMenu", "kids_menu", func(p *Place) bool { return p.KidsMenu }},
	{"babySit", "baby_sit", func(p *Place) bool { return p.BabySit }},
	{"freeParkArea", "free_park_area", func(p *Place) bool { return p.FreeParkArea }},
	{"WheelchairAccessibleEntrance", "wheelchair_accessible_entrance", func(p *Place) bool { return p.WheelchairAccessibleEntrance }},
	{"petsAllow", "pets_allow", func(p *Place) bool { return p.PetsAllow }},
	{"reservation", "reservation", func(p *Place) bool { return p.Reservation }},
	{"cash", "cash", func(p *Place) bool { return p.Cash }},
	{"bar", "bar", func(p *Place) bool { return p.Bar }},
	{"coffee", "coffee", func(p *Place) bool { return p.Coffee }},
	{"alcohol", "alcohol", func(p *Place) bool { return p.Alcohol }},
	{"dessert", "dessert", func(p *Place) bool { return p.Dessert }},
	{"kitchen", "kitchen", func(p *Place) bool { return p.Kitchen }},
	{"fish", "fish", func(p *Place) bool { return p.Fish }},
	{"meatAndChicken", "meat_and_chicken", func(p *Place) bool { return p.MeatAndChicken }},
}

// RegionFields is the fixed ordered region table.
var RegionFields = []TagField{
	{"kyrenia", "kyrenia", func(p *Place) bool { return p.Kyrenia }},
	{"nicosia", "nicosia", func(p *Place) bool { return p.Nicosia }},
	{"famagusta", "famagusta", func(p *Place) bool { return p.Famagusta }},
	{"iskele", "iskele", func(p *Place) bool { return p.Iskele }},
	{"guzelyurt", "guzelyurt", func(p *Place) bool { return p.Guzelyurt }},
	{"karpaz", "karpaz", func(p *Place) bool { return p.Karpaz }},
	{"lefke", "lefke", func(p *Place) bool { return p.Lefke }},
}

// SortingTagFields is the fixed ordered sorting-tag table: the general and
// amenity tags followed by the region tags.
var SortingTagFields = append([]TagField{
	{"popular", "popular", func(p *Place) bool { return p.Popular }},
	{"historicalPlaces", "historical_places", func(p *Place) bool { return p.HistoricalPlaces }},
	{"alcohol", "alcohol", func(p *Place) bool { return p.Alcohol }},
	{"beach", "beach", func(p *Place) bool { return p.Beach }},
	{"coffee", "coffee", func(p *Place) bool { return p.Coffee }},
	{"creativePlaces", "creative_places", func(p *Place) bool { return p.CreativePlaces }},
	{"castles", "castles", func(p *Place) bool { return p.Castles }},
	{"museum", "museum", func(p *Place) bool { return p.Museum }},
	{"parks", "parks", func(p *Place) bool { return p.Parks }},
	{"waterfalls", "waterfalls", func(p *Place) bool { return p.Waterfalls }},
	{"hikingTrails", "hiking_trails", func(p *Place) bool { return p.HikingTrails }},
}, RegionFields...)

// SplitKeys splits a comma-separated key list, trimming whitespace and
// dropping empty items.
func SplitKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

// ColumnsForKeys maps tag keys through the given table to database columns.
// Unknown keys are silently ignored; duplicates collapse to one column.
// An empty result means no filtering, never an empty result set.
func ColumnsForKeys(table []TagField, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	byKey := make(map[string]string, len(table))
	for _, f := range table {
		byKey[f.Key] = f.Column
	}
	seen := make(map[string]struct{}, len(keys))
	columns := make([]string, 0, len(keys))
	for _, k := range keys {
		col, ok := byKey[k]
		if !ok {
			continue
		}
		if _, dup := seen[col]; dup {
			continue
		}
		seen[col] = struct{}{}
		columns = append(columns, col)
	}
	return columns
}
