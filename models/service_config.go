package models

// ServiceConfig is the static, per-service-type definition the pricing
// engine reads. One instance exists per canonical service id; they are
// built once at startup and never mutated. Option tables that do not
// apply to a service type are simply left nil, which the pricing engine
// treats as "no effect" (multiplier 1, price unchanged).
type ServiceConfig struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Icon      string  `json:"icon"`
	BasePrice float64 `json:"basePrice"`
	Steps     int     `json:"steps"`
	Category  string  `json:"category"`

	// Generic adjustment applied to almost every service.
	PropertyMultipliers map[string]float64 `json:"propertyMultipliers,omitempty"`

	// Cleaning.
	CleaningTypes map[string]float64 `json:"cleaningTypes,omitempty"` // fixed prices
	PropertySizes map[string]float64 `json:"propertySizes,omitempty"` // multipliers

	// Garden care.
	GardenSizes      map[string]float64 `json:"gardenSizes,omitempty"`
	GardenConditions map[string]float64 `json:"gardenConditions,omitempty"`

	// Pool cleaning.
	PoolSizes      map[string]float64 `json:"poolSizes,omitempty"`
	PoolConditions map[string]float64 `json:"poolConditions,omitempty"`

	// Plumbing and electrical issue catalogs.
	PlumbingIssues   map[string]IssueOption `json:"plumbingIssues,omitempty"`
	ElectricalIssues map[string]float64     `json:"electricalIssues,omitempty"`
	UrgencyLevels    map[string]float64     `json:"urgencyLevels,omitempty"` // multipliers

	// Chef / catering.
	Cuisines            map[string]CuisineOption `json:"cuisines,omitempty"`
	DietaryRequirements map[string]string        `json:"dietaryRequirements,omitempty"`
	EventSizes          map[string]float64       `json:"eventSizes,omitempty"`
	CustomItemPrice     float64                  `json:"customItemPrice,omitempty"`

	// Event staffing.
	StaffTypes map[string]float64 `json:"staffTypes,omitempty"`

	// Beauty & wellness.
	TreatmentTypes   map[string]float64 `json:"treatmentTypes,omitempty"` // fixed prices
	SessionDurations map[string]float64 `json:"sessionDurations,omitempty"`

	// Moving.
	MovingTypes     map[string]float64 `json:"movingTypes,omitempty"` // fixed prices
	MovingDistances map[string]float64 `json:"movingDistances,omitempty"`

	// Au pair.
	CareTypes      map[string]float64 `json:"careTypes,omitempty"` // fixed prices
	ChildrenCounts map[string]float64 `json:"childrenCounts,omitempty"`
	ChildrenAges   map[string]float64 `json:"childrenAges,omitempty"`

	AddOns []AddOn `json:"addOns,omitempty"`

	// RequiredFields lists, per wizard step, the form fields that must be
	// non-empty before the flow may advance past that step.
	RequiredFields map[int][]string `json:"-"`
}

// IssueOption is a fixed-price entry in an issue catalog (plumbing).
type IssueOption struct {
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// CuisineOption holds the per-cuisine multiplier plus its named popular
// menus. A popular menu carries a fixed price that replaces the base.
type CuisineOption struct {
	Multiplier   float64       `json:"multiplier"`
	PopularMenus []PopularMenu `json:"popularMenus,omitempty"`
}

// PopularMenu is a pre-composed catering menu with a fixed price.
type PopularMenu struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Items []string `json:"items"`
}

// AddOn is an optional extra bookable alongside the base service. Price
// may be negative (group discounts). Keywords drive the suggestion
// engine's free-text matching.
type AddOn struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// ServiceMetadata is the compact shape returned by the catalogue listing.
type ServiceMetadata struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Steps    int    `json:"steps"`
}
