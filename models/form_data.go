package models

// BookingFormData is the full wizard form. It is a superset of every
// service type's fields; the pricing engine only reads the fields the
// active service's config declares, so irrelevant fields may hold stale
// or default values without affecting the computed price.
type BookingFormData struct {
	// Location step.
	PropertyType string `json:"propertyType"`
	Address      string `json:"address"`
	GateCode     string `json:"gateCode,omitempty"`

	// Schedule step.
	PreferredDate     string `json:"preferredDate"` // YYYY-MM-DD
	TimePreference    string `json:"timePreference"`
	RecurringSchedule string `json:"recurringSchedule"`
	Materials         string `json:"materials"`
	Insurance         bool   `json:"insurance"`

	// Service-specific details.
	CleaningType    string   `json:"cleaningType,omitempty"`
	PropertySize    string   `json:"propertySize,omitempty"`
	RoomCount       int      `json:"roomCount,omitempty"`
	GardenSize      string   `json:"gardenSize,omitempty"`
	GardenCondition string   `json:"gardenCondition,omitempty"`
	PoolSize        string   `json:"poolSize,omitempty"`
	PoolCondition   string   `json:"poolCondition,omitempty"`
	PlumbingIssue   string   `json:"plumbingIssue,omitempty"`
	ElectricalIssue string   `json:"electricalIssue,omitempty"`
	Urgency         string   `json:"urgency,omitempty"`
	CuisineType     string   `json:"cuisineType,omitempty"`
	MenuMode        string   `json:"menuMode,omitempty"` // "popular" or "custom"
	SelectedMenu    string   `json:"selectedMenu,omitempty"`
	CustomMenuItems []string `json:"customMenuItems,omitempty"`
	Dietary         []string `json:"dietary,omitempty"`
	EventSize       string   `json:"eventSize,omitempty"`
	StaffType       string   `json:"staffType,omitempty"`
	TreatmentType   string   `json:"treatmentType,omitempty"`
	SessionDuration string   `json:"sessionDuration,omitempty"`
	MovingType      string   `json:"movingType,omitempty"`
	MovingDistance  string   `json:"movingDistance,omitempty"`
	CareType        string   `json:"careType,omitempty"`
	ChildrenCount   string   `json:"childrenCount,omitempty"`
	ChildrenAge     string   `json:"childrenAge,omitempty"`

	// Add-ons and extras.
	SelectedAddOns  []string `json:"selectedAddOns,omitempty"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	TipAmount       float64  `json:"tipAmount,omitempty"`

	// Provider review step.
	ProviderID   string `json:"providerId,omitempty"`
	ProviderName string `json:"providerName,omitempty"`
}

// FormUpdate is a partial patch against BookingFormData. Nil fields are
// left untouched. The flow applies the patch, then runs its side-effect
// rules and recomputes all derived values.
type FormUpdate struct {
	PropertyType      *string   `json:"propertyType,omitempty"`
	Address           *string   `json:"address,omitempty"`
	GateCode          *string   `json:"gateCode,omitempty"`
	PreferredDate     *string   `json:"preferredDate,omitempty"`
	TimePreference    *string   `json:"timePreference,omitempty"`
	RecurringSchedule *string   `json:"recurringSchedule,omitempty"`
	Materials         *string   `json:"materials,omitempty"`
	Insurance         *bool     `json:"insurance,omitempty"`
	CleaningType      *string   `json:"cleaningType,omitempty"`
	PropertySize      *string   `json:"propertySize,omitempty"`
	RoomCount         *int      `json:"roomCount,omitempty"`
	GardenSize        *string   `json:"gardenSize,omitempty"`
	GardenCondition   *string   `json:"gardenCondition,omitempty"`
	PoolSize          *string   `json:"poolSize,omitempty"`
	PoolCondition     *string   `json:"poolCondition,omitempty"`
	PlumbingIssue     *string   `json:"plumbingIssue,omitempty"`
	ElectricalIssue   *string   `json:"electricalIssue,omitempty"`
	Urgency           *string   `json:"urgency,omitempty"`
	CuisineType       *string   `json:"cuisineType,omitempty"`
	MenuMode          *string   `json:"menuMode,omitempty"`
	SelectedMenu      *string   `json:"selectedMenu,omitempty"`
	CustomMenuItems   *[]string `json:"customMenuItems,omitempty"`
	Dietary           *[]string `json:"dietary,omitempty"`
	EventSize         *string   `json:"eventSize,omitempty"`
	StaffType         *string   `json:"staffType,omitempty"`
	TreatmentType     *string   `json:"treatmentType,omitempty"`
	SessionDuration   *string   `json:"sessionDuration,omitempty"`
	MovingType        *string   `json:"movingType,omitempty"`
	MovingDistance    *string   `json:"movingDistance,omitempty"`
	CareType          *string   `json:"careType,omitempty"`
	ChildrenCount     *string   `json:"childrenCount,omitempty"`
	ChildrenAge       *string   `json:"childrenAge,omitempty"`
	SelectedAddOns    *[]string `json:"selectedAddOns,omitempty"`
	SpecialRequests   *string   `json:"specialRequests,omitempty"`
	TipAmount         *float64  `json:"tipAmount,omitempty"`
}

// Recurrence values accepted in RecurringSchedule.
const (
	RecurrenceOneTime  = "one-time"
	RecurrenceWeekly   = "weekly"
	RecurrenceBiWeekly = "bi-weekly"
	RecurrenceMonthly  = "monthly"
)

// Materials values: the discount applies only when the customer brings
// their own materials; "supply" asks the provider to bring them.
const (
	MaterialsOwn      = "own"
	MaterialsProvided = "supply"
)

// EarlyBirdSlot is the only time slot that earns the time-of-day discount.
const EarlyBirdSlot = "06:00"

// TimeASAP is the immediate-dispatch sentinel set for emergency urgency.
const TimeASAP = "asap"

// Urgency tiers shared by plumbing and electrical.
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencySameDay   = "same-day"
	UrgencyNextDay   = "next-day"
	UrgencyStandard  = "standard"
)
