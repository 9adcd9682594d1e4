package catalog

import "nestly/models"

// Service ids in canonical form. Raw selection strings from clients go
// through Resolve before touching this table.
const (
	ServiceCleaning     = "cleaning"
	ServiceGardenCare   = "garden-care"
	ServicePoolCleaning = "pool-cleaning"
	ServicePlumbing     = "plumbing"
	ServiceElectrical   = "electrical"
	ServiceChefCatering = "chef-catering"
	ServiceEventStaff   = "event-staff"
	ServiceBeauty       = "beauty-wellness"
	ServiceMoving       = "moving"
	ServiceAuPair       = "au-pair"
	ServiceBabysitting  = "babysitting"
	ServicePetCare      = "pet-care"
	ServiceLaundry      = "laundry"
	ServiceHandyman     = "handyman"
)

// serviceAliases maps every raw selection string the clients are known to
// send onto its canonical id. The canonical ids map to themselves so that
// Resolve is a total function over known ids.
var serviceAliases = map[string]string{
	ServiceCleaning:     ServiceCleaning,
	"house-cleaning":    ServiceCleaning,
	"home-cleaning":     ServiceCleaning,
	"deep-cleaning":     ServiceCleaning,
	ServiceGardenCare:   ServiceGardenCare,
	"gardening":         ServiceGardenCare,
	"garden":            ServiceGardenCare,
	"lawn-care":         ServiceGardenCare,
	ServicePoolCleaning: ServicePoolCleaning,
	"pool":              ServicePoolCleaning,
	"pool-care":         ServicePoolCleaning,
	"pool-maintenance":  ServicePoolCleaning,
	ServicePlumbing:     ServicePlumbing,
	"plumber":           ServicePlumbing,
	ServiceElectrical:   ServiceElectrical,
	"electrician":       ServiceElectrical,
	"electrical-repair": ServiceElectrical,
	ServiceChefCatering: ServiceChefCatering,
	"catering":          ServiceChefCatering,
	"chef":              ServiceChefCatering,
	"private-chef":      ServiceChefCatering,
	ServiceEventStaff:   ServiceEventStaff,
	"event-staffing":    ServiceEventStaff,
	"staffing":          ServiceEventStaff,
	ServiceBeauty:       ServiceBeauty,
	"beauty":            ServiceBeauty,
	"wellness":          ServiceBeauty,
	ServiceMoving:       ServiceMoving,
	"movers":            ServiceMoving,
	"house-moving":      ServiceMoving,
	"removals":          ServiceMoving,
	ServiceAuPair:       ServiceAuPair,
	"aupair":            ServiceAuPair,
	"au-pair-care":      ServiceAuPair,
	ServiceBabysitting:  ServiceBabysitting,
	"babysitter":        ServiceBabysitting,
	ServicePetCare:      ServicePetCare,
	"pet-sitting":       ServicePetCare,
	ServiceLaundry:      ServiceLaundry,
	"laundry-service":   ServiceLaundry,
	ServiceHandyman:     ServiceHandyman,
	"handy-man":         ServiceHandyman,
	"odd-jobs":          ServiceHandyman,
}

// propertyMultipliers is shared by every service that prices against the
// kind of property being serviced.
var propertyMultipliers = map[string]float64{
	"apartment": 1.0,
	"townhouse": 1.1,
	"house":     1.2,
	"office":    1.3,
	"villa":     1.5,
}

var serviceConfigs = map[string]models.ServiceConfig{
	ServiceCleaning: {
		ID:        ServiceCleaning,
		Title:     "Home Cleaning",
		Icon:      "broom",
		BasePrice: 280,
		Steps:     5,
		Category:  "Domestic Services",
		CleaningTypes: map[string]float64{
			"basic":             280,
			"deep":              450,
			"move-in-out":       520,
			"post-construction": 680,
			"office":            350,
		},
		PropertySizes: map[string]float64{
			"small":  1.0,
			"medium": 1.3,
			"large":  1.6,
			"xlarge": 2.0,
		},
		AddOns: []models.AddOn{
			{ID: "inside-fridge", Name: "Inside Fridge", Price: 45, Keywords: []string{"fridge", "refrigerator"}},
			{ID: "inside-oven", Name: "Inside Oven", Price: 40, Keywords: []string{"oven", "grease"}},
			{ID: "interior-windows", Name: "Interior Windows", Price: 55, Keywords: []string{"window", "glass"}},
			{ID: "laundry-run", Name: "Laundry & Folding", Price: 35, Keywords: []string{"laundry", "wash", "fold"}},
			{ID: "balcony", Name: "Balcony Clean", Price: 30, Keywords: []string{"balcony", "terrace"}},
			{ID: "eco-products", Name: "Eco-Friendly Products", Price: 25, Description: "Chemical-free supplies", Keywords: []string{"eco", "green", "chemical", "allerg"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"cleaningType", "propertySize"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceGardenCare: {
		ID:        ServiceGardenCare,
		Title:     "Garden Care",
		Icon:      "leaf",
		BasePrice: 160,
		Steps:     4,
		Category:  "Outdoor Services",
		PropertyMultipliers: propertyMultipliers,
		GardenSizes: map[string]float64{
			"small":  1.0,
			"medium": 1.4,
			"large":  1.8,
			"estate": 2.5,
		},
		GardenConditions: map[string]float64{
			"well-maintained": 1.0,
			"overgrown":       1.5,
			"neglected":       2.0,
		},
		AddOns: []models.AddOn{
			{ID: "hedge-trimming", Name: "Hedge Trimming", Price: 65, Keywords: []string{"hedge", "bush", "shrub"}},
			{ID: "lawn-fertilizing", Name: "Lawn Fertilizing", Price: 45, Keywords: []string{"fertiliz", "lawn", "grass"}},
			{ID: "leaf-removal", Name: "Leaf Removal", Price: 40, Keywords: []string{"leaf", "leaves", "autumn"}},
			{ID: "irrigation-check", Name: "Irrigation Check", Price: 55, Keywords: []string{"irrigation", "sprinkler", "water"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"gardenSize", "gardenCondition"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServicePoolCleaning: {
		ID:        ServicePoolCleaning,
		Title:     "Pool Cleaning",
		Icon:      "water",
		BasePrice: 120,
		Steps:     4,
		Category:  "Outdoor Services",
		PropertyMultipliers: propertyMultipliers,
		PoolSizes: map[string]float64{
			"small":  1.0,
			"medium": 1.3,
			"large":  1.7,
		},
		PoolConditions: map[string]float64{
			"clean": 1.0,
			"dirty": 1.4,
			"green": 1.9,
		},
		AddOns: []models.AddOn{
			{ID: "filter-deep-clean", Name: "Filter Deep Clean", Price: 60, Keywords: []string{"filter", "pump"}},
			{ID: "algae-treatment", Name: "Algae Treatment", Price: 85, Keywords: []string{"algae", "green", "cloudy"}},
			{ID: "tile-scrub", Name: "Tile Scrub", Price: 50, Keywords: []string{"tile", "calcium", "scale"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"poolSize", "poolCondition"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServicePlumbing: {
		ID:        ServicePlumbing,
		Title:     "Plumbing",
		Icon:      "construct",
		BasePrice: 150,
		Steps:     4,
		Category:  "Repairs & Trades",
		PlumbingIssues: map[string]models.IssueOption{
			"leaky-faucet":      {Price: 120, Description: "Dripping or leaking tap"},
			"clogged-drain":     {Price: 180, Description: "Blocked sink, shower or floor drain"},
			"running-toilet":    {Price: 150, Description: "Toilet running or not flushing"},
			"low-pressure":      {Price: 160, Description: "Weak water flow"},
			"pipe-installation": {Price: 380, Description: "New pipe runs or replacement"},
			"water-heater":      {Price: 420, Description: "No hot water or heater fault"},
			"burst-pipe":        {Price: 850, Description: "Burst or badly leaking pipe"},
			"sewer-line":        {Price: 950, Description: "Sewer backup or odour"},
		},
		AddOns: []models.AddOn{
			{ID: "camera-inspection", Name: "Camera Inspection", Price: 120, Keywords: []string{"camera", "inspect", "diagnos"}},
			{ID: "drain-guard", Name: "Drain Guard Fitting", Price: 35, Keywords: []string{"drain", "hair", "guard"}},
			{ID: "water-quality-test", Name: "Water Quality Test", Price: 45, Keywords: []string{"quality", "test", "smell"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"plumbingIssue", "urgency"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceElectrical: {
		ID:        ServiceElectrical,
		Title:     "Electrical",
		Icon:      "flash",
		BasePrice: 140,
		Steps:     4,
		Category:  "Repairs & Trades",
		ElectricalIssues: map[string]float64{
			"outlet-installation": 140,
			"light-fixture":       160,
			"ceiling-fan":         220,
			"circuit-breaker":     280,
			"wiring-repair":       380,
			"emergency-repair":    450,
			"ev-charger":          850,
			"panel-upgrade":       1200,
		},
		UrgencyLevels: map[string]float64{
			"standard":  1.0,
			"next-day":  1.15,
			"same-day":  1.3,
			"urgent":    1.5,
			"emergency": 1.8,
		},
		AddOns: []models.AddOn{
			{ID: "safety-inspection", Name: "Safety Inspection", Price: 95, Keywords: []string{"safety", "inspect", "spark"}},
			{ID: "surge-protector", Name: "Surge Protector", Price: 75, Keywords: []string{"surge", "lightning", "trip"}},
			{ID: "smart-switch", Name: "Smart Switch Install", Price: 60, Keywords: []string{"smart", "dimmer", "switch"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"electricalIssue", "urgency"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceChefCatering: {
		ID:        ServiceChefCatering,
		Title:     "Chef & Catering",
		Icon:      "restaurant",
		BasePrice: 320,
		Steps:     5,
		Category:  "Events & Lifestyle",
		Cuisines: map[string]models.CuisineOption{
			"local": {Multiplier: 1.0},
			"italian": {
				Multiplier: 1.2,
				PopularMenus: []models.PopularMenu{
					{Name: "Trattoria Classic", Price: 420, Items: []string{"Antipasti board", "Pasta al pomodoro", "Tiramisu"}},
					{Name: "Tuscan Feast", Price: 540, Items: []string{"Crostini misti", "Bistecca", "Panna cotta"}},
				},
			},
			"mediterranean": {
				Multiplier: 1.25,
				PopularMenus: []models.PopularMenu{
					{Name: "Meze Night", Price: 460, Items: []string{"Meze platter", "Grilled fish", "Baklava"}},
				},
			},
			"indian": {
				Multiplier: 1.3,
				PopularMenus: []models.PopularMenu{
					{Name: "Thali Royale", Price: 480, Items: []string{"Samosa chaat", "Butter chicken", "Gulab jamun"}},
				},
			},
			"japanese": {
				Multiplier: 1.5,
				PopularMenus: []models.PopularMenu{
					{Name: "Omakase Home", Price: 620, Items: []string{"Sashimi selection", "Nigiri course", "Matcha dessert"}},
				},
			},
			"french": {Multiplier: 1.6},
		},
		DietaryRequirements: map[string]string{
			"vegetarian":  "No meat or fish",
			"vegan":       "No animal products",
			"gluten-free": "No gluten-containing grains",
			"halal":       "Halal-certified ingredients",
			"kosher":      "Kosher-certified ingredients",
			"nut-free":    "Prepared without nuts",
		},
		EventSizes: map[string]float64{
			"intimate": 1.0,
			"medium":   1.6,
			"large":    2.4,
			"grand":    3.2,
		},
		CustomItemPrice: 45,
		AddOns: []models.AddOn{
			{ID: "waitstaff", Name: "Waitstaff Service", Price: 150, Keywords: []string{"staff", "serve", "waiter"}},
			{ID: "table-settings", Name: "Table Settings", Price: 80, Keywords: []string{"table", "setting", "decor"}},
			{ID: "wine-pairing", Name: "Wine Pairing", Price: 120, Keywords: []string{"wine", "pairing", "drink"}},
			{ID: "group-discount", Name: "Large Group Discount", Price: -60, Description: "20+ guests", Keywords: []string{"group", "guests", "party"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"cuisineType", "eventSize"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceEventStaff: {
		ID:        ServiceEventStaff,
		Title:     "Event Staff",
		Icon:      "people",
		BasePrice: 180,
		Steps:     4,
		Category:  "Events & Lifestyle",
		StaffTypes: map[string]float64{
			"host":        160,
			"waiter":      180,
			"bartender":   220,
			"security":    260,
			"coordinator": 340,
		},
		EventSizes: map[string]float64{
			"intimate": 1.0,
			"medium":   1.5,
			"large":    2.2,
			"grand":    3.0,
		},
		AddOns: []models.AddOn{
			{ID: "extra-hour", Name: "Extra Hour", Price: 40, Keywords: []string{"hour", "overtime", "late"}},
			{ID: "uniformed", Name: "Uniformed Staff", Price: 30, Keywords: []string{"uniform", "formal", "dress"}},
			{ID: "team-discount", Name: "Team Booking Discount", Price: -50, Description: "4+ staff booked", Keywords: []string{"team", "multiple", "several"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"staffType", "eventSize"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceBeauty: {
		ID:        ServiceBeauty,
		Title:     "Beauty & Wellness",
		Icon:      "sparkles",
		BasePrice: 140,
		Steps:     4,
		Category:  "Events & Lifestyle",
		TreatmentTypes: map[string]float64{
			"manicure-pedicure": 110,
			"hair-styling":      130,
			"facial":            140,
			"makeup":            150,
			"massage":           160,
			"spa-package":       320,
		},
		SessionDurations: map[string]float64{
			"30min":    0.7,
			"60min":    1.0,
			"90min":    1.4,
			"120min":   1.8,
			"half-day": 3.0,
		},
		AddOns: []models.AddOn{
			{ID: "aromatherapy", Name: "Aromatherapy", Price: 35, Keywords: []string{"aroma", "scent", "oil"}},
			{ID: "hot-stones", Name: "Hot Stones", Price: 40, Keywords: []string{"stone", "heat", "tension"}},
			{ID: "express-addon", Name: "Express Touch-Up", Price: 25, Keywords: []string{"express", "quick", "touch"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"treatmentType", "sessionDuration"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceMoving: {
		ID:        ServiceMoving,
		Title:     "Moving",
		Icon:      "cube",
		BasePrice: 480,
		Steps:     4,
		Category:  "Domestic Services",
		MovingTypes: map[string]float64{
			"studio":        480,
			"1-bedroom":     650,
			"2-bedroom":     900,
			"3-bedroom":     1250,
			"4plus-bedroom": 1600,
			"office":        1400,
		},
		MovingDistances: map[string]float64{
			"local":         1.0,
			"regional":      1.35,
			"long-distance": 1.9,
			"interstate":    2.6,
		},
		AddOns: []models.AddOn{
			{ID: "packing-service", Name: "Packing Service", Price: 180, Keywords: []string{"pack", "box", "wrap"}},
			{ID: "furniture-assembly", Name: "Furniture Assembly", Price: 120, Keywords: []string{"assembl", "furniture", "ikea"}},
			{ID: "storage-week", Name: "One Week Storage", Price: 90, Keywords: []string{"storage", "store", "hold"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"movingType", "movingDistance"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceAuPair: {
		ID:        ServiceAuPair,
		Title:     "Au Pair",
		Icon:      "heart",
		BasePrice: 420,
		Steps:     5,
		Category:  "Family Care",
		CareTypes: map[string]float64{
			"occasional": 420,
			"part-time":  1050,
			"full-time":  1850,
			"live-in":    2300,
		},
		ChildrenCounts: map[string]float64{
			"1":  1.0,
			"2":  1.3,
			"3":  1.55,
			"4+": 1.8,
		},
		ChildrenAges: map[string]float64{
			"school-age": 1.0,
			"preschool":  1.1,
			"toddler":    1.25,
			"mixed":      1.3,
			"infant":     1.4,
		},
		AddOns: []models.AddOn{
			{ID: "homework-help", Name: "Homework Help", Price: 60, Keywords: []string{"homework", "school", "tutor"}},
			{ID: "meal-prep", Name: "Meal Preparation", Price: 70, Keywords: []string{"meal", "cook", "dinner"}},
			{ID: "light-housekeeping", Name: "Light Housekeeping", Price: 50, Keywords: []string{"tidy", "clean", "housekeep"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"careType", "childrenCount"},
			3: {"preferredDate", "timePreference"},
		},
	},
	ServiceBabysitting: {
		ID:                  ServiceBabysitting,
		Title:               "Babysitting",
		Icon:                "happy",
		BasePrice:           90,
		Steps:               3,
		Category:            "Family Care",
		PropertyMultipliers: propertyMultipliers,
		AddOns: []models.AddOn{
			{ID: "overnight", Name: "Overnight Stay", Price: 80, Keywords: []string{"overnight", "night", "sleep"}},
			{ID: "bedtime-routine", Name: "Bedtime Routine", Price: 25, Keywords: []string{"bedtime", "bath", "story"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"preferredDate", "timePreference"},
		},
	},
	ServicePetCare: {
		ID:                  ServicePetCare,
		Title:               "Pet Care",
		Icon:                "paw",
		BasePrice:           75,
		Steps:               3,
		Category:            "Family Care",
		PropertyMultipliers: propertyMultipliers,
		AddOns: []models.AddOn{
			{ID: "dog-walking", Name: "Dog Walking", Price: 20, Keywords: []string{"walk", "dog", "exercise"}},
			{ID: "grooming", Name: "Grooming", Price: 55, Keywords: []string{"groom", "wash", "fur"}},
			{ID: "medication", Name: "Medication Admin", Price: 15, Keywords: []string{"medicat", "pill", "vet"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"preferredDate", "timePreference"},
		},
	},
	ServiceLaundry: {
		ID:                  ServiceLaundry,
		Title:               "Laundry",
		Icon:                "shirt",
		BasePrice:           60,
		Steps:               3,
		Category:            "Domestic Services",
		PropertyMultipliers: propertyMultipliers,
		AddOns: []models.AddOn{
			{ID: "ironing", Name: "Ironing", Price: 25, Keywords: []string{"iron", "press", "crease"}},
			{ID: "delicates", Name: "Delicates Hand-Wash", Price: 30, Keywords: []string{"delicate", "silk", "wool"}},
			{ID: "same-day-return", Name: "Same-Day Return", Price: 35, Keywords: []string{"same day", "urgent", "fast"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"preferredDate", "timePreference"},
		},
	},
	ServiceHandyman: {
		ID:                  ServiceHandyman,
		Title:               "Handyman",
		Icon:                "hammer",
		BasePrice:           150,
		Steps:               3,
		Category:            "Repairs & Trades",
		PropertyMultipliers: propertyMultipliers,
		AddOns: []models.AddOn{
			{ID: "tv-mounting", Name: "TV Mounting", Price: 60, Keywords: []string{"tv", "mount", "wall"}},
			{ID: "picture-hanging", Name: "Picture Hanging", Price: 25, Keywords: []string{"picture", "frame", "hang"}},
			{ID: "flatpack", Name: "Flat-Pack Assembly", Price: 70, Keywords: []string{"assembl", "flat-pack", "shelf"}},
		},
		RequiredFields: map[int][]string{
			1: {"propertyType", "address"},
			2: {"preferredDate", "timePreference"},
		},
	},
}
