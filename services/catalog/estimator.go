package catalog

// EstimateInput carries the form fields the duration estimate depends on.
type EstimateInput struct {
	CleaningType string
	RoomCount    int
	AddOnCount   int
}

// hoursPerAddOn is the additive adjustment per selected add-on.
const hoursPerAddOn = 0.5

// fallbackHours is returned for unrecognized service ids.
const fallbackHours = 2.0

// flatHours holds the baseline duration for fixed-scope services.
var flatHours = map[string]float64{
	ServiceGardenCare:   3,
	ServicePoolCleaning: 1.5,
	ServicePlumbing:     2,
	ServiceElectrical:   2,
	ServiceChefCatering: 5,
	ServiceEventStaff:   6,
	ServiceBeauty:       1.5,
	ServiceMoving:       6,
	ServiceAuPair:       8,
	ServiceBabysitting:  4,
	ServicePetCare:      2,
	ServiceLaundry:      2,
	ServiceHandyman:     3,
}

// EstimateHours returns the estimated job duration in hours. Cleaning is
// banded by room count and scaled up for deep cleans; every other service
// uses its flat baseline. The result is never negative and unknown
// service ids fall back to a neutral default rather than failing.
func EstimateHours(serviceID string, in EstimateInput) float64 {
	id, ok := Resolve(serviceID)
	if !ok {
		return fallbackHours + float64(in.AddOnCount)*hoursPerAddOn
	}

	var hours float64
	switch id {
	case ServiceCleaning:
		switch {
		case in.RoomCount <= 1:
			hours = 2
		case in.RoomCount <= 3:
			hours = 3
		case in.RoomCount <= 5:
			hours = 4.5
		default:
			hours = 6
		}
		switch in.CleaningType {
		case "deep", "post-construction":
			hours *= 1.5
		case "move-in-out":
			hours *= 1.3
		}
	default:
		hours, ok = flatHours[id]
		if !ok {
			hours = fallbackHours
		}
	}

	hours += float64(in.AddOnCount) * hoursPerAddOn
	if hours < 0 {
		return 0
	}
	return hours
}
