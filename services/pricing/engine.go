package pricing

import (
	"math"

	"nestly/models"
	"nestly/services/catalog"
)

// branchFunc adjusts the running base price for one service type. A
// branch may replace the base (fixed-price option selected) and/or
// multiply it by condition/size/urgency factors. A lookup miss always
// leaves the base unchanged; a partially configured selection never
// collapses to zero mid-calculation.
type branchFunc func(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64

// branches is the per-service pricing strategy table. Services absent
// from it only get the generic property multiplier.
var branches = map[string]branchFunc{
	catalog.ServiceCleaning:     cleaningBranch,
	catalog.ServiceGardenCare:   gardenBranch,
	catalog.ServicePoolCleaning: poolBranch,
	catalog.ServicePlumbing:     plumbingBranch,
	catalog.ServiceElectrical:   electricalBranch,
	catalog.ServiceChefCatering: cateringBranch,
	catalog.ServiceEventStaff:   eventStaffBranch,
	catalog.ServiceBeauty:       beautyBranch,
	catalog.ServiceMoving:       movingBranch,
	catalog.ServiceAuPair:       auPairBranch,
}

// Plumbing urgency surcharges are flat amounts added after the fixed
// issue price, not multipliers.
var plumbingSurcharges = map[string]float64{
	models.UrgencyEmergency: 150,
	models.UrgencyUrgent:    100,
	models.UrgencySameDay:   50,
}

// Compute derives the full price breakdown for the current form state.
// A nil config yields an all-zero breakdown: the UI reads a zero total
// as "incomplete selection", so this is policy rather than a fallback.
func Compute(cfg *models.ServiceConfig, form models.BookingFormData, addOnCatalog []models.AddOn) models.PricingBreakdown {
	if cfg == nil {
		return models.PricingBreakdown{}
	}

	base := cfg.BasePrice
	if m, ok := cfg.PropertyMultipliers[form.PropertyType]; ok {
		base *= m
	}
	if branch, ok := branches[cfg.ID]; ok {
		base = branch(cfg, form, base)
	}

	addOns := 0.0
	for _, id := range form.SelectedAddOns {
		for _, a := range addOnCatalog {
			if a.ID == id {
				addOns += a.Price
				break
			}
		}
	}

	// All three discounts are computed against the same pre-discount
	// base; they do not compound.
	discountBase := base + addOns
	var materials, recurring, timeDiscount float64
	if form.Materials == models.MaterialsOwn {
		materials = math.Round(discountBase * 0.15)
	}
	switch form.RecurringSchedule {
	case models.RecurrenceWeekly:
		recurring = math.Round(discountBase * 0.15)
	case models.RecurrenceBiWeekly:
		recurring = math.Round(discountBase * 0.10)
	case models.RecurrenceMonthly:
		recurring = math.Round(discountBase * 0.08)
	}
	if form.TimePreference == models.EarlyBirdSlot {
		timeDiscount = math.Round(discountBase * 0.10)
	}

	total := math.Round(base) + addOns - materials - recurring - timeDiscount
	if total < 0 {
		total = 0
	}

	return models.PricingBreakdown{
		BasePrice:         math.Round(base),
		AddOnsPrice:       addOns,
		MaterialsDiscount: materials,
		RecurringDiscount: recurring,
		TimeDiscount:      timeDiscount,
		TotalPrice:        total,
	}
}

func cleaningBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.CleaningTypes[form.CleaningType]; ok {
		base = price
	}
	if m, ok := cfg.PropertySizes[form.PropertySize]; ok {
		base *= m
	}
	return base
}

func gardenBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if m, ok := cfg.GardenSizes[form.GardenSize]; ok {
		base *= m
	}
	if m, ok := cfg.GardenConditions[form.GardenCondition]; ok {
		base *= m
	}
	return base
}

func poolBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if m, ok := cfg.PoolSizes[form.PoolSize]; ok {
		base *= m
	}
	if m, ok := cfg.PoolConditions[form.PoolCondition]; ok {
		base *= m
	}
	return base
}

func plumbingBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if issue, ok := cfg.PlumbingIssues[form.PlumbingIssue]; ok {
		base = issue.Price
	}
	base += plumbingSurcharges[form.Urgency]
	return base
}

func electricalBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.ElectricalIssues[form.ElectricalIssue]; ok {
		base = price
	}
	if m, ok := cfg.UrgencyLevels[form.Urgency]; ok {
		base *= m
	}
	return base
}

func cateringBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	cuisine, hasCuisine := cfg.Cuisines[form.CuisineType]
	switch form.MenuMode {
	case "popular":
		replaced := false
		if hasCuisine {
			for _, menu := range cuisine.PopularMenus {
				if menu.Name == form.SelectedMenu {
					base = menu.Price
					replaced = true
					break
				}
			}
		}
		if !replaced && hasCuisine {
			base *= cuisine.Multiplier
		}
	case "custom":
		if hasCuisine {
			base *= cuisine.Multiplier
		}
		base += float64(len(form.CustomMenuItems)) * cfg.CustomItemPrice
	default:
		if hasCuisine {
			base *= cuisine.Multiplier
		}
	}
	if m, ok := cfg.EventSizes[form.EventSize]; ok {
		base *= m
	}
	return base
}

func eventStaffBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.StaffTypes[form.StaffType]; ok {
		base = price
	}
	if m, ok := cfg.EventSizes[form.EventSize]; ok {
		base *= m
	}
	return base
}

func beautyBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.TreatmentTypes[form.TreatmentType]; ok {
		base = price
	}
	if m, ok := cfg.SessionDurations[form.SessionDuration]; ok {
		base *= m
	}
	return base
}

func movingBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.MovingTypes[form.MovingType]; ok {
		base = price
	}
	if m, ok := cfg.MovingDistances[form.MovingDistance]; ok {
		base *= m
	}
	return base
}

func auPairBranch(cfg *models.ServiceConfig, form models.BookingFormData, base float64) float64 {
	if price, ok := cfg.CareTypes[form.CareType]; ok {
		base = price
	}
	if m, ok := cfg.ChildrenCounts[form.ChildrenCount]; ok {
		base *= m
	}
	if m, ok := cfg.ChildrenAges[form.ChildrenAge]; ok {
		base *= m
	}
	return base
}
