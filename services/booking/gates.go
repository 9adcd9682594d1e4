package booking

import (
	"fmt"
	"time"

	"nestly/models"
	"nestly/services/catalog"
)

// minimumNotice is the lead time catering and gardening bookings need.
const minimumNotice = 24 * time.Hour

// noticeGatedServices are the services subject to the 24-hour rule.
var noticeGatedServices = map[string]bool{
	catalog.ServiceChefCatering: true,
	catalog.ServiceGardenCare:   true,
}

// bannedGardenUrgencies cannot be booked for garden care at all.
var bannedGardenUrgencies = map[string]bool{
	models.UrgencyEmergency: true,
	models.UrgencyUrgent:    true,
	models.UrgencySameDay:   true,
}

// checkDomainGates runs the business-rule gates evaluated at the moment
// of cart-add or confirm. These depend on field combinations and
// external limits, so they are distinct from the per-step required-field
// validation and are deliberately not evaluated earlier in the flow.
func checkDomainGates(serviceID string, form models.BookingFormData, now time.Time, cartCount, cartMax int) error {
	if serviceID == catalog.ServiceGardenCare && bannedGardenUrgencies[form.Urgency] {
		return NewPolicyError("gardenUrgency", "garden care cannot be booked as an emergency or same-day service")
	}
	if noticeGatedServices[serviceID] {
		scheduled := scheduledAt(form)
		if scheduled.IsZero() || scheduled.Before(now.Add(minimumNotice)) {
			return NewPolicyError("noticePeriod", "this service must be scheduled at least 24 hours in advance")
		}
	}
	if cartCount >= cartMax {
		return NewPolicyError("cartLimit", fmt.Sprintf("cart is limited to %d services per checkout", cartMax))
	}
	return nil
}

// scheduledAt combines the preferred date and time slot into a concrete
// moment. An unparseable time slot counts as start of day, which keeps
// the notice gate conservative.
func scheduledAt(form models.BookingFormData) time.Time {
	day, err := time.ParseInLocation("2006-01-02", form.PreferredDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	if slot, err := time.Parse("15:04", form.TimePreference); err == nil {
		day = day.Add(time.Duration(slot.Hour())*time.Hour + time.Duration(slot.Minute())*time.Minute)
	}
	return day
}
