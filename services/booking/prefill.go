package booking

import "nestly/models"

// InitSource feeds the form re-initialization that happens when a
// service is chosen. Sources are consulted in priority order: an
// edit-source record first, then a prefill record from a recent order,
// then defaults.
type InitSource struct {
	// Edit is the form of a booking the user is editing.
	Edit *models.BookingFormData
	// Prefill is a prior order used to seed a fresh booking.
	Prefill *models.BookingDraft
}

// carryField is one row of the prefill decision table: which form field
// is copied, and whether a prefill source may supply it. Edit sources
// always may. GateCode and TipAmount are the deliberate exceptions — a
// previous booking's access code or tip must never silently reappear on
// a new, unrelated booking.
type carryField struct {
	name        string
	fromPrefill bool
	copyEdit    func(dst *models.BookingFormData, src models.BookingFormData)
	copyPrefill func(dst *models.BookingFormData, src models.BookingDraft)
}

var carryTable = []carryField{
	{
		name:        "propertyType",
		fromPrefill: true,
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.PropertyType = s.PropertyType },
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) { d.PropertyType = detailString(s, "propertyType") },
	},
	{
		name:        "address",
		fromPrefill: true,
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.Address = s.Address },
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) { d.Address = detailString(s, "address") },
	},
	{
		name:        "gateCode",
		fromPrefill: false, // privacy: edit-source only
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.GateCode = s.GateCode },
	},
	{
		name:        "recurringSchedule",
		fromPrefill: true,
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.RecurringSchedule = s.RecurringSchedule },
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) { d.RecurringSchedule = detailString(s, "recurringSchedule") },
	},
	{
		name:        "materials",
		fromPrefill: true,
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.Materials = s.Materials },
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) { d.Materials = detailString(s, "materials") },
	},
	{
		name:        "selectedAddOns",
		fromPrefill: true,
		copyEdit: func(d *models.BookingFormData, s models.BookingFormData) {
			d.SelectedAddOns = append([]string(nil), s.SelectedAddOns...)
		},
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) {
			d.SelectedAddOns = append([]string(nil), s.SelectedAddOns...)
		},
	},
	{
		name:        "specialRequests",
		fromPrefill: true,
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.SpecialRequests = s.SpecialRequests },
		copyPrefill: func(d *models.BookingFormData, s models.BookingDraft) { d.SpecialRequests = s.Comments },
	},
	{
		name:        "tipAmount",
		fromPrefill: false, // edit-source only
		copyEdit:    func(d *models.BookingFormData, s models.BookingFormData) { d.TipAmount = s.TipAmount },
	},
}

// initializeForm builds the starting form for a wizard session. An edit
// source is a full copy; a prefill source passes through the carry
// table's allow-list; otherwise defaults apply.
func initializeForm(src InitSource) models.BookingFormData {
	if src.Edit != nil {
		form := *src.Edit
		form.SelectedAddOns = append([]string(nil), src.Edit.SelectedAddOns...)
		return form
	}

	form := defaultForm()
	if src.Prefill != nil {
		for _, field := range carryTable {
			if field.fromPrefill && field.copyPrefill != nil {
				field.copyPrefill(&form, *src.Prefill)
			}
		}
		applyDetailFields(&form, src.Prefill.ServiceDetails)
	}
	return form
}

func defaultForm() models.BookingFormData {
	return models.BookingFormData{
		RecurringSchedule: models.RecurrenceOneTime,
	}
}

// applyDetailFields restores service-specific fields from the opaque
// details bag a prior order carries.
func applyDetailFields(form *models.BookingFormData, details map[string]any) {
	get := func(key string) string {
		if v, ok := details[key].(string); ok {
			return v
		}
		return ""
	}
	form.CleaningType = get("cleaningType")
	form.PropertySize = get("propertySize")
	form.GardenSize = get("gardenSize")
	form.GardenCondition = get("gardenCondition")
	form.PoolSize = get("poolSize")
	form.PoolCondition = get("poolCondition")
	form.PlumbingIssue = get("plumbingIssue")
	form.ElectricalIssue = get("electricalIssue")
	form.CuisineType = get("cuisineType")
	form.MenuMode = get("menuMode")
	form.SelectedMenu = get("selectedMenu")
	form.EventSize = get("eventSize")
	form.StaffType = get("staffType")
	form.TreatmentType = get("treatmentType")
	form.SessionDuration = get("sessionDuration")
	form.MovingType = get("movingType")
	form.MovingDistance = get("movingDistance")
	form.CareType = get("careType")
	form.ChildrenCount = get("childrenCount")
	form.ChildrenAge = get("childrenAge")
}

// reconstructForm rebuilds the full form from a stored booking so the
// user can edit it. Unlike the prefill path, editing restores the gate
// code and tip; the user is revisiting their own booking.
func reconstructForm(draft models.BookingDraft) models.BookingFormData {
	form := defaultForm()
	for _, field := range carryTable {
		if field.copyPrefill != nil {
			field.copyPrefill(&form, draft)
		}
	}
	applyDetailFields(&form, draft.ServiceDetails)
	form.GateCode = detailString(draft, "gateCode")
	form.Urgency = detailString(draft, "urgency")
	form.TipAmount = draft.TipAmount
	form.PreferredDate = draft.ScheduledDate
	form.TimePreference = draft.ScheduledTime
	return form
}

func detailString(draft models.BookingDraft, key string) string {
	if v, ok := draft.ServiceDetails[key].(string); ok {
		return v
	}
	return ""
}

// detailsBag captures the service-specific form fields as the opaque
// JSON bag stored on cart items and booking drafts for later rebooking.
func detailsBag(form models.BookingFormData) map[string]any {
	bag := make(map[string]any)
	put := func(key, val string) {
		if val != "" {
			bag[key] = val
		}
	}
	put("propertyType", form.PropertyType)
	put("address", form.Address)
	put("gateCode", form.GateCode)
	put("recurringSchedule", form.RecurringSchedule)
	put("materials", form.Materials)
	put("cleaningType", form.CleaningType)
	put("propertySize", form.PropertySize)
	put("gardenSize", form.GardenSize)
	put("gardenCondition", form.GardenCondition)
	put("poolSize", form.PoolSize)
	put("poolCondition", form.PoolCondition)
	put("plumbingIssue", form.PlumbingIssue)
	put("electricalIssue", form.ElectricalIssue)
	put("urgency", form.Urgency)
	put("cuisineType", form.CuisineType)
	put("menuMode", form.MenuMode)
	put("selectedMenu", form.SelectedMenu)
	put("eventSize", form.EventSize)
	put("staffType", form.StaffType)
	put("treatmentType", form.TreatmentType)
	put("sessionDuration", form.SessionDuration)
	put("movingType", form.MovingType)
	put("movingDistance", form.MovingDistance)
	put("careType", form.CareType)
	put("childrenCount", form.ChildrenCount)
	put("childrenAge", form.ChildrenAge)
	if form.RoomCount > 0 {
		bag["roomCount"] = form.RoomCount
	}
	if len(form.CustomMenuItems) > 0 {
		bag["customMenuItems"] = form.CustomMenuItems
	}
	if len(form.Dietary) > 0 {
		bag["dietary"] = form.Dietary
	}
	if form.Insurance {
		bag["insurance"] = true
	}
	return bag
}
