package booking

import (
	"time"

	"nestly/models"
	"nestly/services/catalog"
	"nestly/services/pricing"
)

// Stage is the top-level state of the booking wizard.
type Stage string

const (
	StageServiceSelection Stage = "service_selection"
	StageStep             Stage = "step"
	StageAbandoned        Stage = "abandoned"
)

// suggestionDebounce is the window of comment-edit silence before the
// suggestion engine is re-run. Edits inside the window keep the previous
// suggestions; once the window elapses the settled comment is flushed on
// the next Apply, whatever that update touches.
const suggestionDebounce = 400 * time.Millisecond

// FlowState is one immutable snapshot of the booking wizard. Transition
// methods take a value receiver and return a new snapshot, so a caller
// can hold, compare or discard intermediate states freely. The derived
// fields (Pricing, EstimatedHours, Suggestions) are recomputed on every
// form mutation and are never stale relative to Form.
type FlowState struct {
	Stage      Stage                  `json:"stage"`
	ServiceID  string                 `json:"serviceId,omitempty"`
	Step       int                    `json:"step,omitempty"`
	TotalSteps int                    `json:"totalSteps,omitempty"`
	Form       models.BookingFormData `json:"form"`
	Touched    map[string]bool        `json:"touched,omitempty"`

	Pricing        models.PricingBreakdown `json:"pricing"`
	EstimatedHours float64                 `json:"estimatedHours"`
	Suggestions    []models.AddOn          `json:"suggestions,omitempty"`

	// LastCommentEditMs drives the suggestion debounce across snapshots.
	LastCommentEditMs int64 `json:"lastCommentEditMs,omitempty"`
}

// NewFlow returns the initial wizard state, before a service is chosen.
func NewFlow() FlowState {
	return FlowState{Stage: StageServiceSelection}
}

// Start chooses a service and re-initializes the form through the
// prefill decision table. Unknown service ids are not an error: the flow
// returns to a fully clean service-selection state, carrying no form
// data or derived values from any previous service.
func (f FlowState) Start(serviceID string, src InitSource) FlowState {
	cfg, ok := catalog.GetConfig(serviceID)
	if !ok {
		return NewFlow()
	}
	f.Stage = StageStep
	f.ServiceID = cfg.ID
	f.Step = 1
	f.TotalSteps = cfg.Steps
	f.Form = initializeForm(src)
	f.Touched = nil
	f.LastCommentEditMs = 0
	return f.recompute(true)
}

// Apply patches the form, runs the urgency side-effect rules, and
// recomputes all derived values. Suggestions refresh on the first comment
// edit, pause while edits keep arriving inside the debounce window, and
// flush on the first Apply after the window of silence, even when that
// update touched some other field. The last comment edit is therefore
// never left unmatched.
func (f FlowState) Apply(u models.FormUpdate, now time.Time) FlowState {
	if f.Stage != StageStep {
		return f
	}
	commentChanged := applyUpdate(&f.Form, u)
	f.Form = applySideEffects(f.ServiceID, f.Form, now)

	refreshSuggestions := false
	if f.LastCommentEditMs != 0 && now.Sub(time.UnixMilli(f.LastCommentEditMs)) >= suggestionDebounce {
		refreshSuggestions = true
		f.LastCommentEditMs = 0
	}
	if commentChanged {
		if f.LastCommentEditMs == 0 {
			refreshSuggestions = true
		}
		f.LastCommentEditMs = now.UnixMilli()
	}
	return f.recompute(refreshSuggestions)
}

// CanProceed reports whether the current step's required fields are all
// populated.
func (f FlowState) CanProceed() bool {
	cfg, ok := catalog.GetConfig(f.ServiceID)
	if !ok {
		return false
	}
	for _, field := range cfg.RequiredFields[f.Step] {
		if fieldValue(f.Form, field) == "" {
			return false
		}
	}
	return true
}

// Next advances a step when the required fields allow it. A blocked
// advance is not an error; the action is simply unavailable.
func (f FlowState) Next() (FlowState, bool) {
	if f.Stage != StageStep || f.Step >= f.TotalSteps || !f.CanProceed() {
		return f, false
	}
	f.Step++
	return f, true
}

// Back is unconditional above step one.
func (f FlowState) Back() FlowState {
	if f.Stage == StageStep && f.Step > 1 {
		f.Step--
	}
	return f
}

// SelectProvider records the provider chosen during the review step.
func (f FlowState) SelectProvider(p models.Provider) FlowState {
	f.Form.ProviderID = p.ID
	f.Form.ProviderName = p.Name
	return f
}

// Abandon discards the wizard. All in-progress form data goes with it.
func (f FlowState) Abandon() FlowState {
	return FlowState{Stage: StageAbandoned}
}

// Reset returns the flow to service selection with a clean form, used
// after an add-to-cart-and-continue exit.
func (f FlowState) Reset() FlowState {
	return NewFlow()
}

func (f FlowState) recompute(refreshSuggestions bool) FlowState {
	cfg, _ := catalog.GetConfig(f.ServiceID)
	f.Pricing = pricing.Compute(cfg, f.Form, catalog.GetAddOns(f.ServiceID))
	f.EstimatedHours = catalog.EstimateHours(f.ServiceID, catalog.EstimateInput{
		CleaningType: f.Form.CleaningType,
		RoomCount:    f.Form.RoomCount,
		AddOnCount:   len(f.Form.SelectedAddOns),
	})
	if refreshSuggestions {
		f.Suggestions = catalog.SuggestAddOns(f.ServiceID, f.Form.SpecialRequests)
	}
	return f
}

// applyUpdate patches non-nil fields onto the form and reports whether
// the free-text comment changed.
func applyUpdate(form *models.BookingFormData, u models.FormUpdate) bool {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&form.PropertyType, u.PropertyType)
	setStr(&form.Address, u.Address)
	setStr(&form.GateCode, u.GateCode)
	setStr(&form.PreferredDate, u.PreferredDate)
	setStr(&form.TimePreference, u.TimePreference)
	setStr(&form.RecurringSchedule, u.RecurringSchedule)
	setStr(&form.Materials, u.Materials)
	setStr(&form.CleaningType, u.CleaningType)
	setStr(&form.PropertySize, u.PropertySize)
	setStr(&form.GardenSize, u.GardenSize)
	setStr(&form.GardenCondition, u.GardenCondition)
	setStr(&form.PoolSize, u.PoolSize)
	setStr(&form.PoolCondition, u.PoolCondition)
	setStr(&form.PlumbingIssue, u.PlumbingIssue)
	setStr(&form.ElectricalIssue, u.ElectricalIssue)
	setStr(&form.Urgency, u.Urgency)
	setStr(&form.CuisineType, u.CuisineType)
	setStr(&form.MenuMode, u.MenuMode)
	setStr(&form.SelectedMenu, u.SelectedMenu)
	setStr(&form.EventSize, u.EventSize)
	setStr(&form.StaffType, u.StaffType)
	setStr(&form.TreatmentType, u.TreatmentType)
	setStr(&form.SessionDuration, u.SessionDuration)
	setStr(&form.MovingType, u.MovingType)
	setStr(&form.MovingDistance, u.MovingDistance)
	setStr(&form.CareType, u.CareType)
	setStr(&form.ChildrenCount, u.ChildrenCount)
	setStr(&form.ChildrenAge, u.ChildrenAge)
	if u.Insurance != nil {
		form.Insurance = *u.Insurance
	}
	if u.RoomCount != nil {
		form.RoomCount = *u.RoomCount
	}
	if u.CustomMenuItems != nil {
		form.CustomMenuItems = *u.CustomMenuItems
	}
	if u.Dietary != nil {
		form.Dietary = *u.Dietary
	}
	if u.SelectedAddOns != nil {
		form.SelectedAddOns = *u.SelectedAddOns
	}
	if u.TipAmount != nil {
		form.TipAmount = *u.TipAmount
	}

	commentChanged := false
	if u.SpecialRequests != nil && *u.SpecialRequests != form.SpecialRequests {
		form.SpecialRequests = *u.SpecialRequests
		commentChanged = true
	}
	return commentChanged
}

// applySideEffects enforces the urgency rules that cut across steps:
// urgent work cannot recur, the most urgent tiers pin the schedule to
// today (emergency also pins the immediate-dispatch time), and
// electrical next-day locks the date to tomorrow.
func applySideEffects(serviceID string, form models.BookingFormData, now time.Time) models.BookingFormData {
	if serviceID != catalog.ServicePlumbing && serviceID != catalog.ServiceElectrical {
		return form
	}
	switch form.Urgency {
	case models.UrgencyEmergency:
		form.RecurringSchedule = models.RecurrenceOneTime
		form.PreferredDate = now.Format("2006-01-02")
		form.TimePreference = models.TimeASAP
	case models.UrgencyUrgent, models.UrgencySameDay:
		form.RecurringSchedule = models.RecurrenceOneTime
		form.PreferredDate = now.Format("2006-01-02")
	case models.UrgencyNextDay:
		if serviceID == catalog.ServiceElectrical {
			form.PreferredDate = now.AddDate(0, 0, 1).Format("2006-01-02")
		}
	}
	return form
}

// fieldValue resolves a required-field name from the config tables to
// its current form value. Unknown names read as empty, which keeps the
// step gate conservative.
func fieldValue(form models.BookingFormData, name string) string {
	switch name {
	case "propertyType":
		return form.PropertyType
	case "address":
		return form.Address
	case "preferredDate":
		return form.PreferredDate
	case "timePreference":
		return form.TimePreference
	case "cleaningType":
		return form.CleaningType
	case "propertySize":
		return form.PropertySize
	case "gardenSize":
		return form.GardenSize
	case "gardenCondition":
		return form.GardenCondition
	case "poolSize":
		return form.PoolSize
	case "poolCondition":
		return form.PoolCondition
	case "plumbingIssue":
		return form.PlumbingIssue
	case "electricalIssue":
		return form.ElectricalIssue
	case "urgency":
		return form.Urgency
	case "cuisineType":
		return form.CuisineType
	case "eventSize":
		return form.EventSize
	case "staffType":
		return form.StaffType
	case "treatmentType":
		return form.TreatmentType
	case "sessionDuration":
		return form.SessionDuration
	case "movingType":
		return form.MovingType
	case "movingDistance":
		return form.MovingDistance
	case "careType":
		return form.CareType
	case "childrenCount":
		return form.ChildrenCount
	case "childrenAge":
		return form.ChildrenAge
	}
	return ""
}
