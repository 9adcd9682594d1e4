package booking

import (
	"testing"
	"time"

	"nestly/models"
	"nestly/services/catalog"
)

func strPtr(s string) *string { return &s }

func testNow() time.Time {
	return time.Date(2026, time.March, 10, 14, 0, 0, 0, time.Local)
}

func TestStartKnownService(t *testing.T) {
	f := NewFlow().Start("house-cleaning", InitSource{})
	if f.Stage != StageStep {
		t.Fatalf("stage = %q, want %q", f.Stage, StageStep)
	}
	if f.ServiceID != catalog.ServiceCleaning {
		t.Errorf("serviceId = %q, want canonical %q", f.ServiceID, catalog.ServiceCleaning)
	}
	if f.Step != 1 || f.TotalSteps != 5 {
		t.Errorf("step = %d/%d, want 1/5", f.Step, f.TotalSteps)
	}
	if f.Form.RecurringSchedule != models.RecurrenceOneTime {
		t.Errorf("default schedule = %q, want %q", f.Form.RecurringSchedule, models.RecurrenceOneTime)
	}
}

func TestStartUnknownServiceStaysNeutral(t *testing.T) {
	// Seed a previous service with form data and derived values first.
	f := NewFlow().Start(catalog.ServicePlumbing, InitSource{})
	f = f.Apply(models.FormUpdate{
		PlumbingIssue:   strPtr("burst-pipe"),
		SpecialRequests: strPtr("drain smells bad"),
	}, testNow())
	if f.Pricing.TotalPrice == 0 || f.EstimatedHours == 0 || len(f.Suggestions) == 0 {
		t.Fatalf("precondition: expected derived values, got %+v", f)
	}

	f = f.Start("window-tinting", InitSource{})
	if f.Stage != StageServiceSelection {
		t.Errorf("stage = %q, want service selection", f.Stage)
	}
	if f.ServiceID != "" || f.Step != 0 || f.TotalSteps != 0 {
		t.Errorf("unexpected residue: serviceId=%q step=%d/%d", f.ServiceID, f.Step, f.TotalSteps)
	}
	if f.Pricing.TotalPrice != 0 {
		t.Errorf("total = %v, want 0", f.Pricing.TotalPrice)
	}
	if f.Form.PlumbingIssue != "" || f.Form.SpecialRequests != "" {
		t.Errorf("previous form survived: %+v", f.Form)
	}
	if f.EstimatedHours != 0 || len(f.Suggestions) != 0 {
		t.Errorf("previous derived values survived: hours=%v suggestions=%v", f.EstimatedHours, f.Suggestions)
	}
}

func TestApplyRecomputesPricing(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f = f.Apply(models.FormUpdate{
		CleaningType: strPtr("basic"),
		PropertySize: strPtr("medium"),
	}, testNow())
	if f.Pricing.TotalPrice != 364 {
		t.Errorf("total = %v, want 364", f.Pricing.TotalPrice)
	}
	if f.EstimatedHours <= 0 {
		t.Errorf("estimated hours = %v, want positive", f.EstimatedHours)
	}
}

func TestEmergencyUrgencySideEffects(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServicePlumbing, InitSource{})
	f = f.Apply(models.FormUpdate{
		RecurringSchedule: strPtr(models.RecurrenceWeekly),
		Urgency:           strPtr(models.UrgencyEmergency),
	}, now)
	if f.Form.RecurringSchedule != models.RecurrenceOneTime {
		t.Errorf("schedule = %q, want forced one-time", f.Form.RecurringSchedule)
	}
	if want := now.Format("2006-01-02"); f.Form.PreferredDate != want {
		t.Errorf("date = %q, want today %q", f.Form.PreferredDate, want)
	}
	if f.Form.TimePreference != models.TimeASAP {
		t.Errorf("time = %q, want %q", f.Form.TimePreference, models.TimeASAP)
	}
}

func TestUrgentPinsDateButNotTime(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServicePlumbing, InitSource{})
	f = f.Apply(models.FormUpdate{
		TimePreference: strPtr("10:00"),
		Urgency:        strPtr(models.UrgencyUrgent),
	}, now)
	if want := now.Format("2006-01-02"); f.Form.PreferredDate != want {
		t.Errorf("date = %q, want today %q", f.Form.PreferredDate, want)
	}
	if f.Form.TimePreference != "10:00" {
		t.Errorf("time = %q, want user's 10:00 kept", f.Form.TimePreference)
	}
	if f.Form.RecurringSchedule != models.RecurrenceOneTime {
		t.Errorf("schedule = %q, want one-time", f.Form.RecurringSchedule)
	}
}

func TestElectricalNextDayPinsTomorrow(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServiceElectrical, InitSource{})
	f = f.Apply(models.FormUpdate{Urgency: strPtr(models.UrgencyNextDay)}, now)
	if want := now.AddDate(0, 0, 1).Format("2006-01-02"); f.Form.PreferredDate != want {
		t.Errorf("date = %q, want tomorrow %q", f.Form.PreferredDate, want)
	}
}

func TestSideEffectsOnlyForTradeServices(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f = f.Apply(models.FormUpdate{
		Urgency:           strPtr(models.UrgencyEmergency),
		RecurringSchedule: strPtr(models.RecurrenceWeekly),
	}, testNow())
	if f.Form.RecurringSchedule != models.RecurrenceWeekly {
		t.Errorf("schedule = %q, cleaning urgency must not override it", f.Form.RecurringSchedule)
	}
	if f.Form.PreferredDate != "" {
		t.Errorf("date = %q, want untouched", f.Form.PreferredDate)
	}
}

func TestNextBlockedUntilRequiredFieldsFilled(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	if _, ok := f.Next(); ok {
		t.Fatal("advance allowed with empty step-one fields")
	}
	f = f.Apply(models.FormUpdate{PropertyType: strPtr("apartment")}, testNow())
	if _, ok := f.Next(); ok {
		t.Fatal("advance allowed with address missing")
	}
	f = f.Apply(models.FormUpdate{Address: strPtr("12 Rose Lane")}, testNow())
	next, ok := f.Next()
	if !ok {
		t.Fatal("advance blocked with step-one fields filled")
	}
	if next.Step != 2 {
		t.Errorf("step = %d, want 2", next.Step)
	}
}

func TestNextStopsAtLastStep(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f.Step = f.TotalSteps
	if _, ok := f.Next(); ok {
		t.Error("advance allowed past the last step")
	}
}

func TestBackIsUnconditional(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f.Step = 3
	f = f.Back()
	if f.Step != 2 {
		t.Errorf("step = %d, want 2", f.Step)
	}
	f.Step = 1
	f = f.Back()
	if f.Step != 1 {
		t.Errorf("step = %d, back below step one must be a no-op", f.Step)
	}
}

func TestSuggestionDebounce(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})

	// First edit fires immediately.
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("the oven")}, now)
	if len(f.Suggestions) == 0 {
		t.Fatal("first comment edit produced no suggestions")
	}
	first := f.Suggestions

	// An edit inside the window keeps the previous suggestions.
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("the fridge")}, now.Add(100*time.Millisecond))
	if len(f.Suggestions) != len(first) || f.Suggestions[0].ID != first[0].ID {
		t.Errorf("suggestions refreshed inside debounce window: %v", f.Suggestions)
	}

	// After the window elapses the next edit refreshes.
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("the fridge please")}, now.Add(600*time.Millisecond))
	found := false
	for _, s := range f.Suggestions {
		if s.ID == "inside-fridge" {
			found = true
		}
	}
	if !found {
		t.Errorf("post-debounce edit did not refresh suggestions: %v", f.Suggestions)
	}
}

func TestFieldUpdateInsideWindowKeepsSuggestions(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("oven grease")}, now)
	before := len(f.Suggestions)

	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("oven grease and")}, now.Add(100*time.Millisecond))
	f = f.Apply(models.FormUpdate{PropertySize: strPtr("large")}, now.Add(200*time.Millisecond))
	if len(f.Suggestions) != before {
		t.Errorf("in-window update changed suggestions: %d -> %d", before, len(f.Suggestions))
	}
}

func TestTrailingCommentEditFlushedAfterSilence(t *testing.T) {
	now := testNow()
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})

	// A partial keystroke matches nothing.
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("fri")}, now)
	if len(f.Suggestions) != 0 {
		t.Fatalf("partial keystroke matched: %v", f.Suggestions)
	}

	// The settled comment arrives inside the window and must not refresh yet.
	f = f.Apply(models.FormUpdate{SpecialRequests: strPtr("fridge and oven")}, now.Add(150*time.Millisecond))
	if len(f.Suggestions) != 0 {
		t.Fatalf("burst edit refreshed inside the window: %v", f.Suggestions)
	}

	// The first update after the window of silence flushes the settled
	// comment, even though this update does not touch the comment at all.
	f = f.Apply(models.FormUpdate{PropertySize: strPtr("large")}, now.Add(5*time.Second))
	got := make(map[string]bool)
	for _, s := range f.Suggestions {
		got[s.ID] = true
	}
	if !got["inside-fridge"] || !got["inside-oven"] {
		t.Errorf("trailing comment edit never matched: %v", f.Suggestions)
	}
}

func TestPrefillCarriesAllowedFieldsOnly(t *testing.T) {
	draft := models.BookingDraft{
		SelectedAddOns: []string{"inside-oven"},
		Comments:       "ring twice",
		TipAmount:      25,
		ServiceDetails: map[string]any{
			"propertyType":      "house",
			"address":           "4 Elm Street",
			"gateCode":          "9921#",
			"recurringSchedule": models.RecurrenceWeekly,
			"materials":         models.MaterialsOwn,
			"cleaningType":      "deep",
			"propertySize":      "large",
		},
	}
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{Prefill: &draft})

	if f.Form.PropertyType != "house" || f.Form.Address != "4 Elm Street" {
		t.Errorf("property/address not carried: %+v", f.Form)
	}
	if f.Form.RecurringSchedule != models.RecurrenceWeekly || f.Form.Materials != models.MaterialsOwn {
		t.Errorf("schedule/materials not carried: %+v", f.Form)
	}
	if f.Form.CleaningType != "deep" || f.Form.PropertySize != "large" {
		t.Errorf("service fields not carried: %+v", f.Form)
	}
	if len(f.Form.SelectedAddOns) != 1 || f.Form.SelectedAddOns[0] != "inside-oven" {
		t.Errorf("add-ons not carried: %v", f.Form.SelectedAddOns)
	}
	if f.Form.SpecialRequests != "ring twice" {
		t.Errorf("comments not carried: %q", f.Form.SpecialRequests)
	}
	if f.Form.GateCode != "" {
		t.Errorf("gate code leaked from prefill: %q", f.Form.GateCode)
	}
	if f.Form.TipAmount != 0 {
		t.Errorf("tip leaked from prefill: %v", f.Form.TipAmount)
	}
}

func TestEditSourceRestoresEverything(t *testing.T) {
	edit := models.BookingFormData{
		PropertyType: "villa",
		Address:      "9 Ocean Drive",
		GateCode:     "4411",
		TipAmount:    30,
		CleaningType: "deep",
		PropertySize: "xlarge",
	}
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{Edit: &edit})
	if f.Form.GateCode != "4411" {
		t.Errorf("gate code = %q, edit source must restore it", f.Form.GateCode)
	}
	if f.Form.TipAmount != 30 {
		t.Errorf("tip = %v, edit source must restore it", f.Form.TipAmount)
	}
	if f.Form.CleaningType != "deep" || f.Form.PropertySize != "xlarge" {
		t.Errorf("service fields lost: %+v", f.Form)
	}
}

func TestReconstructFormFromDraft(t *testing.T) {
	draft := models.BookingDraft{
		ScheduledDate:  "2026-04-01",
		ScheduledTime:  "10:00",
		TipAmount:      15,
		SelectedAddOns: []string{"inside-fridge"},
		Comments:       "side door",
		ServiceDetails: map[string]any{
			"propertyType": "apartment",
			"address":      "77 Birch Road",
			"gateCode":     "1234",
			"urgency":      models.UrgencySameDay,
			"cleaningType": "basic",
		},
	}
	form := reconstructForm(draft)
	if form.GateCode != "1234" {
		t.Errorf("gate code = %q, want restored", form.GateCode)
	}
	if form.Urgency != models.UrgencySameDay {
		t.Errorf("urgency = %q, want restored", form.Urgency)
	}
	if form.TipAmount != 15 {
		t.Errorf("tip = %v, want 15", form.TipAmount)
	}
	if form.PreferredDate != "2026-04-01" || form.TimePreference != "10:00" {
		t.Errorf("schedule not restored: %q %q", form.PreferredDate, form.TimePreference)
	}
}

func TestStartResetsPreviousServiceState(t *testing.T) {
	f := NewFlow().Start(catalog.ServicePlumbing, InitSource{})
	f = f.Apply(models.FormUpdate{PlumbingIssue: strPtr("burst-pipe")}, testNow())
	f = f.Start(catalog.ServiceCleaning, InitSource{})
	if f.Form.PlumbingIssue != "" {
		t.Errorf("plumbing issue survived service switch: %q", f.Form.PlumbingIssue)
	}
	if f.Step != 1 || f.TotalSteps != 5 {
		t.Errorf("step = %d/%d, want 1/5", f.Step, f.TotalSteps)
	}
}

func TestAbandonDiscardsForm(t *testing.T) {
	f := NewFlow().Start(catalog.ServiceCleaning, InitSource{})
	f = f.Apply(models.FormUpdate{Address: strPtr("1 Main St")}, testNow())
	f = f.Abandon()
	if f.Stage != StageAbandoned {
		t.Errorf("stage = %q, want abandoned", f.Stage)
	}
	if f.Form.Address != "" {
		t.Errorf("address survived abandon: %q", f.Form.Address)
	}
}
