package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"nestly/models"
	"nestly/services/catalog"
)

type fakeCartRepo struct {
	items     []models.CartItem
	failCount bool
}

func (f *fakeCartRepo) Create(_ context.Context, item models.CartItem) (string, error) {
	f.items = append(f.items, item)
	return fmt.Sprintf("cart-%d", len(f.items)), nil
}

func (f *fakeCartRepo) GetByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	return f.items, nil
}

func (f *fakeCartRepo) CountByUser(_ context.Context, userID string) (int, error) {
	if f.failCount {
		return 0, errors.New("cart unavailable")
	}
	return len(f.items), nil
}

func (f *fakeCartRepo) DeleteByID(_ context.Context, id string) error { return nil }

type fakeOrderRepo struct {
	drafts []models.BookingDraft
	recent *models.BookingDraft
}

func (f *fakeOrderRepo) Create(_ context.Context, draft models.BookingDraft) (string, error) {
	f.drafts = append(f.drafts, draft)
	return draft.ID, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.BookingDraft, error) {
	for i := range f.drafts {
		if f.drafts[i].ID == id {
			return &f.drafts[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeOrderRepo) GetRecentByUser(_ context.Context, userID, serviceID string) (*models.BookingDraft, error) {
	return f.recent, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]models.BookingDraft, error) {
	return f.drafts, nil
}

func newTestService(t *testing.T) (*DefaultBookingSessionService, *fakeCartRepo, *fakeOrderRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cart := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	svc := &DefaultBookingSessionService{
		Cache:      client,
		CartRepo:   cart,
		OrderRepo:  orders,
		Providers:  &StaticProviderDirectory{},
		SessionTTL: 30 * time.Minute,
		CartMax:    3,
		Now: func() time.Time {
			return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
		},
	}
	return svc, cart, orders
}

// advanceToLastStep drives a cleaning session through every wizard step
// with a valid form, ready to confirm.
func advanceToLastStep(t *testing.T, svc *DefaultBookingSessionService, sessionID string) *Session {
	t.Helper()
	_, err := svc.ApplyUpdate(sessionID, models.FormUpdate{
		PropertyType:   strPtr("apartment"),
		Address:        strPtr("12 Rose Lane"),
		CleaningType:   strPtr("basic"),
		PropertySize:   strPtr("medium"),
		PreferredDate:  strPtr("2026-03-20"),
		TimePreference: strPtr("10:00"),
	})
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	var session *Session
	for i := 0; i < 4; i++ {
		session, err = svc.Next(sessionID)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if session.Flow.Step != session.Flow.TotalSteps {
		t.Fatalf("step = %d/%d, want last step", session.Flow.Step, session.Flow.TotalSteps)
	}
	return session
}

func validCard() models.PaymentInput {
	return models.PaymentInput{
		Method:         models.PaymentMethodCard,
		CardNumber:     "4111111111111111",
		Expiry:         "12/39",
		CVV:            "123",
		CardholderName: "Ada Lovelace",
	}
}

func TestInitiateAndGetSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, err := svc.InitiateSession("user-1", "device-1")
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	if session.SessionID == "" {
		t.Fatal("empty session id")
	}
	if session.Flow.Stage != StageServiceSelection {
		t.Errorf("stage = %q, want service selection", session.Flow.Stage)
	}

	loaded, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if loaded.UserID != "user-1" || loaded.DeviceID != "device-1" {
		t.Errorf("unexpected session: %+v", loaded)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.GetSession("nope"); err == nil {
		t.Fatal("expected error for unknown session")
	}
	if _, err := svc.GetSession(""); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestStartServiceMatchesProviders(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")

	session, err := svc.StartService(session.SessionID, "house-cleaning", "", false)
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	if session.Flow.ServiceID != catalog.ServiceCleaning {
		t.Errorf("serviceId = %q, want resolved alias", session.Flow.ServiceID)
	}
	if len(session.MatchedProviders) == 0 {
		t.Error("no providers matched for cleaning")
	}
}

func TestStartServicePrefillFromRecentOrder(t *testing.T) {
	svc, _, orders := newTestService(t)
	orders.recent = &models.BookingDraft{
		SelectedAddOns: []string{"inside-oven"},
		TipAmount:      20,
		ServiceDetails: map[string]any{
			"propertyType": "house",
			"address":      "4 Elm Street",
			"gateCode":     "9921#",
			"cleaningType": "deep",
		},
	}
	session, _ := svc.InitiateSession("user-1", "")
	session, err := svc.StartService(session.SessionID, catalog.ServiceCleaning, "", true)
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	form := session.Flow.Form
	if form.Address != "4 Elm Street" || form.CleaningType != "deep" {
		t.Errorf("prefill fields missing: %+v", form)
	}
	if form.GateCode != "" || form.TipAmount != 0 {
		t.Errorf("gate code or tip leaked from prefill: %q %v", form.GateCode, form.TipAmount)
	}
}

func TestStartServiceEditRestoresGateCode(t *testing.T) {
	svc, _, orders := newTestService(t)
	orders.drafts = []models.BookingDraft{{
		ID:            "bk-7",
		ScheduledDate: "2026-04-01",
		ScheduledTime: "10:00",
		TipAmount:     15,
		ServiceDetails: map[string]any{
			"propertyType": "apartment",
			"address":      "77 Birch Road",
			"gateCode":     "1234",
			"cleaningType": "basic",
		},
	}}
	session, _ := svc.InitiateSession("user-1", "")
	session, err := svc.StartService(session.SessionID, catalog.ServiceCleaning, "bk-7", false)
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	if session.Flow.Form.GateCode != "1234" || session.Flow.Form.TipAmount != 15 {
		t.Errorf("edit source did not restore gate code and tip: %+v", session.Flow.Form)
	}
}

func TestSelectProviderRejectsUnknown(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	session, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)

	if _, err := svc.SelectProvider(session.SessionID, "prov-bogus"); err == nil {
		t.Fatal("unknown provider accepted")
	}

	updated, err := svc.SelectProvider(session.SessionID, "prov-sparkle")
	if err != nil {
		t.Fatalf("SelectProvider: %v", err)
	}
	if updated.Flow.Form.ProviderName != "Sparkle Crew" {
		t.Errorf("provider name = %q", updated.Flow.Form.ProviderName)
	}
}

func TestAddToCartRequiresProvider(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)

	_, _, err := svc.AddToCart(session.SessionID, CartExitContinue)
	var perr *PolicyError
	if !errors.As(err, &perr) || perr.Code != "providerRequired" {
		t.Fatalf("expected providerRequired, got %v", err)
	}
}

func TestAddToCartContinueResetsFlow(t *testing.T) {
	svc, cart, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)
	advanceToLastStep(t, svc, session.SessionID)
	_, _ = svc.SelectProvider(session.SessionID, "prov-sparkle")

	updated, item, err := svc.AddToCart(session.SessionID, CartExitContinue)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if item.ID != "cart-1" || item.ServiceName != "Home Cleaning" {
		t.Errorf("unexpected cart item: %+v", item)
	}
	if item.Subtotal != 364 {
		t.Errorf("subtotal = %v, want 364", item.Subtotal)
	}
	if len(cart.items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(cart.items))
	}
	if updated.Flow.Stage != StageServiceSelection {
		t.Errorf("stage = %q, want reset to service selection", updated.Flow.Stage)
	}

	// The stored session was reset too.
	loaded, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("GetSession after continue: %v", err)
	}
	if loaded.Flow.ServiceID != "" {
		t.Errorf("stored flow kept service %q", loaded.Flow.ServiceID)
	}
}

func TestAddToCartGoToCartEndsSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)
	advanceToLastStep(t, svc, session.SessionID)
	_, _ = svc.SelectProvider(session.SessionID, "prov-sparkle")

	_, item, err := svc.AddToCart(session.SessionID, CartExitGoToCart)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if item == nil {
		t.Fatal("no cart item returned")
	}
	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Error("session survived go-to-cart exit")
	}
}

func TestAddToCartHonorsCartLimit(t *testing.T) {
	svc, cart, _ := newTestService(t)
	cart.items = make([]models.CartItem, 3)

	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)
	advanceToLastStep(t, svc, session.SessionID)
	_, _ = svc.SelectProvider(session.SessionID, "prov-sparkle")

	_, _, err := svc.AddToCart(session.SessionID, CartExitContinue)
	var perr *PolicyError
	if !errors.As(err, &perr) || perr.Code != "cartLimit" {
		t.Fatalf("expected cartLimit, got %v", err)
	}
	if len(cart.items) != 3 {
		t.Errorf("cart grew past the limit: %d", len(cart.items))
	}
}

func TestConfirmBeforeLastStepBlocked(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)

	_, err := svc.Confirm(session.SessionID, validCard())
	var perr *PolicyError
	if !errors.As(err, &perr) || perr.Code != "incompleteFlow" {
		t.Fatalf("expected incompleteFlow, got %v", err)
	}
}

func TestConfirmValidationFailureKeepsSession(t *testing.T) {
	svc, _, orders := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)
	advanceToLastStep(t, svc, session.SessionID)
	_, _ = svc.SelectProvider(session.SessionID, "prov-sparkle")

	in := validCard()
	in.CardNumber = "4111111111111112"
	in.CVV = ""
	_, err := svc.Confirm(session.SessionID, in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["cardNumber"]; !ok {
		t.Errorf("missing cardNumber error: %v", verr.Fields)
	}
	if len(orders.drafts) != 0 {
		t.Error("booking stored despite validation failure")
	}

	loaded, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("session gone after validation failure: %v", err)
	}
	if !loaded.Flow.Touched["cardNumber"] || !loaded.Flow.Touched["cvv"] {
		t.Errorf("failed fields not marked touched: %v", loaded.Flow.Touched)
	}
}

func TestConfirmStoresMaskedPaymentAndEndsSession(t *testing.T) {
	svc, _, orders := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	_, _ = svc.StartService(session.SessionID, catalog.ServiceCleaning, "", false)
	advanceToLastStep(t, svc, session.SessionID)
	_, _ = svc.SelectProvider(session.SessionID, "prov-sparkle")

	draft, err := svc.Confirm(session.SessionID, validCard())
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if draft.Status != "confirmed" {
		t.Errorf("status = %q", draft.Status)
	}
	if draft.Payment.Brand != "Visa" || draft.Payment.Last4 != "1111" {
		t.Errorf("unexpected masked payment: %+v", draft.Payment)
	}
	if draft.Pricing.TotalPrice != 364 {
		t.Errorf("total = %v, want 364", draft.Pricing.TotalPrice)
	}
	if len(orders.drafts) != 1 {
		t.Fatalf("stored %d drafts, want 1", len(orders.drafts))
	}
	for key := range orders.drafts[0].ServiceDetails {
		if key == "cardNumber" || key == "cvv" || key == "expiry" {
			t.Errorf("raw payment field %q persisted", key)
		}
	}
	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Error("session survived confirmation")
	}
}

func TestCancelSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, _ := svc.InitiateSession("user-1", "")
	if err := svc.CancelSession(session.SessionID); err != nil {
		t.Fatalf("CancelSession: %v", err)
	}
	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Error("session survived cancellation")
	}
}

func TestGetAvailableServices(t *testing.T) {
	svc, _, _ := newTestService(t)
	services := svc.GetAvailableServices()
	if len(services) != 14 {
		t.Errorf("listed %d services, want 14", len(services))
	}
}
