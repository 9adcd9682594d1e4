package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"nestly/models"
	"nestly/services/catalog"
	"nestly/services/payment"
	"nestly/services/tasks"
	"nestly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession creates a new wizard session in service-selection
// stage, assigns it a unique SessionID, and stores it in Redis.
func (s *DefaultBookingSessionService) InitiateSession(userID, deviceID string) (*Session, error) {
	session := &Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		DeviceID:  deviceID,
		Flow:      NewFlow(),
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// StartService chooses a service for the session and re-initializes the
// form. An edit booking id takes priority as the init source, then the
// user's most recent order for the service when prefill is requested,
// then defaults. Matched providers for the review step are attached here.
func (s *DefaultBookingSessionService) StartService(sessionID, serviceID, editBookingID string, prefill bool) (*Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	var src InitSource
	ctx := context.Background()
	if editBookingID != "" {
		draft, err := s.OrderRepo.GetByID(ctx, editBookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to load booking for editing: %w", err)
		}
		form := reconstructForm(*draft)
		src.Edit = &form
	} else if prefill {
		if id, ok := catalog.Resolve(serviceID); ok {
			draft, err := s.OrderRepo.GetRecentByUser(ctx, session.UserID, id)
			if err != nil {
				return nil, fmt.Errorf("failed to load recent order: %w", err)
			}
			src.Prefill = draft
		}
	}

	session.Flow = session.Flow.Start(serviceID, src)
	if session.Flow.Stage == StageStep && s.Providers != nil {
		providers, err := s.Providers.MatchProviders(session.Flow.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to match providers: %w", err)
		}
		session.MatchedProviders = providers
	}

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ApplyUpdate patches the form and recomputes derived values. The stored
// session only changes when the save succeeds.
func (s *DefaultBookingSessionService) ApplyUpdate(sessionID string, update models.FormUpdate) (*Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	session.Flow = session.Flow.Apply(update, s.now())
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the wizard one step when the current step's required
// fields allow it. A blocked advance is not an error; the session comes
// back unchanged and the caller reads CanProceed off the flow.
func (s *DefaultBookingSessionService) Next(sessionID string) (*Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	next, ok := session.Flow.Next()
	if !ok {
		return session, nil
	}
	session.Flow = next
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps the wizard backward; always allowed above step one.
func (s *DefaultBookingSessionService) Back(sessionID string) (*Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	session.Flow = session.Flow.Back()
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectProvider records the chosen provider after verifying it is among
// the session's matched providers.
func (s *DefaultBookingSessionService) SelectProvider(sessionID, providerID string) (*Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	var selected models.Provider
	found := false
	for _, p := range session.MatchedProviders {
		if p.ID == providerID {
			selected = p
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("selected provider (%s) is not in the matched providers list", providerID)
	}

	session.Flow = session.Flow.SelectProvider(selected)
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddToCart persists the current configuration as a cart line item, then
// either resets the wizard to service selection (continue) or ends the
// session (go-to-cart). A provider must have been selected, and the
// domain-policy gates run at this moment, not earlier. If the cart
// collaborator fails, the stored session is left untouched so the user
// can retry.
func (s *DefaultBookingSessionService) AddToCart(sessionID string, exit CartExit) (*Session, *models.CartItem, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Flow.Stage != StageStep {
		return nil, nil, NewPolicyError("noActiveService", "no service is being configured")
	}
	if session.Flow.Form.ProviderID == "" {
		return nil, nil, NewPolicyError("providerRequired", "select a provider before adding to cart")
	}

	ctx := context.Background()
	cartCount, err := s.CartRepo.CountByUser(ctx, session.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check cart: %w", err)
	}
	if err := checkDomainGates(session.Flow.ServiceID, session.Flow.Form, s.now(), cartCount, s.CartMax); err != nil {
		return nil, nil, err
	}

	item := s.buildCartItem(session)
	itemID, err := s.CartRepo.Create(ctx, item)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	item.ID = itemID

	if exit == CartExitGoToCart {
		if err := s.CancelSession(sessionID); err != nil {
			utils.GetLogger().Warn("failed to clear session after cart exit", zap.Error(err))
		}
		session.Flow = session.Flow.Abandon()
		return session, &item, nil
	}

	session.Flow = session.Flow.Reset()
	session.MatchedProviders = nil
	if err := s.saveSession(session); err != nil {
		return nil, nil, err
	}
	return session, &item, nil
}

// Confirm finalizes the booking from the last wizard step. The payment
// input lives only inside this call: on success the booking stores its
// masked projection and the session is deleted; on validation failure
// the affected fields are marked touched and the flow stays put.
func (s *DefaultBookingSessionService) Confirm(sessionID string, in models.PaymentInput) (*models.BookingDraft, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	flow := session.Flow
	if flow.Stage != StageStep || flow.Step != flow.TotalSteps {
		return nil, NewPolicyError("incompleteFlow", "complete all booking steps before confirming")
	}
	if !flow.CanProceed() {
		return nil, NewPolicyError("missingFields", "fill in the required fields before confirming")
	}
	if flow.Form.ProviderID == "" {
		return nil, NewPolicyError("providerRequired", "select a provider before confirming")
	}
	if err := checkDomainGates(flow.ServiceID, flow.Form, s.now(), 0, s.CartMax); err != nil {
		return nil, err
	}

	if fieldErrs := payment.ValidateInput(in); len(fieldErrs) > 0 {
		if flow.Touched == nil {
			flow.Touched = make(map[string]bool)
		}
		for field := range fieldErrs {
			flow.Touched[field] = true
		}
		session.Flow = flow
		if err := s.saveSession(session); err != nil {
			return nil, err
		}
		return nil, &ValidationError{Fields: fieldErrs}
	}

	cfg, _ := catalog.GetConfig(flow.ServiceID)
	draft := models.BookingDraft{
		ID:             uuid.New().String(),
		UserID:         session.UserID,
		ServiceID:      flow.ServiceID,
		ServiceName:    cfg.Title,
		ProviderID:     flow.Form.ProviderID,
		ProviderName:   flow.Form.ProviderName,
		ScheduledDate:  flow.Form.PreferredDate,
		ScheduledTime:  flow.Form.TimePreference,
		Duration:       flow.EstimatedHours,
		Pricing:        flow.Pricing,
		SelectedAddOns: append([]string(nil), flow.Form.SelectedAddOns...),
		Comments:       flow.Form.SpecialRequests,
		TipAmount:      flow.Form.TipAmount,
		Payment:        payment.Mask(in),
		ServiceDetails: detailsBag(flow.Form),
		Status:         "confirmed",
	}

	ctx := context.Background()
	if _, err := s.OrderRepo.Create(ctx, draft); err != nil {
		// Stored session is untouched; the user may retry.
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	if s.TaskClient != nil {
		task, err := tasks.NewBookingConfirmedTask(draft)
		if err == nil {
			_, err = s.TaskClient.Enqueue(task)
		}
		if err != nil {
			utils.GetLogger().Warn("failed to enqueue confirmation dispatch", zap.Error(err))
		}
	}

	if err := s.CancelSession(sessionID); err != nil {
		utils.GetLogger().Warn("failed to clear session after confirm", zap.Error(err))
	}
	return &draft, nil
}

// CancelSession discards the wizard session and everything in it.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// GetSession returns the stored session.
func (s *DefaultBookingSessionService) GetSession(sessionID string) (*Session, error) {
	return s.loadSession(sessionID)
}

// GetAvailableServices lists every bookable service's metadata.
func (s *DefaultBookingSessionService) GetAvailableServices() []models.ServiceMetadata {
	return catalog.ListServices()
}

func (s *DefaultBookingSessionService) buildCartItem(session *Session) models.CartItem {
	flow := session.Flow
	cfg, _ := catalog.GetConfig(flow.ServiceID)
	return models.CartItem{
		UserID:         session.UserID,
		ServiceID:      flow.ServiceID,
		ServiceName:    cfg.Title,
		ProviderID:     flow.Form.ProviderID,
		ProviderName:   flow.Form.ProviderName,
		ScheduledDate:  flow.Form.PreferredDate,
		ScheduledTime:  flow.Form.TimePreference,
		Duration:       flow.EstimatedHours,
		BasePrice:      flow.Pricing.BasePrice,
		AddOnsPrice:    flow.Pricing.AddOnsPrice,
		Subtotal:       flow.Pricing.TotalPrice,
		SelectedAddOns: append([]string(nil), flow.Form.SelectedAddOns...),
		Comments:       flow.Form.SpecialRequests,
		TipAmount:      flow.Form.TipAmount,
		ServiceDetails: detailsBag(flow.Form),
	}
}

func (s *DefaultBookingSessionService) loadSession(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("booking not initialized")
	}
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, session.SessionID, data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
