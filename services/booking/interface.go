package booking

import (
	"time"

	"nestly/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	cartRepo "nestly/database/repository/cart"
	orderRepo "nestly/database/repository/order"
)

// CartExit selects what happens after a successful add-to-cart.
type CartExit string

const (
	// CartExitContinue returns the wizard to service selection.
	CartExitContinue CartExit = "continue"
	// CartExitGoToCart leaves the wizard entirely.
	CartExitGoToCart CartExit = "go-to-cart"
)

// Session is the wizard state held in Redis between requests, one per
// in-progress booking. Raw payment fields are never part of it.
type Session struct {
	SessionID        string            `json:"sessionId"`
	UserID           string            `json:"userId"`
	DeviceID         string            `json:"deviceId,omitempty"`
	Flow             FlowState         `json:"flow"`
	MatchedProviders []models.Provider `json:"matchedProviders,omitempty"`
}

// BookingSessionService defines the interface for driving a stateful
// booking wizard session.
type BookingSessionService interface {
	InitiateSession(userID, deviceID string) (*Session, error)
	StartService(sessionID, serviceID, editBookingID string, prefill bool) (*Session, error)
	ApplyUpdate(sessionID string, update models.FormUpdate) (*Session, error)
	Next(sessionID string) (*Session, error)
	Back(sessionID string) (*Session, error)
	SelectProvider(sessionID, providerID string) (*Session, error)
	AddToCart(sessionID string, exit CartExit) (*Session, *models.CartItem, error)
	Confirm(sessionID string, payment models.PaymentInput) (*models.BookingDraft, error)
	CancelSession(sessionID string) error
	GetSession(sessionID string) (*Session, error)
	GetAvailableServices() []models.ServiceMetadata
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Cache      *redis.Client
	CartRepo   cartRepo.CartRepository
	OrderRepo  orderRepo.OrderRepository
	Providers  ProviderDirectory
	TaskClient *asynq.Client
	SessionTTL time.Duration
	CartMax    int

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
