package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nestly/models"
	"nestly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard session lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession creates a new wizard session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		UserID   string `json:"userId" binding:"required"`
		DeviceID string `json:"deviceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.InitiateSession(input.UserID, input.DeviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// StartService selects a service and re-initializes the form.
func (h *BookingHandler) StartService(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		ServiceID     string `json:"serviceId" binding:"required"`
		EditBookingID string `json:"editBookingId"`
		Prefill       bool   `json:"prefill"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.StartService(sessionID, input.ServiceID, input.EditBookingID, input.Prefill)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// UpdateForm patches the wizard form and returns the recomputed state.
func (h *BookingHandler) UpdateForm(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var update models.FormUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.ApplyUpdate(sessionID, update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// NextStep advances the wizard. A blocked advance returns the unchanged
// session; the client reads canProceed to know why.
func (h *BookingHandler) NextStep(c *gin.Context) {
	session, err := h.Service.Next(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// PrevStep steps backward.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	session, err := h.Service.Back(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// SelectProvider records the chosen provider.
func (h *BookingHandler) SelectProvider(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectProvider(sessionID, input.ProviderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

// AddToCart persists the configuration as a cart item.
func (h *BookingHandler) AddToCart(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Exit string `json:"exit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	exit := booking.CartExitContinue
	if input.Exit == string(booking.CartExitGoToCart) {
		exit = booking.CartExitGoToCart
	}

	session, item, err := h.Service.AddToCart(sessionID, exit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  sessionPayload(session),
		"cartItem": item,
	})
}

// ConfirmBooking finalizes the booking with the payment input supplied
// in this request only.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Payment models.PaymentInput `json:"payment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Service.Confirm(sessionID, input.Payment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": draft})
}

// CancelSession abandons the wizard.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload(session))
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var policyErr *booking.PolicyError
	if errors.As(err, &policyErr) {
		c.JSON(http.StatusConflict, gin.H{"error": policyErr.Message, "code": policyErr.Code})
		return
	}
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "payment validation failed", "fields": validationErr.Fields})
		return
	}
	if strings.Contains(err.Error(), "not found or expired") || strings.Contains(err.Error(), "not initialized") {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	h.Logger.Error("booking handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// sessionPayload shapes the session for clients, exposing the derived
// values alongside the step gate.
func sessionPayload(s *booking.Session) gin.H {
	return gin.H{
		"sessionId":        s.SessionID,
		"stage":            s.Flow.Stage,
		"serviceId":        s.Flow.ServiceID,
		"step":             s.Flow.Step,
		"totalSteps":       s.Flow.TotalSteps,
		"form":             s.Flow.Form,
		"pricing":          s.Flow.Pricing,
		"estimatedHours":   s.Flow.EstimatedHours,
		"suggestions":      s.Flow.Suggestions,
		"canProceed":       s.Flow.CanProceed(),
		"touched":          s.Flow.Touched,
		"matchedProviders": s.MatchedProviders,
	}
}
