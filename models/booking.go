package models

import "time"

// CartItem is the boundary record handed to the cart collaborator when
// the user adds a configured service to their cart. ServiceDetails is an
// opaque bag of the service-specific form fields kept for rebooking.
type CartItem struct {
	ID             string           `bson:"id" json:"id"`
	UserID         string           `bson:"userId" json:"userId"`
	ServiceID      string           `bson:"serviceId" json:"serviceId"`
	ServiceName    string           `bson:"serviceName" json:"serviceName"`
	ProviderID     string           `bson:"providerId,omitempty" json:"providerId,omitempty"`
	ProviderName   string           `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ScheduledDate  string           `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime  string           `bson:"scheduledTime" json:"scheduledTime"`
	Duration       float64          `bson:"duration" json:"duration"` // hours
	BasePrice      float64          `bson:"basePrice" json:"basePrice"`
	AddOnsPrice    float64          `bson:"addOnsPrice" json:"addOnsPrice"`
	Subtotal       float64          `bson:"subtotal" json:"subtotal"`
	SelectedAddOns []string         `bson:"selectedAddOns,omitempty" json:"selectedAddOns,omitempty"`
	Comments       string           `bson:"comments,omitempty" json:"comments,omitempty"`
	TipAmount      float64          `bson:"tipAmount,omitempty" json:"tipAmount,omitempty"`
	ServiceDetails map[string]any   `bson:"serviceDetails,omitempty" json:"serviceDetails,omitempty"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
}

// BookingDraft is the finalized booking record produced when the wizard
// confirms. Payment is reduced to its masked projection only.
type BookingDraft struct {
	ID             string           `bson:"id" json:"id"`
	UserID         string           `bson:"userId" json:"userId"`
	ServiceID      string           `bson:"serviceId" json:"serviceId"`
	ServiceName    string           `bson:"serviceName" json:"serviceName"`
	ProviderID     string           `bson:"providerId,omitempty" json:"providerId,omitempty"`
	ProviderName   string           `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ScheduledDate  string           `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime  string           `bson:"scheduledTime" json:"scheduledTime"`
	Duration       float64          `bson:"duration" json:"duration"`
	Pricing        PricingBreakdown `bson:"pricing" json:"pricing"`
	SelectedAddOns []string         `bson:"selectedAddOns,omitempty" json:"selectedAddOns,omitempty"`
	Comments       string           `bson:"comments,omitempty" json:"comments,omitempty"`
	TipAmount      float64          `bson:"tipAmount,omitempty" json:"tipAmount,omitempty"`
	Payment        MaskedPayment    `bson:"payment" json:"payment"`
	ServiceDetails map[string]any   `bson:"serviceDetails,omitempty" json:"serviceDetails,omitempty"`
	Status         string           `bson:"status" json:"status"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
}

// Provider is the descriptor selected during the review step. The
// pricing engine treats it as opaque data.
type Provider struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Rating          float64  `bson:"rating" json:"rating"`
	ReviewCount     int      `bson:"reviewCount" json:"reviewCount"`
	Specializations []string `bson:"specializations,omitempty" json:"specializations,omitempty"`
	Verified        bool     `bson:"verified" json:"verified"`
}
