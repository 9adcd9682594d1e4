package models

// PricingBreakdown is the derived price for the current form state. It is
// recomputed from scratch on every relevant form change and never mutated
// in place. TotalPrice is clamped at zero.
type PricingBreakdown struct {
	BasePrice         float64 `json:"basePrice"`
	AddOnsPrice       float64 `json:"addOnsPrice"`
	MaterialsDiscount float64 `json:"materialsDiscount"`
	RecurringDiscount float64 `json:"recurringDiscount"`
	TimeDiscount      float64 `json:"timeDiscount"`
	TotalPrice        float64 `json:"totalPrice"`
}
