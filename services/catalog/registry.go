package catalog

import (
	"sort"

	"nestly/models"
)

// Resolve normalizes a raw service-selection string to its canonical id.
// Unknown strings report ok=false; the caller decides what that means
// (the pricing engine renders a neutral zero state, never an error).
func Resolve(raw string) (string, bool) {
	id, ok := serviceAliases[raw]
	return id, ok
}

// GetConfig returns the static config for a service id, resolving aliases
// first. The returned pointer refers to the shared immutable table and
// must not be mutated.
func GetConfig(serviceID string) (*models.ServiceConfig, bool) {
	id, ok := Resolve(serviceID)
	if !ok {
		return nil, false
	}
	cfg, ok := serviceConfigs[id]
	if !ok {
		return nil, false
	}
	return &cfg, true
}

// GetAddOns returns the add-on catalog for a service, in catalog order.
// Unknown services yield an empty catalog.
func GetAddOns(serviceID string) []models.AddOn {
	cfg, ok := GetConfig(serviceID)
	if !ok {
		return nil
	}
	return cfg.AddOns
}

// ListServices returns metadata for every bookable service, sorted by id
// so the listing is stable across calls.
func ListServices() []models.ServiceMetadata {
	out := make([]models.ServiceMetadata, 0, len(serviceConfigs))
	for _, cfg := range serviceConfigs {
		out = append(out, models.ServiceMetadata{
			ID:       cfg.ID,
			Title:    cfg.Title,
			Icon:     cfg.Icon,
			Category: cfg.Category,
			Steps:    cfg.Steps,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
