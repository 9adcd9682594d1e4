package booking

import (
	"nestly/models"
	"nestly/services/catalog"
)

// ProviderDirectory is the collaborator supplying providers for the
// review step. Provider descriptors are opaque to the pricing engine.
type ProviderDirectory interface {
	MatchProviders(serviceID string) ([]models.Provider, error)
}

// StaticProviderDirectory serves a fixed in-memory directory, keyed by
// canonical service id. Suitable for development and tests; production
// swaps in a directory backed by the provider platform.
type StaticProviderDirectory struct{}

var staticProviders = map[string][]models.Provider{
	catalog.ServiceCleaning: {
		{ID: "prov-sparkle", Name: "Sparkle Crew", Rating: 4.8, ReviewCount: 214, Specializations: []string{"deep", "move-in-out"}, Verified: true},
		{ID: "prov-freshnest", Name: "FreshNest Cleaning", Rating: 4.6, ReviewCount: 131, Verified: true},
	},
	catalog.ServiceGardenCare: {
		{ID: "prov-greenline", Name: "Greenline Gardens", Rating: 4.7, ReviewCount: 98, Specializations: []string{"overgrown"}, Verified: true},
	},
	catalog.ServicePlumbing: {
		{ID: "prov-pipewise", Name: "PipeWise", Rating: 4.9, ReviewCount: 305, Specializations: []string{"emergency"}, Verified: true},
		{ID: "prov-drainpro", Name: "DrainPro", Rating: 4.5, ReviewCount: 87, Verified: false},
	},
	catalog.ServiceElectrical: {
		{ID: "prov-voltcraft", Name: "VoltCraft Electrics", Rating: 4.8, ReviewCount: 176, Verified: true},
	},
	catalog.ServiceChefCatering: {
		{ID: "prov-tableside", Name: "Tableside Chefs", Rating: 4.9, ReviewCount: 142, Specializations: []string{"italian", "mediterranean"}, Verified: true},
	},
}

// fallbackProviders backs services without a dedicated roster.
var fallbackProviders = []models.Provider{
	{ID: "prov-allhands", Name: "AllHands Services", Rating: 4.4, ReviewCount: 63, Verified: true},
}

func (d *StaticProviderDirectory) MatchProviders(serviceID string) ([]models.Provider, error) {
	id, ok := catalog.Resolve(serviceID)
	if !ok {
		return nil, nil
	}
	if provs, ok := staticProviders[id]; ok {
		return provs, nil
	}
	return fallbackProviders, nil
}
