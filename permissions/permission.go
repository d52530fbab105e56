package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Portal keys.
const (
	PortalFrontOffice    = "front_office"
	PortalFoodBeverage   = "food_beverage"
	PortalAccounts       = "accounts"
	PortalMasterData     = "master_data"
	PortalAdministration = "administration"
)

// Section keys.
const (
	SectionBookings     = "bookings"
	SectionRooms        = "rooms"
	SectionCheckout     = "checkout"
	SectionFolio        = "folio"
	SectionHousekeeping = "housekeeping"
	SectionLocks        = "locks"
	SectionFoodOrders   = "food_orders"
	SectionBilling      = "billing"
	SectionPayments     = "payments"
	SectionExports      = "exports"
	SectionCompanies    = "companies"
	SectionTravelAgents = "travel_agents"
	SectionAddons       = "addons"
	SectionOffers       = "offers"
	SectionActivities   = "activities"
	SectionUsers        = "users"
	SectionAuditLogs    = "audit_logs"
)

type Section struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Portal struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Sections []Section `json:"sections"`
}

// Catalog lists every portal and section the admin panel knows about, plus per-role starting access.
type Catalog struct {
	Portals  []Portal                     `json:"portals"`
	Defaults map[Role]map[string][]string `json:"defaults"`
}

func (c *Catalog) FindPortal(key string) (Portal, bool) {
	idx := slices.IndexFunc(c.Portals, func(p Portal) bool {
		return p.Key == key
	})

	if idx == -1 {
		return Portal{}, false
	}

	return c.Portals[idx], true
}

func (c *Catalog) HasSection(portal, section string) bool {
	p, ok := c.FindPortal(portal)
	if !ok {
		return false
	}

	return slices.ContainsFunc(p.Sections, func(s Section) bool {
		return s.Key == section
	})
}

// DefaultAccess is the permission map a freshly assigned role starts with.
func (c *Catalog) DefaultAccess(role Role) AccessMap {
	access := AccessMap{}

	for portal, sections := range c.Defaults[role] {
		for _, section := range sections {
			access = access.WithSection(portal, section, AccessReadWrite)
		}
	}

	return access
}

var (
	catalog     *Catalog
	catalogOnce sync.Once
)

func Get() *Catalog {
	catalogOnce.Do(func() {
		var loaded Catalog

		if err := json.Unmarshal(permissionsData, &loaded); err != nil {
			log.Err(err).Msg("Failed to decode embedded permissions")

			loaded = Catalog{}
		}

		log.Info().Int("portals", len(loaded.Portals)).Msg("Successfully loaded embedded permissions")

		catalog = &loaded
	})

	return catalog
}
