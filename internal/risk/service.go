// Package risk tracks PV01 interest-rate risk per product and rolls it up
// into bucketed sectors. PV01 coefficients come from a static per-instrument
// table; a product missing from the table carries zero risk.
package risk

import (
	"github.com/shopspring/decimal"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service owns the per-product risk store.
type Service struct {
	store     *service.Store[model.PV01]
	listeners service.Registry[model.PV01]
	table     map[string]decimal.Decimal
}

// New creates the risk service over a static PV01 coefficient table keyed by
// product identifier.
func New(table map[string]decimal.Decimal) *Service {
	return &Service{
		store: service.NewStore[model.PV01](),
		table: table,
	}
}

// GetData returns the risk entry for a product.
func (s *Service) GetData(key string) (model.PV01, bool) {
	return s.store.Get(key)
}

// OnMessage upserts a risk entry and fans it out to all listeners.
func (s *Service) OnMessage(v model.PV01) {
	s.store.Put(v.Product.CUSIP, v)
	s.listeners.NotifyAdd(v)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.PV01]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.PV01] {
	return s.listeners.Listeners()
}

// AddPosition folds a position snapshot into the product's risk entry. The
// first sighting of a product inserts an entry with the table coefficient;
// later sightings add the snapshot's aggregate quantity onto the entry
// without touching the coefficient.
func (s *Service) AddPosition(p model.Position) {
	entry, ok := s.store.Get(p.Product.CUSIP)
	if !ok {
		entry = model.PV01{
			Product: p.Product,
			Value:   s.table[p.Product.CUSIP],
		}
	}
	entry.Quantity += p.Aggregate()
	s.OnMessage(entry)
}

// GetBucketedRisk sums pv01 x quantity and the quantities over the sector's
// products present in the risk store. Products never risked are skipped.
func (s *Service) GetBucketedRisk(sector model.BucketedSector) model.SectorRisk {
	risk := model.SectorRisk{Sector: sector}
	for _, product := range sector.Products {
		entry, ok := s.store.Get(product.CUSIP)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(entry.Quantity)
		risk.Value = risk.Value.Add(entry.Value.Mul(qty))
		risk.Quantity += entry.Quantity
	}
	return risk
}

// Listener adapts the service to a position listener.
func (s *Service) Listener() service.Listener[model.Position] {
	return service.AddFunc[model.Position](s.AddPosition)
}
