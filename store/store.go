package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pricewise/models"
)

// Store holds the in-process reference data: the product catalog, the sales
// log, competitor price observations and the smartphone dataset. It is
// constructed once at startup and passed to whichever layer needs it.
// Durability is the database's job; the store only serves reads and
// process-lifetime appends.
type Store struct {
	mu               sync.RWMutex
	products         []models.Product
	sales            []models.ProductSale
	competitorPrices []models.CompetitorPrice
	phones           []models.PhoneRecord
	predictions      map[string]models.PricePrediction
}

// New returns an empty store.
func New() *Store {
	return &Store{predictions: make(map[string]models.PricePrediction)}
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks a product up by its id.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct appends a product to the catalog, assigning an id and creation
// time when missing. Visible to subsequent reads for the process lifetime.
func (s *Store) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// Sales returns a copy of the full sales log.
func (s *Store) Sales() []models.ProductSale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProductSale, len(s.sales))
	copy(out, s.sales)
	return out
}

// SalesByProduct returns the sales rows for one product.
func (s *Store) SalesByProduct(productID string) []models.ProductSale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProductSale
	for _, sale := range s.sales {
		if sale.ProductID == productID {
			out = append(out, sale)
		}
	}
	return out
}

// AddSale appends a sale row.
func (s *Store) AddSale(sale models.ProductSale) models.ProductSale {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
	return sale
}

// CompetitorPricesByProduct returns the competitor observations for a product.
func (s *Store) CompetitorPricesByProduct(productID string) []models.CompetitorPrice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CompetitorPrice
	for _, cp := range s.competitorPrices {
		if cp.ProductID == productID {
			out = append(out, cp)
		}
	}
	return out
}

// AddCompetitorPrice appends a competitor observation.
func (s *Store) AddCompetitorPrice(cp models.CompetitorPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.competitorPrices = append(s.competitorPrices, cp)
}

// AverageCompetitorPrice is the arithmetic mean of competitor prices for a
// product, 0 when there are no observations.
func (s *Store) AverageCompetitorPrice(productID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	count := 0
	for _, cp := range s.competitorPrices {
		if cp.ProductID == productID {
			total += cp.Price
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// TopSellers returns up to n products ranked by revenue (sum of price *
// quantity over the sales log), descending. Products with equal revenue keep
// catalog insertion order. Fewer than n products returns them all.
func (s *Store) TopSellers(n int) []models.ProductSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.ProductSummary, 0, len(s.products))
	for _, p := range s.products {
		summary := models.ProductSummary{ProductID: p.ID, ProductName: p.Name}
		for _, sale := range s.sales {
			if sale.ProductID == p.ID {
				summary.QuantitySold += sale.Quantity
				summary.Revenue += sale.Price * float64(sale.Quantity)
			}
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].Revenue > summaries[b].Revenue
	})

	if n > 0 && n < len(summaries) {
		summaries = summaries[:n]
	}
	return summaries
}

// SalesTrend groups sales by calendar day, ascending. productID and start
// filter the log when set; an empty productID means all products.
func (s *Store) SalesTrend(productID string, start *time.Time) []models.TrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := make(map[string]*models.TrendPoint)
	for _, sale := range s.sales {
		if productID != "" && sale.ProductID != productID {
			continue
		}
		if start != nil && sale.Date.Before(*start) {
			continue
		}
		day := sale.Date.Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &models.TrendPoint{Date: day}
			byDay[day] = point
		}
		point.Quantity += sale.Quantity
		point.Revenue += sale.Price * float64(sale.Quantity)
	}

	out := make([]models.TrendPoint, 0, len(byDay))
	for _, point := range byDay {
		out = append(out, *point)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out
}

// Phones returns a copy of the smartphone reference dataset.
func (s *Store) Phones() []models.PhoneRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PhoneRecord, len(s.phones))
	copy(out, s.phones)
	return out
}

// AddPhoneRecords appends dataset rows (seeding and CSV import).
func (s *Store) AddPhoneRecords(records ...models.PhoneRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phones = append(s.phones, records...)
}

// SavePrediction stores the prediction for a product, replacing any
// previous one. At most one prediction exists per product.
func (s *Store) SavePrediction(p models.PricePrediction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions[p.ProductID] = p
}

// PredictionByProduct returns the current prediction for a product.
func (s *Store) PredictionByProduct(productID string) (models.PricePrediction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.predictions[productID]
	return p, ok
}

// FindPhoneModel matches "Brand Model" case-insensitively against the
// dataset. The second return is false when no record matches; callers must
// not compute on a missing record.
func (s *Store) FindPhoneModel(name string) (models.PhoneRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.phones {
		if strings.ToLower(r.FullName()) == needle {
			return r, true
		}
	}
	return models.PhoneRecord{}, false
}
