package store

import (
	"time"

	"pricewise/models"
)

// NewSeeded returns a store loaded with the built-in smartphone catalog,
// a sales history spread over the last two months, competitor observations
// and the reference dataset the resell and KNN flows match against.
func NewSeeded() *Store {
	s := New()
	now := time.Now()

	products := []models.Product{
		{ID: "p-001", Name: "Apple iPhone 15", BasePrice: 999, Category: "Flagship", Inventory: 42, Cost: 620, Seasonality: 0.8,
			Specifications: map[string]string{"ram": "6GB", "storage": "128GB", "screen_size": "6.1 inches", "battery": "3349mAh", "camera": "48MP"}},
		{ID: "p-002", Name: "Samsung Galaxy S24", BasePrice: 859, Category: "Flagship", Inventory: 38, Cost: 540, Seasonality: 0.7,
			Specifications: map[string]string{"ram": "8GB", "storage": "256GB", "screen_size": "6.2 inches", "battery": "4000mAh", "camera": "50MP"}},
		{ID: "p-003", Name: "Google Pixel 8", BasePrice: 699, Category: "Flagship", Inventory: 25, Cost: 430, Seasonality: 0.5,
			Specifications: map[string]string{"ram": "8GB", "storage": "128GB", "screen_size": "6.2 inches", "battery": "4575mAh", "camera": "50MP"}},
		{ID: "p-004", Name: "Xiaomi Redmi Note 13", BasePrice: 299, Category: "Budget", Inventory: 120, Cost: 190, Seasonality: 0.4,
			Specifications: map[string]string{"ram": "8GB", "storage": "256GB", "screen_size": "6.67 inches", "battery": "5000mAh", "camera": "108MP"}},
		{ID: "p-005", Name: "OnePlus 12", BasePrice: 799, Category: "Flagship", Inventory: 18, Cost: 500, Seasonality: 0.6,
			Specifications: map[string]string{"ram": "12GB", "storage": "256GB", "screen_size": "6.82 inches", "battery": "5400mAh", "camera": "50MP"}},
		{ID: "p-006", Name: "Samsung Galaxy A55", BasePrice: 449, Category: "Mid-range", Inventory: 64, Cost: 280, Seasonality: 0.3,
			Specifications: map[string]string{"ram": "8GB", "storage": "128GB", "screen_size": "6.6 inches", "battery": "5000mAh", "camera": "50MP"}},
	}
	for _, p := range products {
		p.CreatedAt = now.AddDate(0, -3, 0)
		s.AddProduct(p)
	}

	// Sales history: a few transactions per week over the last ~8 weeks.
	sales := []struct {
		productID string
		daysAgo   int
		quantity  int
		price     float64
	}{
		{"p-001", 55, 3, 999}, {"p-001", 41, 2, 999}, {"p-001", 30, 4, 979},
		{"p-001", 18, 2, 979}, {"p-001", 6, 5, 949}, {"p-001", 2, 3, 949},
		{"p-002", 52, 2, 859}, {"p-002", 37, 3, 859}, {"p-002", 21, 2, 829},
		{"p-002", 9, 4, 829}, {"p-002", 3, 2, 829},
		{"p-003", 48, 1, 699}, {"p-003", 33, 2, 699}, {"p-003", 15, 3, 679},
		{"p-003", 4, 2, 679},
		{"p-004", 50, 8, 299}, {"p-004", 36, 6, 299}, {"p-004", 24, 10, 289},
		{"p-004", 12, 7, 289}, {"p-004", 1, 9, 279},
		{"p-005", 44, 1, 799}, {"p-005", 20, 2, 799}, {"p-005", 7, 1, 779},
		{"p-006", 40, 3, 449}, {"p-006", 16, 4, 439}, {"p-006", 5, 3, 439},
	}
	for _, row := range sales {
		s.AddSale(models.ProductSale{
			ProductID: row.productID,
			Date:      now.AddDate(0, 0, -row.daysAgo),
			Quantity:  row.quantity,
			Price:     row.price,
		})
	}

	// Competitor observations. p-006 deliberately has none.
	competitors := []models.CompetitorPrice{
		{ProductID: "p-001", CompetitorName: "TechDepot", Price: 989, Date: now.AddDate(0, 0, -5)},
		{ProductID: "p-001", CompetitorName: "MobileHub", Price: 1009, Date: now.AddDate(0, 0, -3)},
		{ProductID: "p-002", CompetitorName: "TechDepot", Price: 849, Date: now.AddDate(0, 0, -6)},
		{ProductID: "p-002", CompetitorName: "PhonePlanet", Price: 869, Date: now.AddDate(0, 0, -2)},
		{ProductID: "p-003", CompetitorName: "MobileHub", Price: 689, Date: now.AddDate(0, 0, -4)},
		{ProductID: "p-004", CompetitorName: "PhonePlanet", Price: 305, Date: now.AddDate(0, 0, -7)},
		{ProductID: "p-005", CompetitorName: "TechDepot", Price: 789, Date: now.AddDate(0, 0, -1)},
	}
	for _, cp := range competitors {
		s.AddCompetitorPrice(cp)
	}

	s.AddPhoneRecords(
		models.PhoneRecord{Brand: "Apple", Model: "iPhone 15", LaunchPrice: 999, DemandLevel: 0.9, RAM: "6GB", Storage: "128GB", ScreenSize: "6.1 inches", Battery: "3349mAh", Camera: "48MP"},
		models.PhoneRecord{Brand: "Apple", Model: "iPhone 13", LaunchPrice: 799, DemandLevel: 0.75, RAM: "4GB", Storage: "128GB", ScreenSize: "6.1 inches", Battery: "3240mAh", Camera: "12MP"},
		models.PhoneRecord{Brand: "Apple", Model: "iPhone 11", LaunchPrice: 699, DemandLevel: 0.5, RAM: "4GB", Storage: "64GB", ScreenSize: "6.1 inches", Battery: "3110mAh", Camera: "12MP"},
		models.PhoneRecord{Brand: "Samsung", Model: "Galaxy S24", LaunchPrice: 859, DemandLevel: 0.8, RAM: "8GB", Storage: "256GB", ScreenSize: "6.2 inches", Battery: "4000mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "Samsung", Model: "Galaxy S21", LaunchPrice: 799, DemandLevel: 0.45, RAM: "8GB", Storage: "128GB", ScreenSize: "6.2 inches", Battery: "4000mAh", Camera: "64MP"},
		models.PhoneRecord{Brand: "Samsung", Model: "Galaxy A55", LaunchPrice: 449, DemandLevel: 0.55, RAM: "8GB", Storage: "128GB", ScreenSize: "6.6 inches", Battery: "5000mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "Google", Model: "Pixel 8", LaunchPrice: 699, DemandLevel: 0.6, RAM: "8GB", Storage: "128GB", ScreenSize: "6.2 inches", Battery: "4575mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "Google", Model: "Pixel 6", LaunchPrice: 599, DemandLevel: 0.25, RAM: "8GB", Storage: "128GB", ScreenSize: "6.4 inches", Battery: "4614mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "Xiaomi", Model: "Redmi Note 13", LaunchPrice: 299, DemandLevel: 0.65, RAM: "8GB", Storage: "256GB", ScreenSize: "6.67 inches", Battery: "5000mAh", Camera: "108MP"},
		models.PhoneRecord{Brand: "Xiaomi", Model: "Redmi Note 11", LaunchPrice: 199, DemandLevel: 0.2, RAM: "4GB", Storage: "64GB", ScreenSize: "6.43 inches", Battery: "5000mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "OnePlus", Model: "12", LaunchPrice: 799, DemandLevel: 0.7, RAM: "12GB", Storage: "256GB", ScreenSize: "6.82 inches", Battery: "5400mAh", Camera: "50MP"},
		models.PhoneRecord{Brand: "OnePlus", Model: "Nord 3", LaunchPrice: 429, DemandLevel: 0.4, RAM: "8GB", Storage: "128GB", ScreenSize: "6.74 inches", Battery: "5000mAh", Camera: "50MP"},
	)

	return s
}
