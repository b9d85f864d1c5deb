package store

import (
	"sort"
	"testing"
	"time"

	"pricewise/models"
)

func TestAverageCompetitorPriceNoRows(t *testing.T) {
	s := NewSeeded()
	// p-006 is seeded without competitor observations.
	if got := s.AverageCompetitorPrice("p-006"); got != 0 {
		t.Fatalf("expected 0 for product without competitor rows, got %v", got)
	}
	if got := s.AverageCompetitorPrice("no-such-product"); got != 0 {
		t.Fatalf("expected 0 for unknown product, got %v", got)
	}
}

func TestAverageCompetitorPrice(t *testing.T) {
	s := New()
	s.AddCompetitorPrice(models.CompetitorPrice{ProductID: "p-1", CompetitorName: "A", Price: 100})
	s.AddCompetitorPrice(models.CompetitorPrice{ProductID: "p-1", CompetitorName: "B", Price: 200})
	s.AddCompetitorPrice(models.CompetitorPrice{ProductID: "p-2", CompetitorName: "A", Price: 999})

	if got := s.AverageCompetitorPrice("p-1"); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestTopSellersRankingAndTieBreak(t *testing.T) {
	s := New()
	s.AddProduct(models.Product{ID: "p-1", Name: "First"})
	s.AddProduct(models.Product{ID: "p-2", Name: "Second"})
	s.AddProduct(models.Product{ID: "p-3", Name: "Third"})

	now := time.Now()
	s.AddSale(models.ProductSale{ProductID: "p-1", Date: now, Quantity: 1, Price: 100})
	s.AddSale(models.ProductSale{ProductID: "p-2", Date: now, Quantity: 2, Price: 100})
	// p-3 ties with p-1 on revenue; insertion order must decide.
	s.AddSale(models.ProductSale{ProductID: "p-3", Date: now, Quantity: 1, Price: 100})

	got := s.TopSellers(3)
	if got[0].ProductID != "p-2" {
		t.Fatalf("expected p-2 first, got %s", got[0].ProductID)
	}
	if got[1].ProductID != "p-1" || got[2].ProductID != "p-3" {
		t.Fatalf("tie not broken by insertion order: %s then %s", got[1].ProductID, got[2].ProductID)
	}
}

func TestTopSellersFewerThanN(t *testing.T) {
	s := NewSeeded()
	got := s.TopSellers(100)
	if len(got) != len(s.Products()) {
		t.Fatalf("expected all %d products, got %d", len(s.Products()), len(got))
	}
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Revenue > got[j].Revenue }) {
		t.Fatalf("top sellers not sorted by revenue descending")
	}
}

func TestSalesTrendAscendingAndFiltered(t *testing.T) {
	s := NewSeeded()

	trend := s.SalesTrend("", nil)
	if len(trend) == 0 {
		t.Fatalf("expected trend points from seeded sales")
	}
	for i := 1; i < len(trend); i++ {
		if trend[i-1].Date >= trend[i].Date {
			t.Fatalf("trend not strictly ascending: %s then %s", trend[i-1].Date, trend[i].Date)
		}
	}

	all := 0
	for _, p := range trend {
		all += p.Quantity
	}
	filtered := s.SalesTrend("p-001", nil)
	only := 0
	for _, p := range filtered {
		only += p.Quantity
	}
	if only >= all {
		t.Fatalf("product filter did not reduce the series: %d vs %d", only, all)
	}

	cutoff := time.Now().AddDate(0, 0, -10)
	recent := s.SalesTrend("", &cutoff)
	if len(recent) >= len(trend) {
		t.Fatalf("start-date cutoff did not reduce the series: %d vs %d", len(recent), len(trend))
	}
}

func TestSalesTrendGroupsByDay(t *testing.T) {
	s := New()
	day := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	s.AddSale(models.ProductSale{ProductID: "p-1", Date: day, Quantity: 2, Price: 100})
	s.AddSale(models.ProductSale{ProductID: "p-1", Date: day.Add(6 * time.Hour), Quantity: 3, Price: 100})

	trend := s.SalesTrend("", nil)
	if len(trend) != 1 {
		t.Fatalf("expected one bucket for same calendar day, got %d", len(trend))
	}
	if trend[0].Quantity != 5 || trend[0].Revenue != 500 {
		t.Fatalf("bucket totals wrong: %+v", trend[0])
	}
}

func TestAddProductVisible(t *testing.T) {
	s := New()
	added := s.AddProduct(models.Product{Name: "Nothing Phone 2", BasePrice: 599})
	if added.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	got, ok := s.ProductByID(added.ID)
	if !ok || got.Name != "Nothing Phone 2" {
		t.Fatalf("added product not visible: %+v ok=%v", got, ok)
	}
	if len(s.Products()) != 1 {
		t.Fatalf("expected 1 product, got %d", len(s.Products()))
	}
}

func TestFindPhoneModelCaseInsensitive(t *testing.T) {
	s := NewSeeded()
	record, ok := s.FindPhoneModel("  apple IPHONE 15 ")
	if !ok {
		t.Fatalf("expected case-insensitive match")
	}
	if record.FullName() != "Apple iPhone 15" {
		t.Fatalf("matched wrong record: %s", record.FullName())
	}

	if _, ok := s.FindPhoneModel("Nokia 3310"); ok {
		t.Fatalf("expected no match for unknown model")
	}
}

func TestSavePredictionOverwrites(t *testing.T) {
	s := New()
	s.SavePrediction(models.PricePrediction{ProductID: "p-1", OptimalPrice: 100})
	s.SavePrediction(models.PricePrediction{ProductID: "p-1", OptimalPrice: 120})

	got, ok := s.PredictionByProduct("p-1")
	if !ok || got.OptimalPrice != 120 {
		t.Fatalf("expected latest prediction, got %+v ok=%v", got, ok)
	}

	if _, ok := s.PredictionByProduct("p-2"); ok {
		t.Fatalf("expected no prediction for p-2")
	}
}
