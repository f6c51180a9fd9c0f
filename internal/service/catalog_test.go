package service

import (
	"testing"
	"time"

	"github.com/DesVallees/VAQ-sub000/internal/model"
)

func catalogProduct(name string, t model.ProductType, opts ...func(*model.Product)) model.Product {
	p := model.Product{Type: t, Name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func hidden() func(*model.Product) {
	return func(p *model.Product) { p.Hidden = true }
}

func withPrice(v int64) func(*model.Product) {
	return func(p *model.Product) { p.Price = &v }
}

func withManufacturer(m string) func(*model.Product) {
	return func(p *model.Product) { p.Manufacturer = m }
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func assertOrder(t *testing.T, got []model.Product, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d products %v, want %d %v", len(got), names(got), len(want), want)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %q, want %q (full order %v)", i, got[i].Name, name, names(got))
		}
	}
}

func TestCatalogSearch_SubstringOnName(t *testing.T) {
	products := []model.Product{
		catalogProduct("Vacuna Triple Viral", model.ProductVaccine),
		catalogProduct("Refuerzo DPT", model.ProductVaccine),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Search: "Triple"})
	assertOrder(t, got, []string{"Vacuna Triple Viral"})
}

func TestCatalogSearch_IgnoresCaseAndAccents(t *testing.T) {
	products := []model.Product{
		catalogProduct("Sarampión", model.ProductVaccine),
		catalogProduct("Polio", model.ProductVaccine),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Search: "sarampion"})
	assertOrder(t, got, []string{"Sarampión"})
}

func TestCatalogSearch_MatchesManufacturerAndCommonName(t *testing.T) {
	products := []model.Product{
		catalogProduct("Triple Viral", model.ProductVaccine, withManufacturer("Pfizer")),
		catalogProduct("Hepatitis B", model.ProductVaccine, withManufacturer("GSK")),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Search: "pfizer"})
	assertOrder(t, got, []string{"Triple Viral"})
}

func TestCatalogFilter_ByType(t *testing.T) {
	products := []model.Product{
		catalogProduct("Vacuna A", model.ProductVaccine),
		catalogProduct("Paquete B", model.ProductBundle),
		catalogProduct("Programa C", model.ProductPackage),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Type: "bundle"})
	assertOrder(t, got, []string{"Paquete B"})

	got = ApplyCatalogQuery(products, CatalogQuery{Type: "all", Sort: "name"})
	if len(got) != 3 {
		t.Fatalf("filter all must keep everything, got %v", names(got))
	}
}

func TestCatalogSortByType_HiddenBundlesSinkBelowVisible(t *testing.T) {
	products := []model.Product{
		catalogProduct("Oculto A", model.ProductBundle, hidden()),
		catalogProduct("Programa Z", model.ProductPackage),
		catalogProduct("Visible B", model.ProductBundle),
		catalogProduct("Vacuna M", model.ProductVaccine),
		catalogProduct("Oculto C", model.ProductBundle, hidden()),
		catalogProduct("Visible A", model.ProductBundle),
		catalogProduct("Vacuna A", model.ProductVaccine),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Type: "all", Sort: "type"})
	assertOrder(t, got, []string{
		"Vacuna A", "Vacuna M", // vaccines first, alphabetical tie-break
		"Visible A", "Visible B", // visible bundles before hidden ones
		"Oculto A", "Oculto C",
		"Programa Z",
	})
}

func TestCatalogSortByType_HiddenRuleAppliesToBundleFilter(t *testing.T) {
	products := []model.Product{
		catalogProduct("Oculto", model.ProductBundle, hidden()),
		catalogProduct("Visible", model.ProductBundle),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Type: "bundle", Sort: "type"})
	assertOrder(t, got, []string{"Visible", "Oculto"})
}

func TestCatalogSortByType_HiddenRuleSkippedForOtherSorts(t *testing.T) {
	products := []model.Product{
		catalogProduct("A oculto", model.ProductBundle, hidden()),
		catalogProduct("B visible", model.ProductBundle),
	}

	// Sorting by name ignores the hidden flag entirely.
	got := ApplyCatalogQuery(products, CatalogQuery{Type: "all", Sort: "name"})
	assertOrder(t, got, []string{"A oculto", "B visible"})
}

func TestCatalogSortByPrice_UnpricedLast(t *testing.T) {
	products := []model.Product{
		catalogProduct("Sin precio", model.ProductPackage),
		catalogProduct("Caro", model.ProductVaccine, withPrice(300000)),
		catalogProduct("Barato", model.ProductVaccine, withPrice(90000)),
	}

	got := ApplyCatalogQuery(products, CatalogQuery{Sort: "price"})
	assertOrder(t, got, []string{"Barato", "Caro", "Sin precio"})
}

func TestCatalogSortByCreated_NewestFirst(t *testing.T) {
	older := catalogProduct("Vieja", model.ProductVaccine)
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := catalogProduct("Nueva", model.ProductVaccine)
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := ApplyCatalogQuery([]model.Product{older, newer}, CatalogQuery{Sort: "created"})
	assertOrder(t, got, []string{"Nueva", "Vieja"})
}
