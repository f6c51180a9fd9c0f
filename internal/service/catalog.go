package service

import (
	"sort"
	"strings"

	"github.com/DesVallees/VAQ-sub000/internal/model"
)

// CatalogQuery mirrors the list view's URL query string: a free-text
// search term, an optional variant filter, and the sort key.
type CatalogQuery struct {
	Search string
	Type   string // "", "all", "vaccine", "bundle", "package"
	Sort   string // "name" (default), "type", "price", "created"
}

// ApplyCatalogQuery filters and sorts an already-fetched product list.
// The whole collection is loaded per request; shaping the view is done
// here rather than in SQL so the rules match the dashboard exactly.
func ApplyCatalogQuery(products []model.Product, q CatalogQuery) []model.Product {
	out := make([]model.Product, 0, len(products))

	term := foldString(q.Search)
	for _, p := range products {
		if !matchesType(&p, q.Type) {
			continue
		}
		if term != "" && !matchesSearch(&p, term) {
			continue
		}
		out = append(out, p)
	}

	sortCatalog(out, q)
	return out
}

func matchesType(p *model.Product, filter string) bool {
	switch filter {
	case "", "all":
		return true
	default:
		return string(p.Type) == filter
	}
}

// matchesSearch does a substring match over name, common name, and
// manufacturer, ignoring case and accents.
func matchesSearch(p *model.Product, term string) bool {
	return strings.Contains(foldString(p.Name), term) ||
		strings.Contains(foldString(p.CommonName), term) ||
		strings.Contains(foldString(p.Manufacturer), term)
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func foldString(s string) string {
	return strings.ToLower(accentFolder.Replace(s))
}

// typeRank fixes the variant order used when sorting by type.
func typeRank(t model.ProductType) int {
	switch t {
	case model.ProductVaccine:
		return 0
	case model.ProductBundle:
		return 1
	default:
		return 2
	}
}

func sortCatalog(products []model.Product, q CatalogQuery) {
	// Hidden bundles sink below visible ones only on the type-sorted view
	// when the filter does not exclude bundles.
	sinkHidden := q.Sort == "type" && (q.Type == "" || q.Type == "all" || q.Type == "bundle")

	sort.SliceStable(products, func(i, j int) bool {
		a, b := &products[i], &products[j]

		switch q.Sort {
		case "type":
			if ra, rb := typeRank(a.Type), typeRank(b.Type); ra != rb {
				return ra < rb
			}
			if sinkHidden && a.IsBundle() && b.IsBundle() && a.Hidden != b.Hidden {
				return !a.Hidden
			}
			// Alphabetical tie-break when the primary key is type.
			return foldString(a.Name) < foldString(b.Name)

		case "price":
			pa, pb := priceValue(a), priceValue(b)
			if pa != pb {
				return pa < pb
			}
			return foldString(a.Name) < foldString(b.Name)

		case "created":
			return a.CreatedAt.After(b.CreatedAt)

		default: // name
			return foldString(a.Name) < foldString(b.Name)
		}
	})
}

// priceValue orders unpriced products (programs without whole-program
// payment) after every priced one.
func priceValue(p *model.Product) int64 {
	if p.Price == nil {
		return 1<<63 - 1
	}
	return *p.Price
}
