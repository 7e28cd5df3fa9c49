package logic

import (
	"sort"
	"strings"

	"shopfront/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByName SortMode = iota
	SortByPrice
	SortByCategory
)

// SortModeFromString maps a configured sort mode name to a SortMode
func SortModeFromString(name string) SortMode {
	switch name {
	case "price":
		return SortByPrice
	case "category":
		return SortByCategory
	default:
		return SortByName
	}
}

// String returns the configured name of a sort mode
func (m SortMode) String() string {
	switch m {
	case SortByPrice:
		return "price"
	case SortByCategory:
		return "category"
	default:
		return "name"
	}
}

// ProductSorter handles product ordering logic
type ProductSorter struct {
	products map[string]*domain.Product
}

// NewProductSorter creates a new product sorter
func NewProductSorter(products map[string]*domain.Product) *ProductSorter {
	return &ProductSorter{
		products: products,
	}
}

// SortProducts sorts a slice of SKUs according to the given sort mode
func (s *ProductSorter) SortProducts(skus []string, mode SortMode) {
	switch mode {
	case SortByName:
		s.sortByName(skus)
	case SortByPrice:
		s.sortByPrice(skus)
	case SortByCategory:
		// Category sort doesn't affect product order within categories
		s.sortByName(skus)
	default:
		sort.Strings(skus)
	}
}

// sortByName sorts products alphabetically by display name
func (s *ProductSorter) sortByName(skus []string) {
	sort.Slice(skus, func(i, j int) bool {
		pi, okI := s.products[skus[i]]
		pj, okJ := s.products[skus[j]]
		if !okI || !okJ {
			return !okI
		}
		ni := strings.ToLower(pi.Name)
		nj := strings.ToLower(pj.Name)
		if ni != nj {
			return ni < nj
		}
		return pi.SKU < pj.SKU
	})
}

// sortByPrice sorts products cheapest first
func (s *ProductSorter) sortByPrice(skus []string) {
	sort.Slice(skus, func(i, j int) bool {
		pi, okI := s.products[skus[i]]
		pj, okJ := s.products[skus[j]]
		if !okI || !okJ {
			return !okI
		}
		if pi.Price != pj.Price {
			return pi.Price < pj.Price
		}
		return strings.ToLower(pi.Name) < strings.ToLower(pj.Name)
	})
}
