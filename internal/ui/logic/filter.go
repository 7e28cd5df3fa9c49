package logic

import (
	"strconv"
	"strings"

	"shopfront/internal/domain"
)

// SearchFilter handles search and filter operations
type SearchFilter struct {
	products map[string]*domain.Product
}

// NewSearchFilter creates a new search filter
func NewSearchFilter(products map[string]*domain.Product) *SearchFilter {
	return &SearchFilter{
		products: products,
	}
}

// MatchesFilter checks if a product matches the given filter query.
// Supported operators: cat:<name>, tag:<name>, price:<N and price:>N
// (whole rupees). Anything else is a substring match.
func (sf *SearchFilter) MatchesFilter(p *domain.Product, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(filterQuery)

	if strings.HasPrefix(query, "cat:") {
		return strings.Contains(strings.ToLower(p.Category), strings.TrimPrefix(query, "cat:"))
	}
	if strings.HasPrefix(query, "tag:") {
		return sf.matchesTag(p, strings.TrimPrefix(query, "tag:"))
	}
	if strings.HasPrefix(query, "price:") {
		return sf.matchesPriceFilter(p, strings.TrimPrefix(query, "price:"))
	}

	// Regular filter - check name, SKU, unit, category, tags
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.SKU), query) ||
		strings.Contains(strings.ToLower(p.Unit), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		sf.matchesTag(p, query)
}

// MatchesCategoryFilter checks if a category name matches the filter
func (sf *SearchFilter) MatchesCategoryFilter(category string, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(filterQuery)

	// Operator filters don't match category headers, except cat:
	if strings.HasPrefix(query, "cat:") {
		return strings.Contains(strings.ToLower(category), strings.TrimPrefix(query, "cat:"))
	}
	if strings.HasPrefix(query, "tag:") || strings.HasPrefix(query, "price:") {
		return false
	}

	return strings.Contains(strings.ToLower(category), query)
}

// matchesTag checks if any product tag matches
func (sf *SearchFilter) matchesTag(p *domain.Product, tag string) bool {
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), tag) {
			return true
		}
	}
	return false
}

// matchesPriceFilter checks a price bound of the form "<N" or ">N"
func (sf *SearchFilter) matchesPriceFilter(p *domain.Product, bound string) bool {
	if len(bound) < 2 {
		return false
	}
	op := bound[0]
	rupees, err := strconv.ParseInt(strings.TrimSpace(bound[1:]), 10, 64)
	if err != nil {
		return false
	}
	limit := domain.Price(rupees * 100)
	switch op {
	case '<':
		return p.Price < limit
	case '>':
		return p.Price > limit
	default:
		return false
	}
}

// SearchResult represents a search match
type SearchResult struct {
	Index int
	Type  SearchResultType
}

// SearchResultType indicates what type of match was found
type SearchResultType int

const (
	ResultTypeCategory SearchResultType = iota
	ResultTypeProduct
)

// PerformSearch searches the display list for items matching the query
func (sf *SearchFilter) PerformSearch(query string, items []Item) []SearchResult {
	var results []SearchResult
	lowerQuery := strings.ToLower(query)

	isOperator := strings.HasPrefix(lowerQuery, "cat:") ||
		strings.HasPrefix(lowerQuery, "tag:") ||
		strings.HasPrefix(lowerQuery, "price:")

	for i, item := range items {
		switch item.Kind {
		case ItemCategory:
			if !isOperator && strings.Contains(strings.ToLower(item.Category), lowerQuery) {
				results = append(results, SearchResult{Index: i, Type: ResultTypeCategory})
			}
		case ItemProduct:
			p, ok := sf.products[item.SKU]
			if !ok {
				continue
			}
			if isOperator {
				if sf.MatchesFilter(p, lowerQuery) {
					results = append(results, SearchResult{Index: i, Type: ResultTypeProduct})
				}
			} else if strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
				strings.Contains(strings.ToLower(p.SKU), lowerQuery) ||
				strings.Contains(strings.ToLower(p.Unit), lowerQuery) {
				results = append(results, SearchResult{Index: i, Type: ResultTypeProduct})
			}
		}
	}

	return results
}
