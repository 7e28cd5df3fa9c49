package shortlist

import (
	"sort"

	"shopfront/internal/eventbus"
	"shopfront/internal/ui/state"
)

// Service handles shortlist logic on top of the app state
type Service struct {
	state   *state.AppState
	bus     eventbus.EventBus
	queryFn func(int) string // Function to get the SKU at a display index
}

// NewService creates a new shortlist service
func NewService(st *state.AppState, bus eventbus.EventBus) *Service {
	return &Service{
		state: st,
		bus:   bus,
	}
}

// SetQueryFunction sets the function to resolve display indices to SKUs
func (s *Service) SetQueryFunction(fn func(int) string) {
	s.queryFn = fn
}

// Toggle toggles the shortlist entry at a display index
func (s *Service) Toggle(index int) {
	if s.queryFn == nil {
		return
	}

	sku := s.queryFn(index)
	if sku == "" {
		return // Not a product
	}
	s.ToggleSKU(sku)
}

// ToggleSKU toggles a single product
func (s *Service) ToggleSKU(sku string) {
	if _, ok := s.state.GetProduct(sku); !ok {
		return
	}

	var added, removed []string
	if s.state.Shortlist[sku] {
		removed = append(removed, sku)
	} else {
		added = append(added, sku)
	}
	s.state.ToggleShortlist(sku)

	s.publishChanged(added, removed)
}

// ShortlistAll puts every given product on the shortlist
func (s *Service) ShortlistAll(skus []string) {
	var added []string
	for _, sku := range skus {
		if !s.state.Shortlist[sku] {
			if _, ok := s.state.GetProduct(sku); ok {
				s.state.Shortlist[sku] = true
				added = append(added, sku)
			}
		}
	}
	if len(added) > 0 {
		s.publishChanged(added, nil)
	}
}

// ToggleCategory shortlists a whole category, or removes it again
// when every product in it is already shortlisted.
func (s *Service) ToggleCategory(skus []string) {
	if len(skus) == 0 {
		return
	}

	allShortlisted := true
	for _, sku := range skus {
		if !s.state.Shortlist[sku] {
			allShortlisted = false
			break
		}
	}

	var added, removed []string
	for _, sku := range skus {
		if allShortlisted {
			delete(s.state.Shortlist, sku)
			removed = append(removed, sku)
		} else if !s.state.Shortlist[sku] {
			s.state.Shortlist[sku] = true
			added = append(added, sku)
		}
	}

	if len(added) > 0 || len(removed) > 0 {
		s.publishChanged(added, removed)
	}
}

// Clear empties the shortlist
func (s *Service) Clear() {
	if len(s.state.Shortlist) == 0 {
		return
	}
	removed := s.Shortlisted()
	s.state.ClearShortlist()
	s.publishChanged(nil, removed)
}

// Has checks if a product is shortlisted
func (s *Service) Has(sku string) bool {
	return s.state.Shortlist[sku]
}

// Count returns the number of shortlisted products
func (s *Service) Count() int {
	return len(s.state.Shortlist)
}

// Shortlisted returns the shortlisted SKUs in stable order
func (s *Service) Shortlisted() []string {
	skus := make([]string, 0, len(s.state.Shortlist))
	for sku := range s.state.Shortlist {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}

func (s *Service) publishChanged(added, removed []string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.ShortlistChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Shortlist),
	})
}
