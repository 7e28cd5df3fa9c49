package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopfront/internal/config"
	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
	"shopfront/internal/gallery"
	"shopfront/internal/reveal"
	"shopfront/internal/ui/commands"
	"shopfront/internal/ui/handlers"
	"shopfront/internal/ui/input"
	"shopfront/internal/ui/input/modes"
	inputtypes "shopfront/internal/ui/input/types"
	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/services/shortlist"
	"shopfront/internal/ui/state"
	"shopfront/internal/ui/stores"
	"shopfront/internal/ui/viewmodels"
	"shopfront/internal/ui/views"
)

// Model is the Bubble Tea model for the catalog browser
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	catalogDir string
	state      *state.AppState // centralized state
	logger     *zap.Logger

	// UI-specific state not kept in AppState
	width       int
	height      int
	help        help.Model
	currentSort logic.SortMode
	inPagerMode bool // suspends ticking while an external pager owns the terminal

	// Display list layout (categories in display order, SKUs per category)
	orderedCategories []string
	categorySKUs      map[string][]string

	// Handlers
	tracker      *reveal.Tracker        // one-shot tile activation
	searchFilter *logic.SearchFilter    // search and filter matching
	navigator    *logic.Navigator       // navigation and viewport handling
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // domain event processing
	viewModel    *viewmodels.ViewModel  // view state assembly
	store        stores.CatalogStore    // read access to catalog state
	cmdExecutor  *commands.Executor     // command execution
	inputHandler *input.Handler         // modal key handling
	shortlistSvc *shortlist.Service     // shortlist bookkeeping
	helpRender   *HelpRenderer          // plain help content for the pager
	pagerOps     *PagerOps              // embedded pager operations

	// Program reference for terminal handover to the pager
	program *tea.Program
}

// NewModel creates the UI model. The reveal strategy is fixed for the
// lifetime of the model: Observed activates tiles as they scroll into
// view, Eager activates everything up front (used when no sized
// viewport will ever report visibility).
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger, strategy reveal.Strategy) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	appState.TileHeight = cfg.TileHeight
	appState.ShowPrices = cfg.UISettings.ShowPrices
	appState.SortMode = cfg.UISettings.SortMode
	appState.CollapseByDefault = cfg.UISettings.CollapseCategoriesOnStart

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalogDir:   cfg.CatalogDir,
		state:        appState,
		logger:       logger,
		help:         help.New(),
		currentSort:  logic.SortModeFromString(cfg.UISettings.SortMode),
		categorySKUs: make(map[string][]string),
		searchFilter: logic.NewSearchFilter(appState.Products),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.Currency),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		pagerOps:     NewPagerOps(),
	}
	m.store = stores.NewStateCatalogStore(appState)

	m.tracker = reveal.New(reveal.Config{
		Strategy:  strategy,
		Threshold: cfg.RevealThreshold,
		Effect:    m.revealTile,
		Logger:    logger,
	})

	m.shortlistSvc = shortlist.NewService(appState, bus)
	m.shortlistSvc.SetQueryFunction(func(index int) string {
		item, ok := m.navigator.ItemAt(index)
		if !ok {
			return ""
		}
		return item.SKU
	})
	m.cmdExecutor = commands.NewExecutor(appState, bus, m.shortlistSvc)
	m.eventHandler = handlers.NewEventHandler(appState, m.updateOrderedLists)

	m.viewModel = viewmodels.NewViewModel(appState, textinput.New())
	m.viewModel.SetHelp(m.help)

	m.updateOrderedLists()
	return m
}

// SetProgram stores the program reference so the pager can release and
// restore the terminal
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pagerOps != nil {
		m.pagerOps.SetProgram(p)
	}
}

// State exposes the application state for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		m.updateViewportHeight()
		m.refreshLayout()
		return m, nil

	case tea.KeyMsg:
		// Modal views swallow keys before the mode handlers see them
		if m.state.ShowDetail {
			return m.handleDetailKey(msg)
		}
		if m.state.ShowHelp {
			return m.handleHelpKey(msg)
		}

		ctx := &input.ModelContext{
			State:       m.state,
			Navigator:   m.navigator,
			CurrentSort: m.currentSort,
		}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if c := m.processAction(action); c != nil {
				cmds = append(cmds, c)
			}
		}
		if ti := m.inputHandler.GetTextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if ti := m.inputHandler.GetTextInput(); ti != nil {
				m.viewModel.UpdateTextInput(*ti)
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)

	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(viewModeFor(mode))

	// The clear prompt names how many shortlisted items are at stake
	confirmCount := 0
	if mode == inputtypes.ModeClearConfirm {
		if cm, ok := m.inputHandler.ModeHandlerFor(inputtypes.ModeClearConfirm).(*modes.ConfirmMode); ok {
			confirmCount = cm.Count()
		}
	}
	m.viewModel.SetConfirmCount(confirmCount)

	if ti := m.inputHandler.GetTextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetItems(m.navigator.Items(), m.categorySKUs)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// viewModeFor maps input handler modes onto view model input modes
func viewModeFor(mode inputtypes.Mode) viewmodels.InputMode {
	switch mode {
	case inputtypes.ModeSearch:
		return viewmodels.InputModeSearch
	case inputtypes.ModeFilter:
		return viewmodels.InputModeFilter
	case inputtypes.ModeQuantity:
		return viewmodels.InputModeQuantity
	case inputtypes.ModeClearConfirm:
		return viewmodels.InputModeClearConfirm
	case inputtypes.ModeSort:
		return viewmodels.InputModeSort
	default:
		return viewmodels.InputModeNormal
	}
}

// handleDetailKey handles keys while the detail view is open
func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.state.CloseDetail()
		return m, nil
	case "left", "h":
		m.selectGalleryIndex(m.galleryIndex() - 1)
		return m, nil
	case "right", "l":
		m.selectGalleryIndex(m.galleryIndex() + 1)
		return m, nil
	case "up", "k":
		if m.state.DetailScroll > 0 {
			m.state.DetailScroll--
		}
		return m, nil
	case "down", "j":
		m.state.DetailScroll++
		return m, nil
	case "d":
		return m, m.fetchDescriptionPager(m.state.DetailSKU)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			m.selectGalleryIndex(n - 1)
		}
		return m, nil
	}
}

// handleHelpKey handles keys while the help overlay is open
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "down", "j":
		m.state.HelpScrollOffset++
	case "up", "k":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "d":
		return m, m.fetchHelpPager()
	}
	return m, nil
}

// handleNonKeyboardMsg handles all non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		m.searchFilter = m.eventHandler.GetSearchFilter()
		return m, cmd

	case tickMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case handlers.TickMsg:
		// Spinner cadence while a catalog load is in flight
		if m.state.Loading {
			return m, tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
				return handlers.TickMsg(t)
			})
		}
		return m, nil

	case descriptionPagerMsg:
		if msg.err != nil {
			m.logger.Warn("description pager failed",
				zap.String("sku", msg.sku),
				zap.Error(msg.err))
			m.state.StatusMessage = "Could not open description: " + msg.err.Error()
			return m, clearStatusLater()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.StatusMessage = "Could not open pager: " + msg.err.Error()
			return m, clearStatusLater()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		// Restart the tick loop that was parked while the pager ran
		return m, tick()

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case quitMsg:
		if msg.savePrefs && m.bus != nil {
			m.bus.Publish(eventbus.ConfigChangedEvent{
				ShowPrices: m.state.ShowPrices,
				SortMode:   m.state.SortMode,
			})
		}
		return m, tea.Quit
	}
	return m, nil
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleShortlistAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.GetSelectedIndex()
		}
		return m.cmdExecutor.ExecuteToggleShortlist(index)

	case inputtypes.ShortlistAllAction:
		return m.cmdExecutor.ExecuteShortlistAll(m.store.GetOrderedSKUs())

	case inputtypes.ShortlistCategoryAction:
		return m.cmdExecutor.ExecuteShortlistCategory(a.Category, m.categorySKUs[a.Category])

	case inputtypes.ClearShortlistAction:
		return m.cmdExecutor.ExecuteClearShortlist()

	case inputtypes.AdjustQuantityAction:
		if sku := m.currentSKU(); sku != "" {
			return m.cmdExecutor.ExecuteAdjustQuantity(sku, a.Delta)
		}

	case inputtypes.ToggleCategoryAction:
		m.toggleSelectedCategory()

	case inputtypes.ExpandAllCategoriesAction:
		for _, category := range m.store.GetCategories() {
			m.state.ExpandedCategories[category] = true
		}
		m.refreshLayout()

	case inputtypes.JumpCategoryAction:
		if a.Direction == "next" {
			m.navigator.JumpToNextCategory()
		} else {
			m.navigator.JumpToPreviousCategory()
		}
		m.syncSelection()
		m.feedVisibility()

	case inputtypes.OpenDetailAction:
		m.openDetail()

	case inputtypes.OpenDescriptionAction:
		if sku := m.currentSKU(); sku != "" {
			return m.fetchDescriptionPager(sku)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.TogglePricesAction:
		return m.cmdExecutor.ExecuteTogglePrices()

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteReload(m.catalogDir)

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.state.SearchQuery = a.Text
			m.performSearch()
			m.followSearchMatch()
		}

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.CancelTextAction:
		m.state.SearchQuery = ""
		m.state.SearchMatches = nil
		m.state.SearchIndex = 0

	case inputtypes.SearchNavigateAction:
		m.navigateSearchMatches(a.Direction)

	case inputtypes.SortByAction:
		m.applySort(a.Criteria)

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.QuitAction:
		savePrefs := !a.Force && m.config.UISettings.AutosaveOnExit
		return func() tea.Msg { return quitMsg{savePrefs: savePrefs} }
	}
	return nil
}

// navigate moves the selection or folds the category under the cursor
func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.MoveSelection(-1)
	case "down":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.MoveSelection(1)
	case "left":
		if item, ok := m.navigator.SelectedItem(); ok && item.Category != "" {
			m.collapseCategory(item.Category)
		}
	case "right":
		if item, ok := m.navigator.SelectedItem(); ok && item.Kind == logic.ItemCategory {
			if !m.state.IsExpanded(item.Category) {
				m.state.ExpandedCategories[item.Category] = true
				m.refreshLayout()
			}
		}
	case "home":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SelectFirst()
	case "end":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SelectLast()
	case "pageup":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.PageMove(false)
	case "pagedown":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.PageMove(true)
	}
	m.feedVisibility()
}

// toggleSelectedCategory folds or unfolds the category under the cursor
func (m *Model) toggleSelectedCategory() {
	item, ok := m.navigator.SelectedItem()
	if !ok || item.Category == "" {
		return
	}
	if m.state.IsExpanded(item.Category) {
		m.collapseCategory(item.Category)
	} else {
		m.state.ExpandedCategories[item.Category] = true
		m.refreshLayout()
	}
}

// collapseCategory folds a category. When the cursor was on one of its
// tiles it moves up to the header so it doesn't land on an unrelated row.
func (m *Model) collapseCategory(category string) {
	if !m.state.IsExpanded(category) {
		return
	}
	wasInside := false
	if item, ok := m.navigator.SelectedItem(); ok {
		wasInside = item.Kind == logic.ItemProduct && item.Category == category
	}
	m.state.ExpandedCategories[category] = false
	m.refreshLayout()
	if wasInside {
		if idx := m.navigator.IndexForCategory(category); idx >= 0 {
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(idx)
			m.feedVisibility()
		}
	}
}

// submitText applies the submitted text for the mode it came from
func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	switch a.Mode {
	case inputtypes.ModeSearch:
		m.state.SearchQuery = a.Text
		m.performSearch()
		m.state.SearchIndex = 0
		m.followSearchMatch()
		if a.Text != "" && len(m.state.SearchMatches) == 0 {
			m.state.StatusMessage = fmt.Sprintf("No matches for %q", a.Text)
			return clearStatusLater()
		}

	case inputtypes.ModeFilter:
		m.state.FilterQuery = a.Text
		m.state.IsFiltered = a.Text != ""
		m.updateOrderedLists()
		if m.state.IsFiltered {
			m.state.StatusMessage = fmt.Sprintf("Filter: %s (%d products)", a.Text, len(m.state.OrderedSKUs))
		} else {
			m.state.StatusMessage = "Filter cleared"
		}
		return clearStatusLater()

	case inputtypes.ModeQuantity:
		sku := m.currentSKU()
		if sku == "" {
			return nil
		}
		qty, err := strconv.Atoi(strings.TrimSpace(a.Text))
		if err != nil || qty < 0 {
			m.state.StatusMessage = fmt.Sprintf("Invalid quantity %q", a.Text)
			return clearStatusLater()
		}
		return m.cmdExecutor.ExecuteSetQuantity(sku, qty)
	}
	return nil
}

// navigateSearchMatches cycles through search matches with wraparound
func (m *Model) navigateSearchMatches(direction string) {
	total := len(m.state.SearchMatches)
	if total == 0 {
		return
	}
	if direction == "next" {
		m.state.SearchIndex = (m.state.SearchIndex + 1) % total
	} else {
		m.state.SearchIndex--
		if m.state.SearchIndex < 0 {
			m.state.SearchIndex = total - 1
		}
	}
	m.followSearchMatch()
	m.state.StatusMessage = fmt.Sprintf("Match %d of %d", m.state.SearchIndex+1, total)
}

// followSearchMatch moves the cursor to the current search match
func (m *Model) followSearchMatch() {
	if len(m.state.SearchMatches) == 0 {
		return
	}
	if m.state.SearchIndex >= len(m.state.SearchMatches) {
		m.state.SearchIndex = 0
	}
	target := m.state.SearchMatches[m.state.SearchIndex]
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(target)
	m.feedVisibility()
}

// performSearch recomputes the match list for the current query
func (m *Model) performSearch() {
	oldMatches := m.state.SearchMatches
	m.state.SearchMatches = nil

	if m.state.SearchQuery == "" {
		m.state.SearchIndex = 0
		return
	}
	results := m.searchFilter.PerformSearch(m.state.SearchQuery, m.navigator.Items())
	for _, result := range results {
		m.state.SearchMatches = append(m.state.SearchMatches, result.Index)
	}

	// Keep the match position when the result set did not change
	changed := len(oldMatches) != len(m.state.SearchMatches)
	if !changed {
		for i, idx := range oldMatches {
			if idx != m.state.SearchMatches[i] {
				changed = true
				break
			}
		}
	}
	if changed || m.state.SearchIndex >= len(m.state.SearchMatches) {
		m.state.SearchIndex = 0
	}
}

// applySort switches the product ordering and persists the preference
func (m *Model) applySort(criteria string) {
	switch strings.ToLower(strings.TrimSpace(criteria)) {
	case "name", "n":
		m.currentSort = logic.SortByName
	case "price", "p":
		m.currentSort = logic.SortByPrice
	case "category", "c":
		m.currentSort = logic.SortByCategory
	default:
		m.state.StatusMessage = fmt.Sprintf("Unknown sort: %s", criteria)
		return
	}
	m.state.SortMode = m.currentSort.String()
	m.state.StatusMessage = "Sorted by " + m.state.SortMode
	m.updateOrderedLists()
	m.cmdExecutor.ExecutePrefsChanged()
}

// openDetail opens the detail view for the selected product and builds
// its media gallery. At most one gallery control is active at a time;
// the description and the active medium are fetched on demand.
func (m *Model) openDetail() {
	sku := m.currentSKU()
	if sku == "" {
		return
	}
	product, ok := m.store.GetProduct(sku)
	if !ok {
		return
	}

	controls := make([]*gallery.Control, 0, len(product.Media))
	for i, media := range product.Media {
		controls = append(controls, &gallery.Control{
			ID:           fmt.Sprintf("%s/%d", sku, i),
			Label:        media.Label,
			TargetSource: media.DeferredSource,
		})
	}
	g := gallery.New(&gallery.Display{}, controls...)
	if len(controls) > 0 {
		g.SelectIndex(0)
	}
	m.state.OpenDetail(sku, g)

	m.requestAsset(sku, g.Source())
	m.requestAsset(sku, product.Description)
}

// galleryIndex returns the active gallery control index, or -1
func (m *Model) galleryIndex() int {
	if m.state.Gallery == nil {
		return -1
	}
	return m.state.Gallery.ActiveIndex()
}

// selectGalleryIndex activates a gallery control and fetches its medium
func (m *Model) selectGalleryIndex(index int) {
	g := m.state.Gallery
	if g == nil || index < 0 || index >= g.Len() {
		return
	}
	g.SelectIndex(index)
	m.requestAsset(m.state.DetailSKU, g.Source())
}

// requestAsset asks the asset service for a resource unless it is
// already cached or in flight
func (m *Model) requestAsset(sku, path string) {
	if path == "" || m.bus == nil {
		return
	}
	if _, ok := m.state.AssetFor(path); ok {
		return
	}
	if m.state.LoadingAssets[path] {
		return
	}
	m.state.SetAssetLoading(path)
	m.bus.Publish(eventbus.AssetLoadRequestedEvent{SKU: sku, Path: path})
}

// revealTile is the tracker effect: it marks the tile revealed, swaps
// the deferred media source live and kicks off the asset load. Runs at
// most once per SKU.
func (m *Model) revealTile(target *reveal.Target) error {
	m.state.MarkRevealed(target.ID)
	if m.bus != nil {
		m.bus.Publish(eventbus.TileRevealedEvent{SKU: target.ID})
	}
	m.requestAsset(target.ID, target.Source)
	return nil
}

// updateOrderedLists rebuilds the category and SKU ordering from the
// product set, applying the active filter and sort mode
func (m *Model) updateOrderedLists() {
	products := m.store.GetAllProducts()
	sorter := logic.NewProductSorter(products)

	categorySKUs := make(map[string][]string)
	for sku, product := range products {
		if m.state.IsFiltered && !m.searchFilter.MatchesFilter(product, m.state.FilterQuery) {
			continue
		}
		categorySKUs[product.Category] = append(categorySKUs[product.Category], sku)
	}

	// Categories keep their display order; a filter drops emptied ones
	orderedCategories := make([]string, 0, len(categorySKUs))
	for _, category := range m.store.GetCategories() {
		skus, ok := categorySKUs[category]
		if !ok || len(skus) == 0 {
			continue
		}
		sorter.SortProducts(skus, m.currentSort)
		orderedCategories = append(orderedCategories, category)
	}

	m.orderedCategories = orderedCategories
	m.categorySKUs = categorySKUs

	// Flattened display order, used by shortlist-all and the status bar
	ordered := make([]string, 0, len(products))
	for _, category := range orderedCategories {
		ordered = append(ordered, categorySKUs[category]...)
	}
	m.state.OrderedSKUs = ordered

	m.refreshLayout()
}

// refreshLayout pushes the current ordering into the navigator and
// re-observes any tiles that have not been revealed yet
func (m *Model) refreshLayout() {
	expanded := make(map[string]bool, len(m.orderedCategories))
	for _, category := range m.orderedCategories {
		expanded[category] = m.state.IsExpanded(category)
	}
	m.navigator.SetViewport(m.state.ViewportOffset, m.state.ViewportHeight)
	m.navigator.UpdateLayout(m.orderedCategories, m.categorySKUs, expanded, m.state.TileHeight)
	m.syncSelection()
	m.viewModel.SetItems(m.navigator.Items(), m.categorySKUs)
	m.observeTargets()
	m.feedVisibility()
}

// syncSelection mirrors the navigator's clamped position into the state
func (m *Model) syncSelection() {
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

// observeTargets registers every unrevealed product with the tracker
func (m *Model) observeTargets() {
	var targets []*reveal.Target
	for _, sku := range m.state.OrderedSKUs {
		if m.state.IsRevealed(sku) || m.tracker.Observing(sku) {
			continue
		}
		product, ok := m.store.GetProduct(sku)
		if !ok {
			continue
		}
		deferred := ""
		if len(product.Media) > 0 {
			deferred = product.Media[0].DeferredSource
		}
		targets = append(targets, &reveal.Target{
			ID:             sku,
			RowSpan:        m.state.TileHeight,
			DeferredSource: deferred,
		})
	}
	if len(targets) > 0 {
		m.tracker.Observe(targets...)
	}
}

// feedVisibility reports the current per-tile visibility ratios to the
// tracker. Called whenever the viewport or the layout moves.
func (m *Model) feedVisibility() {
	for sku, ratio := range m.navigator.VisibleRatios() {
		m.tracker.Report(sku, ratio)
	}
}

// updateViewportHeight recomputes the list height from the window size
func (m *Model) updateViewportHeight() {
	// Title, status line, help hint and container padding
	reservedLines := 7
	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
	m.navigator.SetViewport(m.state.ViewportOffset, m.state.ViewportHeight)
	m.syncSelection()
}

// currentSKU returns the SKU under the cursor, or "" on a category row
func (m *Model) currentSKU() string {
	item, ok := m.navigator.SelectedItem()
	if !ok {
		return ""
	}
	return item.SKU
}

// fetchDescriptionPager shows the full product description in the
// embedded pager. The TUI releases the terminal for the duration.
func (m *Model) fetchDescriptionPager(sku string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	product, ok := m.store.GetProduct(sku)
	if !ok {
		return nil
	}
	content, err := m.descriptionPagerContent(product)
	if err != nil {
		m.logger.Warn("description unavailable", zap.String("sku", sku), zap.Error(err))
		m.state.StatusMessage = "Description unavailable: " + err.Error()
		return clearStatusLater()
	}
	if content == "" {
		m.state.StatusMessage = "No description for " + product.Name
		return clearStatusLater()
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pagerOps.ShowText(content)
		m.program.Send(resumeRenderingMsg{})
		return descriptionPagerMsg{sku: sku, err: err}
	}
}

// fetchHelpPager shows the full key reference in the embedded pager
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.helpRender.RenderHelpContentPlain()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pagerOps.ShowText(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// descriptionPagerContent assembles the pager document for a product.
// The cached asset is preferred; otherwise the description file is read
// straight from the catalog directory.
func (m *Model) descriptionPagerContent(product *domain.Product) (string, error) {
	if product.Description == "" {
		return "", nil
	}

	var text string
	if asset, ok := m.state.AssetFor(product.Description); ok && asset.Err == nil {
		text = string(asset.Content)
	} else {
		data, err := os.ReadFile(filepath.Join(m.catalogDir, filepath.FromSlash(product.Description)))
		if err != nil {
			return "", err
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	if width > 100 {
		width = 100
	}

	var b strings.Builder
	b.WriteString(product.Name)
	b.WriteString("\n")
	meta := product.SKU + " · " + product.Price.Format(m.config.Currency)
	if product.Unit != "" {
		meta += " / " + product.Unit
	}
	b.WriteString(meta)
	b.WriteString("\n\n")
	b.WriteString(views.RenderMarkdown(text, width))
	return b.String(), nil
}

// tick keeps the UI refreshing so relative indicators stay current
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearStatusLater clears the status line after a short delay
func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
