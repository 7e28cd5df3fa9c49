package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Shortlist actions
type ToggleShortlistAction struct {
	Index int // -1 for current
}

func (a ToggleShortlistAction) Type() string { return "toggle_shortlist" }

type ShortlistAllAction struct{}

func (a ShortlistAllAction) Type() string { return "shortlist_all" }

type ClearShortlistAction struct{}

func (a ClearShortlistAction) Type() string { return "clear_shortlist" }

type ShortlistCategoryAction struct {
	Category string
}

func (a ShortlistCategoryAction) Type() string { return "shortlist_category" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleCategoryAction struct{}

func (a ToggleCategoryAction) Type() string { return "toggle_category" }

type ExpandAllCategoriesAction struct{}

func (a ExpandAllCategoriesAction) Type() string { return "expand_all_categories" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type OpenDescriptionAction struct{}

func (a OpenDescriptionAction) Type() string { return "open_description" }

type TogglePricesAction struct{}

func (a TogglePricesAction) Type() string { return "toggle_prices" }

type AdjustQuantityAction struct {
	Delta int
}

func (a AdjustQuantityAction) Type() string { return "adjust_quantity" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type JumpCategoryAction struct {
	Direction string // "next" or "prev"
}

func (a JumpCategoryAction) Type() string { return "jump_category" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Sort actions
type SortByAction struct {
	Criteria string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }
