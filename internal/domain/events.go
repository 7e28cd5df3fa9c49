package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventProductFound         EventType = "ProductFound"
	EventCatalogLoadStarted   EventType = "CatalogLoadStarted"
	EventCatalogLoadCompleted EventType = "CatalogLoadCompleted"
	EventCatalogLoadRequested EventType = "CatalogLoadRequested"
	EventCatalogChanged       EventType = "CatalogChanged"
	EventAssetLoadRequested   EventType = "AssetLoadRequested"
	EventAssetLoaded          EventType = "AssetLoaded"
	EventTileRevealed         EventType = "TileRevealed"
	EventShortlistChanged     EventType = "ShortlistChanged"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventConfigChanged        EventType = "ConfigChanged"
	EventError                EventType = "Error"
	EventAppReady             EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ProductFoundEvent is emitted when a product record is parsed from the catalog
type ProductFoundEvent struct {
	Product Product
}

func (e ProductFoundEvent) Type() EventType { return EventProductFound }

// CatalogLoadStartedEvent is emitted when a catalog scan begins
type CatalogLoadStartedEvent struct {
	Dir string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadCompletedEvent is emitted when a catalog scan completes
type CatalogLoadCompletedEvent struct {
	ProductsFound int
}

func (e CatalogLoadCompletedEvent) Type() EventType { return EventCatalogLoadCompleted }

// CatalogLoadRequestedEvent is emitted to request a fresh catalog scan
type CatalogLoadRequestedEvent struct {
	Dir string
}

func (e CatalogLoadRequestedEvent) Type() EventType { return EventCatalogLoadRequested }

// CatalogChangedEvent is emitted when the watcher sees a product file change
type CatalogChangedEvent struct {
	Path    string
	Removed bool
}

func (e CatalogChangedEvent) Type() EventType { return EventCatalogChanged }

// AssetLoadRequestedEvent is emitted to request a deferred resource fetch
type AssetLoadRequestedEvent struct {
	SKU  string
	Path string // resource path relative to the catalog dir
}

func (e AssetLoadRequestedEvent) Type() EventType { return EventAssetLoadRequested }

// AssetLoadedEvent is emitted when a resource fetch finishes
type AssetLoadedEvent struct {
	SKU     string
	Path    string
	Kind    AssetKind
	Content []byte
	Err     error // set when the fetch failed; the tile keeps its placeholder
}

func (e AssetLoadedEvent) Type() EventType { return EventAssetLoaded }

// TileRevealedEvent is emitted the first time a catalog tile becomes visible
// enough to activate
type TileRevealedEvent struct {
	SKU string
}

func (e TileRevealedEvent) Type() EventType { return EventTileRevealed }

// ShortlistChangedEvent is emitted when the shortlist changes
type ShortlistChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e ShortlistChangedEvent) Type() EventType { return EventShortlistChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	CatalogDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a UI preference needs to be saved
type ConfigChangedEvent struct {
	ShowPrices bool
	SortMode   string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
