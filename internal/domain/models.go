package domain

import (
	"path/filepath"
	"strings"
)

// Product represents a single catalog entry
type Product struct {
	SKU         string
	Path        string // catalog file this product was parsed from
	Name        string
	DisplayName string // Name shown in UI, may include unit for duplicates
	Category    string // category name it belongs to ("" if uncategorized)
	Price       Price
	Unit        string // pack size, e.g. "1 L", "5 kg"
	Tags        []string
	Description string // resource path of the long description, relative to the catalog dir
	Media       []Media
	MinQty      int // smallest orderable quantity, 1 if unset
	MaxQty      int // largest orderable quantity, 99 if unset
}

// Media is one viewable asset attached to a product
type Media struct {
	Label          string
	DeferredSource string // resource path, not fetched until the tile is revealed
	Kind           AssetKind
}

// AssetKind classifies a resource by file type
type AssetKind string

const (
	AssetImage    AssetKind = "image"
	AssetModel    AssetKind = "model"
	AssetMarkdown AssetKind = "markdown"
	AssetText     AssetKind = "text"
)

// KindForPath derives the asset kind from a resource path's extension
func KindForPath(path string) AssetKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return AssetImage
	case ".glb", ".gltf":
		return AssetModel
	case ".md", ".markdown":
		return AssetMarkdown
	default:
		return AssetText
	}
}
