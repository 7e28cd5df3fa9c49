//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProductOption is a function that configures product creation
type ProductOption func(*productOptions)

type productOptions struct {
	category     string
	pricePaise   int64
	unit         string
	tags         []string
	description  string // markdown body, written under assets/descriptions
	minQty       int
	maxQty       int
	media        []mediaSpec
	defaultMedia bool
}

type mediaSpec struct {
	label   string
	source  string
	missing bool // don't write the backing file
}

// WithCategory puts the product into the given category
func WithCategory(category string) ProductOption {
	return func(opts *productOptions) {
		opts.category = category
	}
}

// WithPrice sets the product price in paise
func WithPrice(paise int64) ProductOption {
	return func(opts *productOptions) {
		opts.pricePaise = paise
	}
}

// WithUnit sets the pack size shown next to the name
func WithUnit(unit string) ProductOption {
	return func(opts *productOptions) {
		opts.unit = unit
	}
}

// WithTags sets the product tags
func WithTags(tags ...string) ProductOption {
	return func(opts *productOptions) {
		opts.tags = tags
	}
}

// WithDescription writes a markdown description asset for the product
func WithDescription(markdown string) ProductOption {
	return func(opts *productOptions) {
		opts.description = markdown
	}
}

// WithQuantityBounds sets the allowed order quantity range
func WithQuantityBounds(minQty, maxQty int) ProductOption {
	return func(opts *productOptions) {
		opts.minQty = minQty
		opts.maxQty = maxQty
	}
}

// WithMedia adds a media entry backed by a placeholder file
func WithMedia(label, source string) ProductOption {
	return func(opts *productOptions) {
		opts.defaultMedia = false
		opts.media = append(opts.media, mediaSpec{label: label, source: source})
	}
}

// WithMissingMedia adds a media entry whose backing file does not exist,
// so the asset load fails
func WithMissingMedia(label, source string) ProductOption {
	return func(opts *productOptions) {
		opts.defaultMedia = false
		opts.media = append(opts.media, mediaSpec{label: label, source: source, missing: true})
	}
}

// WithoutMedia creates the product with no media entries at all
func WithoutMedia() ProductOption {
	return func(opts *productOptions) {
		opts.defaultMedia = false
	}
}

// CreateTestWorkspace creates a temporary catalog directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	for _, sub := range []string{"products", "assets/descriptions", "assets/images"} {
		if err := os.MkdirAll(filepath.Join(tmpDir, sub), 0755); err != nil {
			return "", err
		}
	}
	return tmpDir, nil
}

// CreateTestProduct writes a product record into the workspace. The file
// name and SKU are derived from the display name; the record gets one
// placeholder image unless media options say otherwise.
func (tf *TUITestFramework) CreateTestProduct(name string, options ...ProductOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	opts := &productOptions{
		category:     "General",
		pricePaise:   9900,
		unit:         "1 pc",
		defaultMedia: true,
	}
	for _, opt := range options {
		opt(opts)
	}

	slug := slugify(name)
	sku := strings.ToUpper(slug)

	media := opts.media
	if opts.defaultMedia {
		media = []mediaSpec{{label: "Front", source: "assets/images/" + slug + ".jpg"}}
	}
	for _, m := range media {
		if m.missing {
			continue
		}
		assetPath := filepath.Join(tf.workspace, filepath.FromSlash(m.source))
		if err := os.MkdirAll(filepath.Dir(assetPath), 0755); err != nil {
			return "", err
		}
		if err := os.WriteFile(assetPath, []byte("placeholder media for "+name), 0644); err != nil {
			return "", err
		}
	}

	descriptionPath := ""
	if opts.description != "" {
		descriptionPath = "assets/descriptions/" + slug + ".md"
		fullPath := filepath.Join(tf.workspace, filepath.FromSlash(descriptionPath))
		if err := os.WriteFile(fullPath, []byte(opts.description), 0644); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "sku = %q\n", sku)
	fmt.Fprintf(&b, "name = %q\n", name)
	fmt.Fprintf(&b, "category = %q\n", opts.category)
	fmt.Fprintf(&b, "price_paise = %d\n", opts.pricePaise)
	fmt.Fprintf(&b, "unit = %q\n", opts.unit)
	if len(opts.tags) > 0 {
		quoted := make([]string, len(opts.tags))
		for i, tag := range opts.tags {
			quoted[i] = fmt.Sprintf("%q", tag)
		}
		fmt.Fprintf(&b, "tags = [%s]\n", strings.Join(quoted, ", "))
	}
	if descriptionPath != "" {
		fmt.Fprintf(&b, "description = %q\n", descriptionPath)
	}
	if opts.minQty > 0 {
		fmt.Fprintf(&b, "min_qty = %d\n", opts.minQty)
	}
	if opts.maxQty > 0 {
		fmt.Fprintf(&b, "max_qty = %d\n", opts.maxQty)
	}
	for _, m := range media {
		b.WriteString("\n[[media]]\n")
		fmt.Fprintf(&b, "label = %q\n", m.label)
		fmt.Fprintf(&b, "source = %q\n", m.source)
	}

	recordPath := filepath.Join(tf.workspace, "products", slug+".toml")
	if err := os.WriteFile(recordPath, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return recordPath, nil
}

// slugify reduces a display name to a file-safe slug
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
