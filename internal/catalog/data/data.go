// Package data embeds the storefront's static catalog.
package data

import _ "embed"

// ProductJSON is the catalog dataset: categories, products and charities.
//
//go:embed product.json
var ProductJSON []byte
