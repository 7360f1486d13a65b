// Package domain holds the catalog's read-only value types. It has no
// dependencies so that other bounded contexts (the cart) can embed a Product
// without importing the catalog module.
package domain

// Product is a catalog item. Prices are in roubles.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	OriginalPrice  float64  `json:"originalPrice"`
	Discount       float64  `json:"discount"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Charity        string   `json:"charity"`
	CharityPercent float64  `json:"charityPercent"`
	Stock          int      `json:"stock"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Tags           []string `json:"tags"`

	// Category-specific attributes.
	Sizes    []string `json:"sizes,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	Pages    *int     `json:"pages,omitempty"`
	Author   *string  `json:"author,omitempty"`
	Volume   *string  `json:"volume,omitempty"`
	Material *string  `json:"material,omitempty"`
	Persons  *int     `json:"persons,omitempty"`
	Size     *string  `json:"size,omitempty"`
	Players  *string  `json:"players,omitempty"`
	AgeGroup *string  `json:"ageGroup,omitempty"`
	Height   *string  `json:"height,omitempty"`
}

// Category groups products on the storefront.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Charity is a beneficiary organisation that receives a share of sales.
type Charity struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Logo           string  `json:"logo"`
	Website        string  `json:"website"`
	TotalRaised    float64 `json:"totalRaised"`
	ChildrenHelped *int    `json:"childrenHelped,omitempty"`
	PeopleHelped   *int    `json:"peopleHelped,omitempty"`
}

// Dataset is the full static catalog.
type Dataset struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Charities  []Charity  `json:"charities"`
}
