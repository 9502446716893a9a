// Package catalog holds the static reference tables served by the portal and
// the filtering primitives applied uniformly across them.
package catalog

import "time"

// Entry is implemented by every catalog record. SearchFields returns the
// designated free-text fields for substring search.
type Entry interface {
	EntryID() string
	EntryCategory() string
	SearchFields() []string
}

// Document is the metadata record for one reference PDF. Content is resolved
// on demand, never as part of a listing.
type Document struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d Document) EntryID() string        { return d.ID }
func (d Document) EntryCategory() string  { return d.Category }
func (d Document) SearchFields() []string { return []string{d.Title, d.Description} }

// GlossaryTerm is one canonical term definition. The term itself is the
// identifier; terms are unique within the glossary.
type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
	IsActive   bool   `json:"is_active"`
}

func (t GlossaryTerm) EntryID() string        { return t.Term }
func (t GlossaryTerm) EntryCategory() string  { return t.Category }
func (t GlossaryTerm) SearchFields() []string { return []string{t.Term, t.Definition} }

// Component is one layer of the system architecture
type Component struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Layer        int      `json:"layer"`
	KeyFunctions []string `json:"key_functions"`
}

func (c Component) EntryID() string        { return c.ID }
func (c Component) EntryCategory() string  { return c.Status }
func (c Component) SearchFields() []string { return []string{c.Name, c.Description} }

// IsActive reports whether the component is live in the authority chain
func (c Component) IsActive() bool { return c.Status == "active" }

// Operator is one non-human cognition operator in the Pig Pen registry
type Operator struct {
	OperatorID   string `json:"operator_id"`
	TAID         string `json:"tai_d"`
	Name         string `json:"name"`
	Capabilities string `json:"capabilities"`
	Role         string `json:"role"`
	Authority    string `json:"authority"`
	Status       string `json:"status"`
	Category     string `json:"category"`
	IsActive     bool   `json:"is_active"`
}

func (o Operator) EntryID() string       { return o.OperatorID }
func (o Operator) EntryCategory() string { return o.Category }
func (o Operator) SearchFields() []string {
	return []string{o.Name, o.Capabilities, o.Role}
}

// BrandProfile is one white-label brand definition
type BrandProfile struct {
	BrandID         string `json:"brand_id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	FontHeading     string `json:"font_heading"`
	FontBody        string `json:"font_body"`
	StyleGuidelines string `json:"style_guidelines"`
	LogoURL         string `json:"logo_url,omitempty"`
	IsActive        bool   `json:"is_active"`
}

func (b BrandProfile) EntryID() string        { return b.BrandID }
func (b BrandProfile) EntryCategory() string  { return b.Name }
func (b BrandProfile) SearchFields() []string { return []string{b.Name, b.Description} }
