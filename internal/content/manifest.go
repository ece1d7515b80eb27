// Package content loads the page content manifest consumed by the kiosk.
// The manifest is produced upstream (the planning pipeline) and treated here
// as static configuration: services, FAQ items, info tabs, and form copy.
package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Card is a single filterable/sortable service listing. Cards are immutable
// once loaded; the catalog engine only ever reads them.
type Card struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Popularity  int      `yaml:"popularity"`
}

// HasTag reports whether the card carries the given tag, case-insensitively.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// FAQItem is one accordion entry.
type FAQItem struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Tab is one info tab. Body is markdown, rendered by the page.
type Tab struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Body  string `yaml:"body"`
}

// FormCopy holds the contact form's static text.
type FormCopy struct {
	Heading string `yaml:"heading"`
	Blurb   string `yaml:"blurb"`
}

// Manifest is the full page content. Sections may be empty; the page skips
// wiring for empty sections rather than failing.
type Manifest struct {
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Services []Card    `yaml:"services"`
	FAQ      []FAQItem `yaml:"faq"`
	Tabs     []Tab     `yaml:"tabs"`
	Form     FormCopy  `yaml:"form"`
}

// TagUniverse returns the distinct tags across all services, in first-seen
// order, for building the filter chip row.
func (m *Manifest) TagUniverse() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range m.Services {
		for _, t := range c.Tags {
			key := strings.ToLower(t)
			if !seen[key] {
				seen[key] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// Load reads and validates a manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks id presence and uniqueness within each section.
func (m *Manifest) Validate() error {
	if err := checkIDs("services", cardIDs(m.Services)); err != nil {
		return err
	}
	if err := checkIDs("faq", faqIDs(m.FAQ)); err != nil {
		return err
	}
	if err := checkIDs("tabs", tabIDs(m.Tabs)); err != nil {
		return err
	}
	return nil
}

func checkIDs(section string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s[%d]: missing id", section, i)
		}
		if seen[id] {
			return fmt.Errorf("%s: duplicate id %q", section, id)
		}
		seen[id] = true
	}
	return nil
}

func cardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func faqIDs(items []FAQItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func tabIDs(tabs []Tab) []string {
	ids := make([]string, len(tabs))
	for i, t := range tabs {
		ids[i] = t.ID
	}
	return ids
}
