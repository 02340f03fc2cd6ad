package models

import (
	"errors"
	"fmt"
	"html/template"
)

// ActiveButtonText is the button label that marks a card as navigable.
// Records without a custom label fall back to it.
const ActiveButtonText = "Try Now !!"

var ErrDuplicateAgentID = errors.New("duplicate agent id")

// TrustedMarkup is raw markup that is inserted into pages without escaping.
// Only ship values from a trusted source here (bundled SVG icons); every other
// text field of a record is escaped when rendered.
type TrustedMarkup string

// HTML marks the markup as safe for html/template.
func (m TrustedMarkup) HTML() template.HTML {
	return template.HTML(m)
}

// AgentRecord is one card of the catalog.
type AgentRecord struct {
	ID          int           `json:"id" yaml:"id" validate:"required"`
	Title       string        `json:"title" yaml:"title" validate:"required"`
	Description string        `json:"description" yaml:"description" validate:"required"`
	ColorToken  string        `json:"color" yaml:"color"`
	IconMarkup  TrustedMarkup `json:"icon_svg" yaml:"icon_svg"`
	URL         string        `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,uri"`
	ButtonText  string        `json:"button_text,omitempty" yaml:"button_text,omitempty"`
}

// ButtonLabel returns the label shown on the card's action element.
func (a AgentRecord) ButtonLabel() string {
	if a.ButtonText == "" {
		return ActiveButtonText
	}
	return a.ButtonText
}

// HasLink reports whether the record carries an outbound URL.
func (a AgentRecord) HasLink() bool {
	return a.URL != ""
}

// Active reports whether the action element navigates to URL. A record with a
// URL but a custom label ("Coming soon !!") renders as a disabled label.
func (a AgentRecord) Active() bool {
	return a.HasLink() && a.ButtonLabel() == ActiveButtonText
}

// Catalog is an immutable, ordered list of agent records. List order is
// display order. The zero value is an empty catalog.
type Catalog struct {
	agents []AgentRecord
}

// NewCatalog copies records into a new catalog.
func NewCatalog(records ...AgentRecord) Catalog {
	agents := make([]AgentRecord, len(records))
	copy(agents, records)
	return Catalog{agents: agents}
}

// Agents returns a copy of the records in display order.
func (c Catalog) Agents() []AgentRecord {
	agents := make([]AgentRecord, len(c.agents))
	copy(agents, c.agents)
	return agents
}

func (c Catalog) Len() int {
	return len(c.agents)
}

func (c Catalog) Empty() bool {
	return len(c.agents) == 0
}

// CheckIDs returns ErrDuplicateAgentID if two records share an id.
func (c Catalog) CheckIDs() error {
	seen := make(map[int]struct{}, len(c.agents))
	for _, agent := range c.agents {
		if _, ok := seen[agent.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateAgentID, agent.ID)
		}
		seen[agent.ID] = struct{}{}
	}
	return nil
}
