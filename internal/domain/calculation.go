package domain

import (
	"time"

	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/google/uuid"
)

// Calculation is one saved run of the heredity calculator, kept until it is
// read back by the results page or expires.
type Calculation struct {
	ID        uuid.UUID               `json:"id"`
	Prior     string                  `json:"prior"`
	Input     map[string]string       `json:"input"`
	Results   genetics.Results        `json:"results"`
	Warnings  []genetics.Unrecognized `json:"warnings,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	ExpiresAt *time.Time              `json:"expires_at,omitempty"`
}

// Empty reports whether no trait had enough evidence to be calculated.
func (c *Calculation) Empty() bool {
	for _, r := range c.Results {
		if len(r) > 0 {
			return false
		}
	}
	return true
}
