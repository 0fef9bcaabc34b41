package comic

import (
	"fmt"
	"strings"
)

// Field defaults applied on creation when the client omits the value.
const (
	DefaultPublisher = "Unknown"
	DefaultGenre     = "Unspecified"
)

// Comic represents a single catalog entry.
type Comic struct {
	// ID is a unique integer identifier assigned by the store.
	ID int `json:"id"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Publisher   string `json:"publisher"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// CreatePayload is the client input for creating a comic. Title, author and
// year are required; the rest fall back to defaults.
type CreatePayload struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        FlexInt `json:"year,omitzero"`
	Publisher   string  `json:"publisher,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Validate checks the required fields. A missing title or author, or a
// missing or zero year, fails validation. It returns nil when the payload
// is valid.
func (p *CreatePayload) Validate() error {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Author == "" {
		missing = append(missing, "author")
	}
	if !p.Year.Set || p.Year.Val == 0 {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Comic builds the stored record from the payload, assigning the given
// identifier and applying field defaults. The payload must have passed
// Validate.
func (p *CreatePayload) Comic(id int) Comic {
	c := Comic{
		ID:          id,
		Title:       p.Title,
		Author:      p.Author,
		Year:        p.Year.Val,
		Publisher:   p.Publisher,
		Genre:       p.Genre,
		Description: p.Description,
	}
	if c.Publisher == "" {
		c.Publisher = DefaultPublisher
	}
	if c.Genre == "" {
		c.Genre = DefaultGenre
	}
	return c
}

// UpdatePayload is the client input for a partial update. Nil pointer
// fields (and an unset year) were omitted by the client and keep the
// record's prior value. The identifier is never part of the payload.
type UpdatePayload struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Year        FlexInt `json:"year,omitzero"`
	Publisher   *string `json:"publisher"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// ApplyTo overwrites the fields of c that the payload provides.
func (p *UpdatePayload) ApplyTo(c *Comic) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Author != nil {
		c.Author = *p.Author
	}
	if p.Year.Set {
		c.Year = p.Year.Val
	}
	if p.Publisher != nil {
		c.Publisher = *p.Publisher
	}
	if p.Genre != nil {
		c.Genre = *p.Genre
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}

// ValidationError reports the required fields a payload did not provide.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
