package evaldata

import (
	"encoding/json"
	"fmt"
)

// DescriptionKind says which form a result's description takes.
type DescriptionKind int

const (
	// DescriptionNone means the result carries no usable description.
	DescriptionNone DescriptionKind = iota
	// DescriptionPlain means Text holds the full plain-text description.
	DescriptionPlain
	// DescriptionStructured means Details holds the decoded product fields.
	DescriptionStructured
)

// Description is the decoded description panel content for one result.
type Description struct {
	Kind    DescriptionKind
	Text    string
	Details ProductDetails
}

// IsPlain reports whether the description is plain text.
func (d Description) IsPlain() bool { return d.Kind == DescriptionPlain }

// IsStructured reports whether the description carries product details.
func (d Description) IsStructured() bool { return d.Kind == DescriptionStructured }

// DescriptionParseError reports a desc_compressed payload that was present
// but not decodable. It is local to one result card.
type DescriptionParseError struct {
	Query   string
	Product string
	Err     error
}

func (e *DescriptionParseError) Error() string {
	return fmt.Sprintf("parse description for %q: %v", e.Product, e.Err)
}

func (e *DescriptionParseError) Unwrap() error { return e.Err }

// ParseDescription picks the description form for a result: the plain text
// wins over the compressed form, and a result with neither yields
// DescriptionNone. A malformed compressed payload also yields
// DescriptionNone along with a DescriptionParseError so the caller can fall
// back to a placeholder for that card alone.
func ParseDescription(r Result) (Description, error) {
	if r.EmbedDescription != "" {
		return Description{Kind: DescriptionPlain, Text: r.EmbedDescription}, nil
	}
	if r.DescCompressed != "" {
		var details ProductDetails
		if err := json.Unmarshal([]byte(r.DescCompressed), &details); err != nil {
			return Description{}, &DescriptionParseError{Product: r.ProductName, Err: err}
		}
		return Description{Kind: DescriptionStructured, Details: details}, nil
	}
	return Description{}, nil
}
