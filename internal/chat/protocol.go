package chat

import (
	"regexp"

	"fashionfuel/internal/domain"
)

// The model is prompted to reference products with the literal token
// [PRODUCT:<id>] where <id> is a decimal identifier. The renderer splits
// on these tokens and inlines a product card per resolvable id.
var productToken = regexp.MustCompile(`\[PRODUCT:(\d+)\]`)

// Segment is one piece of a rendered chat message: plain text, or a
// resolved product card.
type Segment struct {
	Text    string          `json:"text,omitempty"`
	Product *domain.Product `json:"product,omitempty"`
}

// Lookup resolves a product id against the current catalog.
type Lookup func(id string) (domain.Product, bool)

// ParseSegments splits response text on product tokens, preserving the
// surrounding plain text and the left-to-right order of appearance.
// Tokens whose id is not in the catalog contribute nothing to the output.
func ParseSegments(text string, lookup Lookup) []Segment {
	var segs []Segment
	last := 0
	for _, m := range productToken.FindAllStringSubmatchIndex(text, -1) {
		if pre := text[last:m[0]]; pre != "" {
			segs = append(segs, Segment{Text: pre})
		}
		id := text[m[2]:m[3]]
		if p, ok := lookup(id); ok {
			segs = append(segs, Segment{Product: &p})
		}
		last = m[1]
	}
	if rest := text[last:]; rest != "" {
		segs = append(segs, Segment{Text: rest})
	}
	return segs
}
