package domain

import "encoding/json"

// Product is the canonical catalog record. The remote API is loose about
// field names and scalar types (title vs name, numeric ids as numbers or
// strings), so normalization happens once here at the decode boundary and
// nothing downstream deals with alternates.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var w struct {
		ID          json.RawMessage `json:"id"`
		Title       string          `json:"title"`
		Name        string          `json:"name"`
		Price       json.RawMessage `json:"price"`
		Category    string          `json:"category"`
		Image       string          `json:"image"`
		ImageURL    string          `json:"imageUrl"`
		Stock       int             `json:"stock"`
		Description string          `json:"description"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.ID = flexString(w.ID)
	p.Title = w.Title
	if p.Title == "" {
		p.Title = w.Name
	}
	p.Price = flexFloat(w.Price)
	p.Category = w.Category
	p.Image = w.Image
	if p.Image == "" {
		p.Image = w.ImageURL
	}
	p.Stock = w.Stock
	p.Description = w.Description
	return nil
}

// CartLine is one cart row: a product plus its quantity. At most one line
// exists per product id, and quantity is never persisted below 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// flexString decodes an identifier that may arrive as a JSON string or number.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// flexFloat decodes a numeric field that may arrive quoted.
func flexFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var n json.Number = json.Number(s)
		if v, err := n.Float64(); err == nil {
			return v
		}
	}
	return 0
}
