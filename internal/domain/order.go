package domain

import "encoding/json"

type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is created by checkout against the remote API and has no local
// authoritative copy; it is always re-fetched.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"createdAt"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var w struct {
		ID              json.RawMessage `json:"id"`
		CustomerName    string          `json:"customerName"`
		CustomerEmail   string          `json:"customerEmail"`
		ShippingAddress string          `json:"shippingAddress"`
		Items           []OrderItem     `json:"items"`
		TotalAmount     json.RawMessage `json:"totalAmount"`
		Total           json.RawMessage `json:"total"`
		Status          string          `json:"status"`
		CreatedAt       string          `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	o.ID = flexString(w.ID)
	o.CustomerName = w.CustomerName
	o.CustomerEmail = w.CustomerEmail
	o.ShippingAddress = w.ShippingAddress
	o.Items = w.Items
	o.TotalAmount = flexFloat(w.TotalAmount)
	if o.TotalAmount == 0 {
		o.TotalAmount = flexFloat(w.Total)
	}
	o.Status = w.Status
	o.CreatedAt = w.CreatedAt
	return nil
}

func (o *OrderItem) UnmarshalJSON(data []byte) error {
	var w struct {
		ProductID json.RawMessage `json:"productId"`
		Title     string          `json:"title"`
		Name      string          `json:"name"`
		Price     json.RawMessage `json:"price"`
		Quantity  int             `json:"quantity"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	o.ProductID = flexString(w.ProductID)
	o.Title = w.Title
	if o.Title == "" {
		o.Title = w.Name
	}
	o.Price = flexFloat(w.Price)
	o.Quantity = w.Quantity
	return nil
}
