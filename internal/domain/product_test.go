package domain

import (
	"encoding/json"
	"testing"
)

func TestProductNormalizesLooseFields(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Product
	}{
		{
			name: "numeric id and quoted price",
			in:   `{"id": 7, "title": "Silk Scarf", "price": "24.50", "category": "accessories"}`,
			want: Product{ID: "7", Title: "Silk Scarf", Price: 24.50, Category: "accessories"},
		},
		{
			name: "name instead of title",
			in:   `{"id": "7", "name": "Silk Scarf", "price": 24.5}`,
			want: Product{ID: "7", Title: "Silk Scarf", Price: 24.5},
		},
		{
			name: "imageUrl instead of image",
			in:   `{"id": "7", "title": "Silk Scarf", "imageUrl": "https://cdn/x.jpg"}`,
			want: Product{ID: "7", Title: "Silk Scarf", Image: "https://cdn/x.jpg"},
		},
		{
			name: "title wins over name",
			in:   `{"id": "7", "title": "Silk Scarf", "name": "Other"}`,
			want: Product{ID: "7", Title: "Silk Scarf"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Product
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOrderNormalizesTotalAlternates(t *testing.T) {
	var o Order
	in := `{"id": 3, "total": "89.00", "items": [{"productId": 7, "name": "Silk Scarf", "price": "24.50", "quantity": 2}]}`
	if err := json.Unmarshal([]byte(in), &o); err != nil {
		t.Fatal(err)
	}
	if o.ID != "3" {
		t.Fatalf("numeric order id should normalize, got %q", o.ID)
	}
	if o.TotalAmount != 89.00 {
		t.Fatalf("total fallback failed, got %v", o.TotalAmount)
	}
	if len(o.Items) != 1 {
		t.Fatalf("want 1 item, got %d", len(o.Items))
	}
	it := o.Items[0]
	if it.ProductID != "7" || it.Title != "Silk Scarf" || it.Price != 24.50 || it.Quantity != 2 {
		t.Fatalf("item not normalized: %+v", it)
	}
}

func TestOrderPrefersTotalAmount(t *testing.T) {
	var o Order
	if err := json.Unmarshal([]byte(`{"id":"1","totalAmount":10,"total":99}`), &o); err != nil {
		t.Fatal(err)
	}
	if o.TotalAmount != 10 {
		t.Fatalf("totalAmount should win, got %v", o.TotalAmount)
	}
}
