package domain

type AuthUser struct {
	Email string `json:"email"`
	Role  string `json:"role"` // admin | user
}

// AuthSession is the sole source of "is logged in" truth across reloads.
type AuthSession struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *AuthUser `json:"user"`
	Role            string    `json:"role"`
}

// Interaction is one view/cart event in the preference history.
type Interaction struct {
	Type      string `json:"type"` // view | cart
	ProductID string `json:"productId"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}
