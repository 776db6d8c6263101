package models

// CartItem is one cart line. The merge/dedup key is the
// (ID, Size, Color) tuple; ID holds a product or variant id.
type CartItem struct {
	ID       string  `bson:"id" json:"id"`
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Size     string  `bson:"size,omitempty" json:"size,omitempty"`
	Color    string  `bson:"color,omitempty" json:"color,omitempty"`
	Img      string  `bson:"img,omitempty" json:"img,omitempty"`
}

// WishlistItem is keyed by ID alone.
type WishlistItem struct {
	ID       string  `bson:"id" json:"id"`
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Img      string  `bson:"img,omitempty" json:"img,omitempty"`
	Category string  `bson:"category,omitempty" json:"category,omitempty"`
}
