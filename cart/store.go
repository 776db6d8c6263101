// Package cart holds the per-user cart and wishlist line items and keeps
// a remote single-document mirror in step. Every mutation overwrites the
// mirror with the entire new array: concurrent writers clobber each
// other, and the last full-array write wins.
package cart

import (
	"context"
	"sync"

	"github.com/velora-labs/velora-backend-go/models"
)

// Mirror persists the full cart or wishlist array for a user. There is
// no merge-by-field and no version check; each call replaces whatever
// the remote document held.
type Mirror interface {
	SaveCart(ctx context.Context, userID string, items []models.CartItem) error
	SaveWishlist(ctx context.Context, userID string, items []models.WishlistItem) error
}

// Store is the ordered in-memory line-item list for one user.
type Store struct {
	mu       sync.Mutex
	userID   string
	mirror   Mirror
	items    []models.CartItem
	wishlist []models.WishlistItem
}

func NewStore(userID string, mirror Mirror) *Store {
	return &Store{userID: userID, mirror: mirror}
}

// Load seeds the store from a previously persisted document.
func (s *Store) Load(items []models.CartItem, wishlist []models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.CartItem(nil), items...)
	s.wishlist = append([]models.WishlistItem(nil), wishlist...)
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.items...)
}

// WishlistItems returns a copy of the current wishlist.
func (s *Store) WishlistItems() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WishlistItem(nil), s.wishlist...)
}

// AddToCart merges on the (id, size, color) tuple: a matching line has
// its quantity incremented by the incoming quantity (default 1),
// otherwise the item is appended.
func (s *Store) AddToCart(ctx context.Context, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID && s.items[i].Size == item.Size && s.items[i].Color == item.Color {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}

	return s.mirror.SaveCart(ctx, s.userID, s.items)
}

// RemoveFromCart removes lines matching the key. Unset size/color
// default to the FIRST id-match's own values, so omitting them removes
// "all entries with this id" only when a single variant of that id is
// present. That defaulting is ambiguous with multiple same-id variants;
// it is preserved as the source behaves, not generalized.
func (s *Store) RemoveFromCart(ctx context.Context, id, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := -1
	for i := range s.items {
		if s.items[i].ID == id {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}
	if size == "" {
		size = s.items[first].Size
	}
	if color == "" {
		color = s.items[first].Color
	}

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID == id && it.Size == size && it.Color == color {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept

	return s.mirror.SaveCart(ctx, s.userID, s.items)
}

// UpdateQuantity applies a delta to the matching line and clamps the
// result to a minimum of 1. Decrementing a quantity-1 line leaves it at
// 1; it never removes the item.
func (s *Store) UpdateQuantity(ctx context.Context, id string, delta int, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := -1
	for i := range s.items {
		if s.items[i].ID == id {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}
	if size == "" {
		size = s.items[first].Size
	}
	if color == "" {
		color = s.items[first].Color
	}

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Size == size && s.items[i].Color == color {
			s.items[i].Quantity += delta
			if s.items[i].Quantity < 1 {
				s.items[i].Quantity = 1
			}
			break
		}
	}

	return s.mirror.SaveCart(ctx, s.userID, s.items)
}

// AddToWishlist dedups on id alone; re-adding an item is a no-op apart
// from the mirror write.
func (s *Store) AddToWishlist(ctx context.Context, item models.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := false
	for _, it := range s.wishlist {
		if it.ID == item.ID {
			exists = true
			break
		}
	}
	if !exists {
		s.wishlist = append(s.wishlist, item)
	}

	return s.mirror.SaveWishlist(ctx, s.userID, s.wishlist)
}

func (s *Store) RemoveFromWishlist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.wishlist[:0]
	for _, it := range s.wishlist {
		if it.ID == id {
			continue
		}
		kept = append(kept, it)
	}
	s.wishlist = kept

	return s.mirror.SaveWishlist(ctx, s.userID, s.wishlist)
}
