package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staterastore/statera-api/internal/httperr"
)

// A cart lives in Redis for the duration of the shopping session and
// only becomes durable when checkout converts it into an order.

type Item struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ttl: 24 * time.Hour,
	}
}

func NewSessionID() string {
	return uuid.NewString()
}

func key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if err == redis.Nil {
		return &Cart{Items: []Item{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) AddItem(ctx context.Context, sessionID string, item Item) (*Cart, error) {
	if item.Quantity < 1 {
		return nil, httperr.ErrValidation("invalid_quantity", "Quantity must be at least 1.")
	}
	if item.Price < 0 {
		return nil, httperr.ErrValidation("invalid_price", "Price cannot be negative.")
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, item)
	}

	return c, s.save(ctx, sessionID, c)
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, httperr.ErrValidation("invalid_quantity", "Quantity must be at least 1.")
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, httperr.ErrNotFound("cart_item_not_found", "Product is not in the cart.")
	}

	return c, s.save(ctx, sessionID, c)
}

func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID uint) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	c.Items = items

	return c, s.save(ctx, sessionID, c)
}

func (s *Store) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	c := &Cart{Items: []Item{}}
	return c, s.save(ctx, sessionID, c)
}

// save recomputes the derived total before persisting. The total is
// never trusted from the payload.
func (s *Store) save(ctx context.Context, sessionID string, c *Cart) error {
	c.Total = total(c.Items)

	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sessionID), raw, s.ttl).Err()
}

func total(items []Item) float64 {
	sum := decimal.Zero
	for _, it := range items {
		price := decimal.NewFromFloat(it.Price)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.InexactFloat64()
}
