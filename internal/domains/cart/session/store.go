// Package session keeps per-user checkout state in Redis. The only
// state today is the applied coupon code; it expires with the session
// so an abandoned checkout never pins a coupon.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"watchitup-backend/internal/infrastructure/cache"
)

// TTL is refreshed on every write, so an active checkout stays alive.
const TTL = 30 * time.Minute

type Checkout struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CouponCode string    `json:"coupon_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store struct {
	cache *cache.RedisCache
}

func NewStore(c *cache.RedisCache) *Store {
	return &Store{cache: c}
}

func key(userID uuid.UUID) string {
	return "checkout:session:" + userID.String()
}

// Get returns the user's checkout session, or nil when none exists or
// it has expired.
func (s *Store) Get(ctx context.Context, userID uuid.UUID) (*Checkout, error) {
	var sess Checkout
	found, err := s.cache.Get(ctx, key(userID), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &sess, nil
}

// SetCoupon creates the session if needed and stores the coupon code.
func (s *Store) SetCoupon(ctx context.Context, userID uuid.UUID, code string) error {
	sess, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if sess == nil {
		sess = &Checkout{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: time.Now(),
		}
	}
	sess.CouponCode = code
	return s.cache.Set(ctx, key(userID), sess, TTL)
}

// ClearCoupon removes the coupon but keeps the session alive.
func (s *Store) ClearCoupon(ctx context.Context, userID uuid.UUID) error {
	sess, err := s.Get(ctx, userID)
	if err != nil || sess == nil {
		return err
	}
	sess.CouponCode = ""
	return s.cache.Set(ctx, key(userID), sess, TTL)
}

// Delete drops the whole session. Called after a successful placement.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.cache.Delete(ctx, key(userID))
}
