// Package cache is the ephemeral key-value store backing two flows: the
// preview handoff between the editor and a separately opened preview
// surface, and per-template customization overrides. The handoff is an
// explicit message channel: one writer stashes a bundle, one reader takes
// it, and taking deletes it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/folioforge/portfolio-backend/models"
)

// PreviewBundle is the documented payload of the handoff channel.
type PreviewBundle struct {
	Data           *models.RawPortfolio `json:"data"`
	Template       string               `json:"template"`
	Customizations map[string]string    `json:"customizations,omitempty"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// StashPreview writes a bundle and returns the one-time token the preview
// surface uses to claim it. Unclaimed bundles expire with the TTL.
func (s *Store) StashPreview(ctx context.Context, bundle *PreviewBundle) (string, error) {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.rdb.Set(ctx, previewKey(token), payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// TakePreview claims a stashed bundle. The read is destructive: a second
// take of the same token returns nil, as does an expired or unknown token.
func (s *Store) TakePreview(ctx context.Context, token string) (*PreviewBundle, error) {
	payload, err := s.rdb.GetDel(ctx, previewKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bundle PreviewBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// SaveCustomizations stores the override bag for one template. Overrides
// have no TTL; they live until overwritten.
func (s *Store) SaveCustomizations(ctx context.Context, userID uuid.UUID, templateID string, overrides map[string]string) error {
	payload, err := json.Marshal(overrides)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, customizationsKey(userID, templateID), payload, 0).Err()
}

// Customizations returns the stored override bag, or nil when none exists.
func (s *Store) Customizations(ctx context.Context, userID uuid.UUID, templateID string) (map[string]string, error) {
	payload, err := s.rdb.Get(ctx, customizationsKey(userID, templateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var overrides map[string]string
	if err := json.Unmarshal(payload, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func previewKey(token string) string {
	return "preview:" + token
}

func customizationsKey(userID uuid.UUID, templateID string) string {
	return fmt.Sprintf("customizations:%s:%s", userID, templateID)
}
