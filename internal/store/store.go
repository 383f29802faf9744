package store

import (
	"context"

	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/store/schema"
)

// ProfileStore defines the interface for profile persistence
//
//go:generate mockgen -source=store.go -destination=../mocks/profile_store.go -package=mocks -mock_names=ProfileStore=MockProfileStore
type ProfileStore interface {
	// Get retrieves the profile for a wallet address. Returns (nil, nil)
	// when no profile exists. The read path performs no writes.
	Get(ctx context.Context, walletAddress string) (*schema.Profile, error)

	// Upsert creates or updates the profile for a wallet address with
	// tri-state field semantics: fields in update.Set are written, fields
	// in update.Clear are removed, untouched fields keep their value.
	// updated_at is refreshed on every call; wallet_address, status and
	// created_at are written only on first creation. Returns the document
	// as stored after the update.
	//
	// Returns domain.ErrInvalidWalletAddress for malformed addresses and
	// domain.ErrEmailTaken when a non-empty email is already claimed by
	// another wallet.
	Upsert(ctx context.Context, walletAddress string, update domain.ProfileUpdate) (*schema.Profile, error)
}
