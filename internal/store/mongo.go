package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/assetchain/asset-registry/internal/adapter"
	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/store/schema"
)

type mongoStore struct {
	profiles *mongo.Collection
	clock    adapter.Clock
}

// NewMongoStore creates a new MongoDB-backed profile store
func NewMongoStore(db *mongo.Database, clock adapter.Clock) ProfileStore {
	return &mongoStore{
		profiles: db.Collection(schema.ProfileCollection),
		clock:    clock,
	}
}

// Connect dials MongoDB and verifies the connection with a bounded
// exponential-backoff ping. Failure here is the only fatal startup error in
// the service: the caller is expected to abort.
func Connect(ctx context.Context, uri string, connectTimeout time.Duration) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = connectTimeout

	operation := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pingCtx, nil)
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the profile collection relies on:
// a unique index on wallet_address and a unique sparse index on email, so
// email uniqueness is enforced only among profiles that set one.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(schema.ProfileCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "wallet_address", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	return nil
}

// Get retrieves the profile for a wallet address
func (s *mongoStore) Get(ctx context.Context, walletAddress string) (*schema.Profile, error) {
	addr, ok := domain.NormalizeWalletAddress(walletAddress)
	if !ok {
		return nil, domain.ErrInvalidWalletAddress
	}

	var profile schema.Profile
	err := s.profiles.FindOne(ctx, bson.M{"wallet_address": addr}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}

// Upsert creates or updates the profile for a wallet address
func (s *mongoStore) Upsert(ctx context.Context, walletAddress string, update domain.ProfileUpdate) (*schema.Profile, error) {
	addr, ok := domain.NormalizeWalletAddress(walletAddress)
	if !ok {
		return nil, domain.ErrInvalidWalletAddress
	}

	// BSON datetimes have millisecond precision. Truncate up front so the
	// stored timestamps round-trip exactly, and so created_at equals
	// updated_at on first creation.
	now := s.clock.Now().UTC().Truncate(time.Millisecond)

	set := bson.M{"updated_at": now}
	for field, value := range update.Set {
		set[string(field)] = value
	}

	updateDoc := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"wallet_address": addr,
			"status":         domain.ProfileStatusActive,
			"created_at":     now,
		},
	}

	if len(update.Clear) > 0 {
		unset := bson.M{}
		for _, field := range update.Clear {
			unset[string(field)] = 1
		}
		updateDoc["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile schema.Profile
	err := s.profiles.FindOneAndUpdate(ctx, bson.M{"wallet_address": addr}, updateDoc, opts).Decode(&profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// wallet_address conflicts resolve through the upsert
			// filter itself; the only other unique index is email.
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &profile, nil
}
