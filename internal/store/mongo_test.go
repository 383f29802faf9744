package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/store/schema"
)

var testDB *mongo.Database

// fakeClock lets tests control stored timestamps
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }

func (c *fakeClock) Unix(sec int64, nsec int64) time.Time { return time.Unix(sec, nsec) }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external MongoDB (for CI or local development)
	uri := os.Getenv("TEST_MONGO_URI")

	var container *mongodb.MongoDBContainer
	var err error

	if uri == "" {
		container, err = mongodb.Run(ctx, "mongo:7")
		if err != nil {
			fmt.Printf("Failed to start MongoDB container: %v\n", err)
			os.Exit(1)
		}

		uri, err = container.ConnectionString(ctx)
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := container.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate MongoDB container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started MongoDB container\n")
	} else {
		fmt.Printf("Using external MongoDB: %s\n", uri)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Printf("Failed to connect to MongoDB: %v\n", err)
		if container != nil {
			if err := container.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate MongoDB container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	testDB = client.Database("asset_registry_test")
	if err := EnsureIndexes(ctx, testDB); err != nil {
		fmt.Printf("Failed to create indexes: %v\n", err)
		if container != nil {
			if err := container.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate MongoDB container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	code := m.Run()

	_ = client.Disconnect(ctx)
	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate MongoDB container: %v\n", err)
		}
	}

	os.Exit(code)
}

// newTestStore wipes the profiles collection and returns a store with a
// controllable clock
func newTestStore(t *testing.T) (ProfileStore, *fakeClock) {
	t.Helper()

	ctx := context.Background()
	_, err := testDB.Collection(schema.ProfileCollection).DeleteMany(ctx, bson.M{})
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	return NewMongoStore(testDB, clock), clock
}

const (
	walletA = "0xaaa0000000000000000000000000000000000aaa"
	walletB = "0xbbb0000000000000000000000000000000000bbb"
)

func setFields(fields map[domain.ProfileField]string) domain.ProfileUpdate {
	return domain.ProfileUpdate{Set: fields}
}

func TestUpsert_CreatesProfile(t *testing.T) {
	s, clock := newTestStore(t)
	ctx := context.Background()

	profile, err := s.Upsert(ctx, walletA, setFields(map[domain.ProfileField]string{
		domain.FieldFullName: "Alice Nguyen",
		domain.FieldEmail:    "alice@example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, walletA, profile.WalletAddress)
	assert.Equal(t, domain.ProfileStatusActive, profile.Status)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Alice Nguyen", *profile.FullName)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "alice@example.com", *profile.Email)
	assert.Nil(t, profile.Phone)
	assert.Nil(t, profile.ContactAddress)
	assert.Nil(t, profile.AvatarURL)

	// first creation stamps both timestamps with the same instant
	assert.Equal(t, clock.now, profile.CreatedAt.UTC())
	assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
}

func TestUpsert_EmptyUpdateCreatesBareProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	profile, err := s.Upsert(ctx, walletA, domain.ProfileUpdate{})
	require.NoError(t, err)

	assert.Equal(t, walletA, profile.WalletAddress)
	assert.Equal(t, domain.ProfileStatusActive, profile.Status)
	assert.Nil(t, profile.FullName)
}

func TestUpsert_TriStateSemantics(t *testing.T) {
	s, clock := newTestStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, walletA, setFields(map[domain.ProfileField]string{
		domain.FieldFullName: "Alice Nguyen",
		domain.FieldEmail:    "alice@example.com",
		domain.FieldPhone:    "+84901234567",
	}))
	require.NoError(t, err)

	clock.advance(time.Hour)

	// set one field, clear another, leave the rest untouched
	profile, err := s.Upsert(ctx, walletA, domain.ProfileUpdate{
		Set:   map[domain.ProfileField]string{domain.FieldPhone: "+84907654321"},
		Clear: []domain.ProfileField{domain.FieldEmail},
	})
	require.NoError(t, err)

	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Alice Nguyen", *profile.FullName)
	assert.Nil(t, profile.Email)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, "+84907654321", *profile.Phone)

	assert.True(t, profile.UpdatedAt.After(profile.CreatedAt))
	assert.Equal(t, domain.ProfileStatusActive, profile.Status)
}

func TestUpsert_ClearingUnsetFieldIsHarmless(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	profile, err := s.Upsert(ctx, walletA, domain.ProfileUpdate{
		Clear: []domain.ProfileField{domain.FieldAvatarURL},
	})
	require.NoError(t, err)
	assert.Nil(t, profile.AvatarURL)
}

func TestUpsert_EmailUniqueness(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, walletA, setFields(map[domain.ProfileField]string{
		domain.FieldEmail: "shared@example.com",
	}))
	require.NoError(t, err)

	// another wallet claiming the same email is rejected
	_, err = s.Upsert(ctx, walletB, setFields(map[domain.ProfileField]string{
		domain.FieldEmail: "shared@example.com",
	}))
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// a different email is fine
	_, err = s.Upsert(ctx, walletB, setFields(map[domain.ProfileField]string{
		domain.FieldEmail: "other@example.com",
	}))
	assert.NoError(t, err)

	// re-setting your own email is not a conflict
	_, err = s.Upsert(ctx, walletA, setFields(map[domain.ProfileField]string{
		domain.FieldEmail: "shared@example.com",
	}))
	assert.NoError(t, err)
}

func TestUpsert_ConcurrentSameWalletProducesOneDocument(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const writers = 16

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Upsert(ctx, walletA, setFields(map[domain.ProfileField]string{
				domain.FieldPhone: fmt.Sprintf("+1-555-%04d", i),
			}))
		}()
	}
	wg.Wait()

	// a wallet_address race on the unique index must never surface as an
	// email conflict or any other error
	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	count, err := testDB.Collection(schema.ProfileCollection).
		CountDocuments(ctx, bson.M{"wallet_address": walletA})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	profile, err := s.Get(ctx, walletA)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, domain.ProfileStatusActive, profile.Status)
	require.NotNil(t, profile.Phone)
}

func TestUpsert_ProfilesWithoutEmailDoNotCollide(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// the email index is sparse, so email-less profiles never collide
	_, err := s.Upsert(ctx, walletA, domain.ProfileUpdate{})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, walletB, domain.ProfileUpdate{})
	require.NoError(t, err)
}

func TestGetAndUpsert_CaseInsensitiveAddress(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, "0xAAA0000000000000000000000000000000000AAA", setFields(map[domain.ProfileField]string{
		domain.FieldFullName: "Alice Nguyen",
	}))
	require.NoError(t, err)

	profile, err := s.Get(ctx, walletA)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, walletA, profile.WalletAddress)

	// mixed case lookups hit the same document
	profile, err = s.Get(ctx, "0xAaA0000000000000000000000000000000000aAa")
	require.NoError(t, err)
	require.NotNil(t, profile)
}

func TestGet_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	profile, err := s.Get(context.Background(), walletA)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGet_InvalidAddress(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "0x123")
	assert.ErrorIs(t, err, domain.ErrInvalidWalletAddress)

	_, err = s.Upsert(context.Background(), "nope", domain.ProfileUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidWalletAddress)
}
