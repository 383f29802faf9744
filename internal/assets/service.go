package assets

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/alitto/pond/v2"

	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/metadata"
	"github.com/assetchain/asset-registry/internal/providers/ethereum"
)

const (
	defaultPoolSize  = 8
	defaultQueueSize = 64
)

// Service aggregates on-chain asset state with resolved metadata
//
//go:generate mockgen -source=service.go -destination=../mocks/asset_service.go -package=mocks -mock_names=Service=MockAssetService
type Service interface {
	// ListByOwner returns every asset held by a wallet, ordered by token id
	ListByOwner(ctx context.Context, owner string) ([]domain.Asset, error)

	// OwnerStats aggregates the holdings of a wallet
	OwnerStats(ctx context.Context, owner string) (*domain.OwnerStats, error)

	// Get returns one asset by token id
	Get(ctx context.Context, tokenID *big.Int) (*domain.Asset, error)
}

type service struct {
	contract ethereum.Client
	metadata metadata.Resolver
	pool     pond.Pool
}

// NewService creates an asset read service backed by a bounded worker pool.
// Zero pool sizes fall back to defaults.
func NewService(ctx context.Context, contract ethereum.Client, metadataResolver metadata.Resolver, poolSize, queueSize int) Service {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &service{
		contract: contract,
		metadata: metadataResolver,
		pool:     pond.NewPool(poolSize, pond.WithQueueSize(queueSize), pond.WithContext(ctx)),
	}
}

// fetch assembles one asset from its contract reads plus metadata
func (s *service) fetch(ctx context.Context, tokenID *big.Int) (*domain.Asset, error) {
	code, err := s.contract.AssetCode(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read code of token %s: %w", tokenID, err)
	}

	value, err := s.contract.AssetValue(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read value of token %s: %w", tokenID, err)
	}

	status, err := s.contract.AssetStatus(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read status of token %s: %w", tokenID, err)
	}

	tokenURI, err := s.contract.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to read URI of token %s: %w", tokenID, err)
	}

	return &domain.Asset{
		TokenID:     tokenID.String(),
		Code:        code,
		Value:       value.String(),
		Status:      status.Label(),
		StatusIndex: status,
		TokenURI:    tokenURI,
		Metadata:    s.metadata.Resolve(ctx, tokenURI),
	}, nil
}

// ListByOwner returns every asset held by a wallet, ordered by token id
func (s *service) ListByOwner(ctx context.Context, owner string) ([]domain.Asset, error) {
	normalized, ok := domain.NormalizeWalletAddress(owner)
	if !ok {
		return nil, domain.ErrInvalidWalletAddress
	}

	tokenIDs, err := s.contract.AssetsByOwner(ctx, normalized)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.Asset, len(tokenIDs))
	group := s.pool.NewGroup()
	for i, tokenID := range tokenIDs {
		group.SubmitErr(func() error {
			asset, err := s.fetch(ctx, tokenID)
			if err != nil {
				return err
			}
			results[i] = asset
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(results))
	for _, asset := range results {
		assets = append(assets, *asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		return compareTokenIDs(assets[i].TokenID, assets[j].TokenID) < 0
	})

	return assets, nil
}

// compareTokenIDs orders decimal token id strings numerically
func compareTokenIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// OwnerStats aggregates the holdings of a wallet
func (s *service) OwnerStats(ctx context.Context, owner string) (*domain.OwnerStats, error) {
	assets, err := s.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	stats := &domain.OwnerStats{
		TotalAssets: len(assets),
		ByStatus:    make(map[string]int),
	}

	total := new(big.Int)
	for _, asset := range assets {
		stats.ByStatus[asset.Status]++
		if value, ok := new(big.Int).SetString(asset.Value, 10); ok {
			total.Add(total, value)
		}
	}
	stats.TotalValue = total.String()

	return stats, nil
}

// Get returns one asset by token id
func (s *service) Get(ctx context.Context, tokenID *big.Int) (*domain.Asset, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, domain.ErrInvalidTokenID
	}
	return s.fetch(ctx, tokenID)
}
