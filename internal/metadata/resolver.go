package metadata

import (
	"context"

	"go.uber.org/zap"

	"github.com/assetchain/asset-registry/internal/adapter"
	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/logger"
	"github.com/assetchain/asset-registry/internal/uri"
)

const defaultAssetType = "Asset"

// payload mirrors the metadata JSON stored behind a token URI
type payload struct {
	Image       string                 `json:"image"`
	Description string                 `json:"description"`
	Documents   []domain.AssetDocument `json:"documents"`
	Attributes  []attribute            `json:"attributes"`
}

type attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Resolver fetches and normalizes asset metadata from token URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve fetches the metadata behind a token URI. Fetch and parse
	// failures degrade to a minimal record that treats the URI itself as
	// the image, so a broken gateway never hides an asset.
	Resolve(ctx context.Context, tokenURI string) domain.AssetMetadata
}

type resolver struct {
	uriResolver uri.Resolver
	httpClient  adapter.HTTPClient
}

// NewResolver creates a metadata resolver
func NewResolver(uriResolver uri.Resolver, httpClient adapter.HTTPClient) Resolver {
	return &resolver{
		uriResolver: uriResolver,
		httpClient:  httpClient,
	}
}

// Resolve fetches the metadata behind a token URI
func (r *resolver) Resolve(ctx context.Context, tokenURI string) domain.AssetMetadata {
	resolved, err := r.uriResolver.Resolve(ctx, tokenURI)
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve token URI",
			zap.String("tokenURI", tokenURI), zap.Error(err))
		return domain.AssetMetadata{AssetType: defaultAssetType}
	}

	var body payload
	if err := r.httpClient.Get(ctx, resolved, &body); err != nil {
		// the URI may point straight at an image rather than a JSON document
		logger.WarnCtx(ctx, "failed to fetch token metadata, treating URI as image",
			zap.String("url", resolved), zap.Error(err))
		return domain.AssetMetadata{
			Image:     resolved,
			AssetType: defaultAssetType,
		}
	}

	meta := domain.AssetMetadata{
		Description: body.Description,
		Documents:   body.Documents,
		AssetType:   defaultAssetType,
	}

	for _, attr := range body.Attributes {
		if attr.TraitType == "Type" && attr.Value != "" {
			meta.AssetType = attr.Value
			break
		}
	}

	if body.Image != "" {
		image, err := r.uriResolver.Resolve(ctx, body.Image)
		if err == nil {
			meta.Image = image
		}
	}
	if meta.Image == "" {
		meta.Image = resolved
	}

	return meta
}
