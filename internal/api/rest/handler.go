package rest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/assetchain/asset-registry/internal/assets"
	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/store"
)

// HistoryService reconstructs the lifecycle timeline of a token
type HistoryService interface {
	History(ctx context.Context, tokenID *big.Int) ([]domain.TimelineEvent, error)
}

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetProfile retrieves the profile of a wallet
	// GET /api/profile/:wallet_address
	GetProfile(c *gin.Context)

	// UpdateProfile creates or updates the profile of a wallet. Fields
	// absent from the body stay untouched; fields sent as null or ""
	// are cleared.
	// PUT /api/profile/:wallet_address
	UpdateProfile(c *gin.Context)

	// ListAssets retrieves the assets held by a wallet
	// GET /api/assets?owner=<address>
	ListAssets(c *gin.Context)

	// GetOwnerStats aggregates the holdings of a wallet
	// GET /api/assets/stats?owner=<address>
	GetOwnerStats(c *gin.Context)

	// GetAsset retrieves one asset by token id
	// GET /api/assets/:token_id
	GetAsset(c *gin.Context)

	// GetAssetHistory reconstructs the lifecycle timeline of a token
	// GET /api/assets/:token_id/history
	GetAssetHistory(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	profiles store.ProfileStore
	assets   assets.Service
	history  HistoryService
}

// NewHandler creates a new REST API handler
func NewHandler(profiles store.ProfileStore, assetService assets.Service, history HistoryService) Handler {
	return &handler{
		profiles: profiles,
		assets:   assetService,
		history:  history,
	}
}

// GetProfile retrieves the profile of a wallet
func (h *handler) GetProfile(c *gin.Context) {
	walletAddress, ok := domain.NormalizeWalletAddress(c.Param("wallet_address"))
	if !ok {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), walletAddress)
	if err != nil {
		respondDatabaseError(c, err, "Failed to load profile",
			zap.String("walletAddress", walletAddress))
		return
	}
	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile creates or updates the profile of a wallet
func (h *handler) UpdateProfile(c *gin.Context) {
	walletAddress, ok := domain.NormalizeWalletAddress(c.Param("wallet_address"))
	if !ok {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	update, err := buildProfileUpdate(body)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), walletAddress, update)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondConflict(c, "Email already in use by another wallet")
			return
		}
		respondDatabaseError(c, err, "Failed to save profile",
			zap.String("walletAddress", walletAddress))
		return
	}
	if profile == nil {
		respondInternalError(c, errors.New("upsert returned no profile"), "Failed to save profile",
			zap.String("walletAddress", walletAddress))
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// buildProfileUpdate maps a raw request body onto the update semantics: a
// string sets the field, null or "" clears it, absence leaves it untouched.
// Unknown keys are ignored.
func buildProfileUpdate(body map[string]interface{}) (domain.ProfileUpdate, error) {
	update := domain.ProfileUpdate{
		Set: make(map[domain.ProfileField]string),
	}

	for _, field := range domain.MutableProfileFields() {
		raw, present := body[string(field)]
		if !present {
			continue
		}

		switch value := raw.(type) {
		case nil:
			update.Clear = append(update.Clear, field)
		case string:
			value = strings.TrimSpace(value)
			if value == "" {
				update.Clear = append(update.Clear, field)
			} else {
				update.Set[field] = value
			}
		default:
			return domain.ProfileUpdate{}, fmt.Errorf("field %s must be a string or null", field)
		}
	}

	return update, nil
}

// ownerFromQuery validates the owner query parameter
func ownerFromQuery(c *gin.Context) (string, bool) {
	owner, ok := domain.NormalizeWalletAddress(c.Query("owner"))
	if !ok {
		respondBadRequest(c, "A valid owner address is required")
		return "", false
	}
	return owner, true
}

// ListAssets retrieves the assets held by a wallet
func (h *handler) ListAssets(c *gin.Context) {
	owner, ok := ownerFromQuery(c)
	if !ok {
		return
	}

	result, err := h.assets.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		respondUpstreamError(c, err, "Failed to read assets from chain",
			zap.String("owner", owner))
		return
	}

	c.JSON(http.StatusOK, assetListResponse{
		Owner:  owner,
		Count:  len(result),
		Assets: result,
	})
}

// GetOwnerStats aggregates the holdings of a wallet
func (h *handler) GetOwnerStats(c *gin.Context) {
	owner, ok := ownerFromQuery(c)
	if !ok {
		return
	}

	stats, err := h.assets.OwnerStats(c.Request.Context(), owner)
	if err != nil {
		respondUpstreamError(c, err, "Failed to read assets from chain",
			zap.String("owner", owner))
		return
	}

	c.JSON(http.StatusOK, ownerStatsResponse{
		Owner: owner,
		Stats: *stats,
	})
}

// tokenIDFromParam validates the token_id path parameter
func tokenIDFromParam(c *gin.Context) (*big.Int, bool) {
	raw := c.Param("token_id")
	tokenID, ok := new(big.Int).SetString(raw, 10)
	if !ok || tokenID.Sign() < 0 {
		respondBadRequest(c, "Invalid token id")
		return nil, false
	}
	return tokenID, true
}

// GetAsset retrieves one asset by token id
func (h *handler) GetAsset(c *gin.Context) {
	tokenID, ok := tokenIDFromParam(c)
	if !ok {
		return
	}

	asset, err := h.assets.Get(c.Request.Context(), tokenID)
	if err != nil {
		respondUpstreamError(c, err, "Failed to read asset from chain",
			zap.String("tokenID", tokenID.String()))
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetAssetHistory reconstructs the lifecycle timeline of a token
func (h *handler) GetAssetHistory(c *gin.Context) {
	tokenID, ok := tokenIDFromParam(c)
	if !ok {
		return
	}

	events, err := h.history.History(c.Request.Context(), tokenID)
	if err != nil {
		respondUpstreamError(c, err, "Failed to reconstruct asset history",
			zap.String("tokenID", tokenID.String()))
		return
	}

	c.JSON(http.StatusOK, historyResponse{
		TokenID: tokenID.String(),
		Events:  events,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "asset-registry-api",
	})
}
