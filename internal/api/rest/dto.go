package rest

import (
	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/store/schema"
)

// profileResponse is the wire shape of a stored profile
type profileResponse struct {
	WalletAddress  string  `json:"wallet_address"`
	FullName       *string `json:"full_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	ContactAddress *string `json:"contact_address"`
	AvatarURL      *string `json:"avatar_url"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toProfileResponse(profile *schema.Profile) profileResponse {
	return profileResponse{
		WalletAddress:  profile.WalletAddress,
		FullName:       profile.FullName,
		Email:          profile.Email,
		Phone:          profile.Phone,
		ContactAddress: profile.ContactAddress,
		AvatarURL:      profile.AvatarURL,
		Status:         string(profile.Status),
		CreatedAt:      profile.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:      profile.UpdatedAt.UTC().Format(timeFormat),
	}
}

const timeFormat = "2006-01-02T15:04:05.000Z"

// assetListResponse wraps the assets held by one wallet
type assetListResponse struct {
	Owner  string         `json:"owner"`
	Count  int            `json:"count"`
	Assets []domain.Asset `json:"assets"`
}

// ownerStatsResponse wraps the aggregated holdings of one wallet
type ownerStatsResponse struct {
	Owner string            `json:"owner"`
	Stats domain.OwnerStats `json:"stats"`
}

// historyResponse wraps the reconstructed timeline of one token
type historyResponse struct {
	TokenID string                 `json:"token_id"`
	Events  []domain.TimelineEvent `json:"events"`
}
