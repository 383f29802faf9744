package schema

import (
	"time"

	"github.com/assetchain/asset-registry/internal/domain"
)

// ProfileCollection is the MongoDB collection holding profile documents.
const ProfileCollection = "profiles"

// Profile is the off-chain user profile document, keyed by normalized wallet
// address. The wallet address is the sole identity: there is no account or
// password, and the key is immutable after creation.
//
// All personal fields are optional. A missing field is absent from the
// document entirely (unset on clear), which is what makes the sparse unique
// index on email work.
type Profile struct {
	WalletAddress  string               `bson:"wallet_address" json:"wallet_address"`
	FullName       *string              `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email          *string              `bson:"email,omitempty" json:"email,omitempty"`
	Phone          *string              `bson:"phone,omitempty" json:"phone,omitempty"`
	ContactAddress *string              `bson:"contact_address,omitempty" json:"contact_address,omitempty"`
	AvatarURL      *string              `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Status         domain.ProfileStatus `bson:"status" json:"status"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}
