package domain

import (
	"math/big"
	"time"
)

// AssetStatus is the lifecycle status index stored on-chain by the asset
// contract (statuses 0..3).
type AssetStatus uint8

const (
	AssetStatusInUse AssetStatus = iota
	AssetStatusMaintenance
	AssetStatusRetired
	AssetStatusLiquidated
)

// Valid reports whether the status index is one of the contract's four
// lifecycle states.
func (s AssetStatus) Valid() bool {
	return s <= AssetStatusLiquidated
}

// Label returns the machine-readable status label.
func (s AssetStatus) Label() string {
	switch s {
	case AssetStatusInUse:
		return "in_use"
	case AssetStatusMaintenance:
		return "maintenance"
	case AssetStatusRetired:
		return "retired"
	case AssetStatusLiquidated:
		return "liquidated"
	default:
		return "unknown"
	}
}

// DisplayLabel returns the human-readable status label used in timeline
// descriptions and asset listings.
func (s AssetStatus) DisplayLabel() string {
	switch s {
	case AssetStatusInUse:
		return "In use"
	case AssetStatusMaintenance:
		return "Maintenance"
	case AssetStatusRetired:
		return "Retired"
	case AssetStatusLiquidated:
		return "Liquidated"
	default:
		return "Unknown"
	}
}

// EventKind identifies the category of an asset lifecycle event.
type EventKind string

const (
	EventKindCreated       EventKind = "created"
	EventKindStatusChanged EventKind = "status_changed"
	EventKindTransferred   EventKind = "transferred"
)

// EventKinds lists all lifecycle event kinds in query order.
func EventKinds() []EventKind {
	return []EventKind{EventKindCreated, EventKindStatusChanged, EventKindTransferred}
}

// sortKeyBlockFactor spaces sort keys so that the log index never collides
// with the next block. Log indexes on EVM chains stay far below this bound.
const sortKeyBlockFactor = 1_000_000

// AssetEvent is a decoded asset contract log. Exactly one payload group is
// populated depending on Kind: Owner/Code/Value for created events,
// NewStatus/UpdatedBy/Timestamp for status changes, From/To/Timestamp for
// transfers.
type AssetEvent struct {
	Kind        EventKind
	TokenID     *big.Int
	BlockNumber uint64
	LogIndex    uint
	TxHash      string

	// created payload
	Owner string
	Code  string
	Value *big.Int

	// status_changed payload
	NewStatus AssetStatus
	UpdatedBy string

	// transferred payload
	From string
	To   string

	// Timestamp carried in the event arguments. Zero for created events,
	// whose timestamp must be resolved from the containing block.
	Timestamp time.Time
}

// SortKey derives the total ordering key from (block number, log index).
// Events for the same token in the same transaction never collide because
// the log index differentiates them.
func (e *AssetEvent) SortKey() uint64 {
	return e.BlockNumber*sortKeyBlockFactor + uint64(e.LogIndex)
}

// TimelineEvent is one entry of a reconstructed asset history. It is built
// fresh per history request and never persisted.
type TimelineEvent struct {
	Kind        EventKind `json:"kind"`
	Description string    `json:"description"`
	Actor       string    `json:"actor_address"`
	// OccurredAt is best-effort. Nil means the timestamp could not be
	// resolved (the "initial" sentinel for created events whose block
	// lookup failed).
	OccurredAt  *time.Time `json:"occurred_at"`
	TxHash      string     `json:"transaction_ref"`
	BlockNumber uint64     `json:"block_number"`
	LogIndex    uint       `json:"log_index"`
	SortKey     uint64     `json:"sort_key"`
}

// AssetDocument is one attached document reference from a token's off-chain
// metadata.
type AssetDocument struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// AssetMetadata is the off-chain metadata resolved from a token URI. When the
// metadata document cannot be fetched, Image falls back to the gateway URL of
// the token URI itself and the remaining fields stay empty.
type AssetMetadata struct {
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Documents   []AssetDocument `json:"documents"`
	AssetType   string          `json:"asset_type"`
}

// Asset is the aggregated view of one registered asset: on-chain detail plus
// resolved off-chain metadata.
type Asset struct {
	TokenID     string        `json:"token_id"`
	Code        string        `json:"code"`
	Value       string        `json:"value"`
	Status      string        `json:"status"`
	StatusIndex AssetStatus   `json:"status_index"`
	TokenURI    string        `json:"token_uri"`
	Metadata    AssetMetadata `json:"metadata"`
}

// OwnerStats aggregates the assets held by one wallet.
type OwnerStats struct {
	TotalAssets int            `json:"total_assets"`
	TotalValue  string         `json:"total_value"`
	ByStatus    map[string]int `json:"by_status"`
}

// ProfileStatus is the account status of a stored profile.
type ProfileStatus string

const (
	ProfileStatusActive ProfileStatus = "active"
	ProfileStatusLocked ProfileStatus = "locked"
)

// ProfileField names one of the mutable profile fields accepted on upsert.
type ProfileField string

const (
	FieldFullName       ProfileField = "full_name"
	FieldEmail          ProfileField = "email"
	FieldPhone          ProfileField = "phone"
	FieldContactAddress ProfileField = "contact_address"
	FieldAvatarURL      ProfileField = "avatar_url"
)

// MutableProfileFields lists the fields a caller may set or clear through the
// profile API. Anything else in a request payload is silently ignored.
func MutableProfileFields() []ProfileField {
	return []ProfileField{
		FieldFullName,
		FieldEmail,
		FieldPhone,
		FieldContactAddress,
		FieldAvatarURL,
	}
}

// ProfileUpdate carries the tri-state field semantics of a profile upsert:
// fields in Set get the given value, fields in Clear are removed from the
// document, fields in neither are left untouched.
type ProfileUpdate struct {
	Set   map[ProfileField]string
	Clear []ProfileField
}

// Empty reports whether the update touches no field. An empty update still
// refreshes updated_at and creates the document when absent.
func (u ProfileUpdate) Empty() bool {
	return len(u.Set) == 0 && len(u.Clear) == 0
}
