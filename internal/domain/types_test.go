package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assetchain/asset-registry/internal/domain"
)

func TestAssetStatus(t *testing.T) {
	tests := []struct {
		status       domain.AssetStatus
		valid        bool
		label        string
		displayLabel string
	}{
		{domain.AssetStatusInUse, true, "in_use", "In use"},
		{domain.AssetStatusMaintenance, true, "maintenance", "Maintenance"},
		{domain.AssetStatusRetired, true, "retired", "Retired"},
		{domain.AssetStatusLiquidated, true, "liquidated", "Liquidated"},
		{domain.AssetStatus(4), false, "unknown", "Unknown"},
		{domain.AssetStatus(255), false, "unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.label, tt.status.Label())
			assert.Equal(t, tt.displayLabel, tt.status.DisplayLabel())
		})
	}
}

func TestAssetEvent_SortKey(t *testing.T) {
	a := domain.AssetEvent{BlockNumber: 100, LogIndex: 5}
	b := domain.AssetEvent{BlockNumber: 100, LogIndex: 6}
	c := domain.AssetEvent{BlockNumber: 101, LogIndex: 0}

	// log index breaks ties within a block, block number dominates
	assert.Less(t, a.SortKey(), b.SortKey())
	assert.Less(t, b.SortKey(), c.SortKey())

	assert.Equal(t, uint64(100_000_005), a.SortKey())
}

func TestEventKinds(t *testing.T) {
	kinds := domain.EventKinds()
	assert.Equal(t, []domain.EventKind{
		domain.EventKindCreated,
		domain.EventKindStatusChanged,
		domain.EventKindTransferred,
	}, kinds)
}

func TestProfileUpdate_Empty(t *testing.T) {
	assert.True(t, domain.ProfileUpdate{}.Empty())
	assert.False(t, domain.ProfileUpdate{
		Set: map[domain.ProfileField]string{domain.FieldFullName: "Alice"},
	}.Empty())
	assert.False(t, domain.ProfileUpdate{
		Clear: []domain.ProfileField{domain.FieldEmail},
	}.Empty())
}

func TestMutableProfileFields(t *testing.T) {
	fields := domain.MutableProfileFields()
	assert.Len(t, fields, 5)
	assert.Contains(t, fields, domain.FieldEmail)
	assert.NotContains(t, fields, domain.ProfileField("wallet_address"))
	assert.NotContains(t, fields, domain.ProfileField("status"))
}

func TestAssetEventFieldsByKind(t *testing.T) {
	mint := domain.AssetEvent{
		Kind:    domain.EventKindCreated,
		TokenID: big.NewInt(7),
		Owner:   "0xabc0000000000000000000000000000000000def",
		Code:    "AST-007",
		Value:   big.NewInt(1000),
	}
	assert.Equal(t, domain.EventKindCreated, mint.Kind)
	assert.Equal(t, "AST-007", mint.Code)
}
