package provenance

import (
	"fmt"

	"github.com/assetchain/asset-registry/internal/domain"
)

// Describe renders a human readable summary of one lifecycle event
func Describe(event domain.AssetEvent) string {
	switch event.Kind {
	case domain.EventKindCreated:
		return fmt.Sprintf("Asset registered with value %s", event.Value)
	case domain.EventKindStatusChanged:
		return fmt.Sprintf("Status changed to %s", event.NewStatus.DisplayLabel())
	case domain.EventKindTransferred:
		return fmt.Sprintf("Transferred from %s to %s",
			domain.TruncateAddress(event.From), domain.TruncateAddress(event.To))
	default:
		return string(event.Kind)
	}
}

// Actor returns the address responsible for one lifecycle event
func Actor(event domain.AssetEvent) string {
	switch event.Kind {
	case domain.EventKindCreated:
		return event.Owner
	case domain.EventKindStatusChanged:
		return event.UpdatedBy
	case domain.EventKindTransferred:
		return event.From
	default:
		return ""
	}
}
