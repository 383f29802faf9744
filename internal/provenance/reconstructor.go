package provenance

import (
	"context"
	"math/big"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/logger"
)

const (
	// DefaultLookbackBlocks bounds how far behind the chain head the
	// reconstruction window starts
	DefaultLookbackBlocks = 20000

	// DefaultMaxBlockRange is the widest block span a single log query may
	// cover. Public RPC endpoints reject wider ranges.
	DefaultMaxBlockRange = 2000
)

// LogSource supplies the chain data history reconstruction reads
//
//go:generate mockgen -source=reconstructor.go -destination=../mocks/log_source.go -package=mocks
type LogSource interface {
	// LatestBlock returns the current chain head block number
	LatestBlock(ctx context.Context) (uint64, error)

	// AssetLogs fetches the decoded logs of one event kind for one token
	// within a single bounded block range
	AssetLogs(ctx context.Context, kind domain.EventKind, tokenID *big.Int, fromBlock, toBlock uint64) ([]domain.AssetEvent, error)

	// BlockTime returns the timestamp of a block
	BlockTime(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config tunes the reconstruction window and query chunking
type Config struct {
	LookbackBlocks uint64
	MaxBlockRange  uint64
}

// Reconstructor rebuilds the lifecycle timeline of a token from its contract
// logs. Nothing is cached; every call reads the chain.
type Reconstructor struct {
	source LogSource
	config Config
}

// NewReconstructor creates a reconstructor over a log source. Zero config
// fields fall back to defaults.
func NewReconstructor(source LogSource, config Config) *Reconstructor {
	if config.LookbackBlocks == 0 {
		config.LookbackBlocks = DefaultLookbackBlocks
	}
	if config.MaxBlockRange == 0 {
		config.MaxBlockRange = DefaultMaxBlockRange
	}

	return &Reconstructor{
		source: source,
		config: config,
	}
}

type kindResult struct {
	events []domain.AssetEvent
	err    error
}

// History rebuilds the timeline of a token, newest event first. The window
// covers the trailing LookbackBlocks up to the chain head; any query failure
// fails the whole reconstruction rather than returning a partial timeline.
func (r *Reconstructor) History(ctx context.Context, tokenID *big.Int) ([]domain.TimelineEvent, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, domain.ErrInvalidTokenID
	}

	head, err := r.source.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	var fromBlock uint64
	if head > r.config.LookbackBlocks {
		fromBlock = head - r.config.LookbackBlocks
	}

	kinds := domain.EventKinds()
	results := make(chan kindResult, len(kinds))
	for _, kind := range kinds {
		go func(kind domain.EventKind) {
			events, err := r.collectKind(ctx, kind, tokenID, fromBlock, head)
			results <- kindResult{events: events, err: err}
		}(kind)
	}

	var events []domain.AssetEvent
	for range kinds {
		result := <-results
		if result.err != nil {
			return nil, result.err
		}
		events = append(events, result.events...)
	}

	timeline := r.buildTimeline(ctx, tokenID, events)
	return timeline, nil
}

// collectKind walks the block window for one event kind, one chunk at a time
func (r *Reconstructor) collectKind(ctx context.Context, kind domain.EventKind, tokenID *big.Int, fromBlock, toBlock uint64) ([]domain.AssetEvent, error) {
	var events []domain.AssetEvent

	start := fromBlock
	for start <= toBlock {
		end := start + r.config.MaxBlockRange - 1
		if end > toBlock {
			end = toBlock
		}

		chunk, err := r.source.AssetLogs(ctx, kind, tokenID, start, end)
		if err != nil {
			return nil, err
		}
		events = append(events, chunk...)

		start = end + 1
	}

	return events, nil
}

// buildTimeline merges the per-kind events into one ordered timeline,
// resolving mint timestamps from block headers and dropping duplicates
func (r *Reconstructor) buildTimeline(ctx context.Context, tokenID *big.Int, events []domain.AssetEvent) []domain.TimelineEvent {
	sort.Slice(events, func(i, j int) bool {
		return events[i].SortKey() < events[j].SortKey()
	})

	timeline := make([]domain.TimelineEvent, 0, len(events))
	seen := make(map[uint64]struct{}, len(events))
	for _, event := range events {
		key := event.SortKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		var occurredAt *time.Time
		if event.Kind == domain.EventKindCreated {
			// mint events carry no timestamp argument; read it from the
			// block header and degrade to unknown if the lookup fails
			blockTime, err := r.source.BlockTime(ctx, event.BlockNumber)
			if err != nil {
				logger.WarnCtx(ctx, "failed to resolve mint block time",
					zap.String("tokenID", tokenID.String()),
					zap.Uint64("blockNumber", event.BlockNumber),
					zap.Error(err))
			} else {
				occurredAt = &blockTime
			}
		} else if !event.Timestamp.IsZero() {
			ts := event.Timestamp
			occurredAt = &ts
		}

		timeline = append(timeline, domain.TimelineEvent{
			Kind:        event.Kind,
			Description: Describe(event),
			Actor:       Actor(event),
			OccurredAt:  occurredAt,
			TxHash:      event.TxHash,
			BlockNumber: event.BlockNumber,
			LogIndex:    event.LogIndex,
			SortKey:     key,
		})
	}

	// newest first
	for i, j := 0, len(timeline)-1; i < j; i, j = i+1, j-1 {
		timeline[i], timeline[j] = timeline[j], timeline[i]
	}

	return timeline
}
