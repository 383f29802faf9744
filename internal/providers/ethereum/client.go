package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/assetchain/asset-registry/internal/adapter"
	"github.com/assetchain/asset-registry/internal/domain"
)

// assetNFTABI covers the slice of the deployed asset contract this service
// consumes: per-owner enumeration, per-token detail reads, and the three
// lifecycle events. The contract itself is deployed separately; only its ABI
// is known here.
const assetNFTABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"getAssetsByOwner","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"assetCodes","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"assetValues","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"assetStatuses","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"owner","type":"address"},{"indexed":false,"name":"code","type":"string"},{"indexed":false,"name":"value","type":"uint256"}],"name":"AssetMinted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"status","type":"uint8"},{"indexed":false,"name":"updatedBy","type":"address"},{"indexed":false,"name":"timestamp","type":"uint256"}],"name":"AssetStatusUpdated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"from","type":"address"},{"indexed":false,"name":"to","type":"address"},{"indexed":false,"name":"timestamp","type":"uint256"}],"name":"AssetTransferred","type":"event"}
]`

// Event signatures, keyed by the lifecycle kind they map to
var (
	assetMintedSignature        = crypto.Keccak256Hash([]byte("AssetMinted(uint256,address,string,uint256)"))
	assetStatusUpdatedSignature = crypto.Keccak256Hash([]byte("AssetStatusUpdated(uint256,uint8,address,uint256)"))
	assetTransferredSignature   = crypto.Keccak256Hash([]byte("AssetTransferred(uint256,address,address,uint256)"))
)

// Client exposes the read surface of the asset contract plus log access for
// history reconstruction. It satisfies both assets.ContractClient and
// provenance.LogSource.
//
//go:generate mockgen -source=client.go -destination=../../mocks/asset_contract.go -package=mocks -mock_names=Client=MockAssetContract
type Client interface {
	// AssetsByOwner returns the token ids held by an owner
	AssetsByOwner(ctx context.Context, owner string) ([]*big.Int, error)

	// AssetCode returns the registry code of a token
	AssetCode(ctx context.Context, tokenID *big.Int) (string, error)

	// AssetValue returns the declared value of a token
	AssetValue(ctx context.Context, tokenID *big.Int) (*big.Int, error)

	// AssetStatus returns the lifecycle status of a token
	AssetStatus(ctx context.Context, tokenID *big.Int) (domain.AssetStatus, error)

	// TokenURI returns the metadata URI of a token
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)

	// LatestBlock returns the current chain head block number
	LatestBlock(ctx context.Context) (uint64, error)

	// AssetLogs fetches and decodes the logs of one lifecycle event kind
	// for one token within a single bounded block range. Range chunking is
	// the caller's responsibility.
	AssetLogs(ctx context.Context, kind domain.EventKind, tokenID *big.Int, fromBlock, toBlock uint64) ([]domain.AssetEvent, error)

	// BlockTime returns the timestamp of a block
	BlockTime(ctx context.Context, blockNumber uint64) (time.Time, error)

	// VerifyChainID checks that the connected node serves the expected chain
	VerifyChainID(ctx context.Context, expected uint64) error

	// Close closes the underlying connection
	Close()
}

type client struct {
	contractAddress common.Address
	eth             adapter.EthClient
	abi             abi.ABI
}

// NewClient creates an asset contract client bound to one deployed contract
func NewClient(contractAddress string, eth adapter.EthClient) (Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(assetNFTABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset contract ABI: %w", err)
	}

	return &client{
		contractAddress: common.HexToAddress(contractAddress),
		eth:             eth,
		abi:             parsed,
	}, nil
}

// call packs a contract read call, executes it, and unpacks the result
func (c *client) call(ctx context.Context, method string, result interface{}, args ...interface{}) error {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	output, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contractAddress,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	if err := c.abi.UnpackIntoInterface(result, method, output); err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return nil
}

// AssetsByOwner returns the token ids held by an owner
func (c *client) AssetsByOwner(ctx context.Context, owner string) ([]*big.Int, error) {
	if !common.IsHexAddress(owner) {
		return nil, domain.ErrInvalidWalletAddress
	}

	var tokenIDs []*big.Int
	if err := c.call(ctx, "getAssetsByOwner", &tokenIDs, common.HexToAddress(owner)); err != nil {
		return nil, err
	}
	return tokenIDs, nil
}

// AssetCode returns the registry code of a token
func (c *client) AssetCode(ctx context.Context, tokenID *big.Int) (string, error) {
	var code string
	if err := c.call(ctx, "assetCodes", &code, tokenID); err != nil {
		return "", err
	}
	return code, nil
}

// AssetValue returns the declared value of a token
func (c *client) AssetValue(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	var value *big.Int
	if err := c.call(ctx, "assetValues", &value, tokenID); err != nil {
		return nil, err
	}
	return value, nil
}

// AssetStatus returns the lifecycle status of a token
func (c *client) AssetStatus(ctx context.Context, tokenID *big.Int) (domain.AssetStatus, error) {
	var status uint8
	if err := c.call(ctx, "assetStatuses", &status, tokenID); err != nil {
		return 0, err
	}
	return domain.AssetStatus(status), nil
}

// TokenURI returns the metadata URI of a token
func (c *client) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	var uri string
	if err := c.call(ctx, "tokenURI", &uri, tokenID); err != nil {
		return "", err
	}
	return uri, nil
}

// LatestBlock returns the current chain head block number
func (c *client) LatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// signatureForKind maps a lifecycle event kind to its log topic signature
func signatureForKind(kind domain.EventKind) (common.Hash, error) {
	switch kind {
	case domain.EventKindCreated:
		return assetMintedSignature, nil
	case domain.EventKindStatusChanged:
		return assetStatusUpdatedSignature, nil
	case domain.EventKindTransferred:
		return assetTransferredSignature, nil
	default:
		return common.Hash{}, fmt.Errorf("unknown event kind: %s", kind)
	}
}

// AssetLogs fetches and decodes the logs of one lifecycle event kind for one
// token within a single bounded block range
func (c *client) AssetLogs(ctx context.Context, kind domain.EventKind, tokenID *big.Int, fromBlock, toBlock uint64) ([]domain.AssetEvent, error) {
	signature, err := signatureForKind(kind)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.contractAddress},
		Topics: [][]common.Hash{
			{signature},
			{common.BigToHash(tokenID)}, // tokenId is the only indexed argument
		},
	}

	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs for blocks %d-%d: %w", kind, fromBlock, toBlock, err)
	}

	events := make([]domain.AssetEvent, 0, len(logs))
	for _, vLog := range logs {
		event, err := c.parseAssetLog(vLog)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s log in tx %s: %w", kind, vLog.TxHash.Hex(), err)
		}
		events = append(events, *event)
	}

	return events, nil
}

// parseAssetLog decodes one raw log into a normalized asset event
func (c *client) parseAssetLog(vLog types.Log) (*domain.AssetEvent, error) {
	if len(vLog.Topics) != 2 {
		return nil, fmt.Errorf("expected 2 topics, got %d", len(vLog.Topics))
	}

	event := &domain.AssetEvent{
		TokenID:     new(big.Int).SetBytes(vLog.Topics[1].Bytes()),
		BlockNumber: vLog.BlockNumber,
		LogIndex:    vLog.Index,
		TxHash:      vLog.TxHash.Hex(),
	}

	switch vLog.Topics[0] {
	case assetMintedSignature:
		// AssetMinted(uint256 indexed tokenId, address owner, string code, uint256 value)
		values, err := c.abi.Unpack("AssetMinted", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack AssetMinted data: %w", err)
		}
		event.Kind = domain.EventKindCreated
		event.Owner = strings.ToLower(values[0].(common.Address).Hex())
		event.Code = values[1].(string)
		event.Value = values[2].(*big.Int)

	case assetStatusUpdatedSignature:
		// AssetStatusUpdated(uint256 indexed tokenId, uint8 status, address updatedBy, uint256 timestamp)
		values, err := c.abi.Unpack("AssetStatusUpdated", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack AssetStatusUpdated data: %w", err)
		}
		event.Kind = domain.EventKindStatusChanged
		event.NewStatus = domain.AssetStatus(values[0].(uint8))
		event.UpdatedBy = strings.ToLower(values[1].(common.Address).Hex())
		event.Timestamp = time.Unix(values[2].(*big.Int).Int64(), 0)

	case assetTransferredSignature:
		// AssetTransferred(uint256 indexed tokenId, address from, address to, uint256 timestamp)
		values, err := c.abi.Unpack("AssetTransferred", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack AssetTransferred data: %w", err)
		}
		event.Kind = domain.EventKindTransferred
		event.From = strings.ToLower(values[0].(common.Address).Hex())
		event.To = strings.ToLower(values[1].(common.Address).Hex())
		event.Timestamp = time.Unix(values[2].(*big.Int).Int64(), 0)

	default:
		return nil, fmt.Errorf("unknown event signature: %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// BlockTime returns the timestamp of a block
func (c *client) BlockTime(ctx context.Context, blockNumber uint64) (time.Time, error) {
	block, err := c.eth.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get block %d: %w", blockNumber, err)
	}
	return time.Unix(int64(block.Time()), 0), nil
}

// VerifyChainID checks that the connected node serves the expected chain
func (c *client) VerifyChainID(ctx context.Context, expected uint64) error {
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if chainID.Uint64() != expected {
		return fmt.Errorf("connected to chain %s, expected %d", chainID, expected)
	}
	return nil
}

// Close closes the underlying connection
func (c *client) Close() {
	c.eth.Close()
}
