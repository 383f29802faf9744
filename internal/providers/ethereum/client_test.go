package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetchain/asset-registry/internal/domain"
	"github.com/assetchain/asset-registry/internal/mocks"
	"github.com/assetchain/asset-registry/internal/providers/ethereum"
)

const testContract = "0x1111111111111111111111111111111111111111"

var (
	addressTy, _  = abi.NewType("address", "", nil)
	stringTy, _   = abi.NewType("string", "", nil)
	uint8Ty, _    = abi.NewType("uint8", "", nil)
	uint256Ty, _  = abi.NewType("uint256", "", nil)
	uint256sTy, _ = abi.NewType("uint256[]", "", nil)
)

func mustPack(t *testing.T, args abi.Arguments, values ...interface{}) []byte {
	t.Helper()
	data, err := args.Pack(values...)
	require.NoError(t, err)
	return data
}

func newClientFixture(t *testing.T) (*mocks.MockEthClient, ethereum.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	eth := mocks.NewMockEthClient(ctrl)
	client, err := ethereum.NewClient(testContract, eth)
	require.NoError(t, err)
	return eth, client
}

func TestNewClient_InvalidContractAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := ethereum.NewClient("not-an-address", mocks.NewMockEthClient(ctrl))
	assert.Error(t, err)
}

func TestClient_AssetLogs_DecodesMint(t *testing.T) {
	eth, client := newClientFixture(t)
	tokenID := big.NewInt(7)
	owner := common.HexToAddress("0xAbC0000000000000000000000000000000000dEf")

	mintLog := types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("AssetMinted(uint256,address,string,uint256)")),
			common.BigToHash(tokenID),
		},
		Data: mustPack(t,
			abi.Arguments{{Type: addressTy}, {Type: stringTy}, {Type: uint256Ty}},
			owner, "AST-007", big.NewInt(5000)),
		BlockNumber: 2100,
		Index:       3,
		TxHash:      common.HexToHash("0xaa"),
	}

	eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, uint64(2000), query.FromBlock.Uint64())
			assert.Equal(t, uint64(3999), query.ToBlock.Uint64())
			assert.Equal(t, []common.Address{common.HexToAddress(testContract)}, query.Addresses)
			require.Len(t, query.Topics, 2)
			assert.Equal(t, []common.Hash{common.BigToHash(tokenID)}, query.Topics[1])
			return []types.Log{mintLog}, nil
		})

	events, err := client.AssetLogs(context.Background(), domain.EventKindCreated, tokenID, 2000, 3999)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, domain.EventKindCreated, event.Kind)
	assert.Equal(t, int64(7), event.TokenID.Int64())
	assert.Equal(t, "0xabc0000000000000000000000000000000000def", event.Owner)
	assert.Equal(t, "AST-007", event.Code)
	assert.Equal(t, int64(5000), event.Value.Int64())
	assert.Equal(t, uint64(2100), event.BlockNumber)
	assert.Equal(t, uint(3), event.LogIndex)
	assert.True(t, event.Timestamp.IsZero())
}

func TestClient_AssetLogs_DecodesStatusUpdate(t *testing.T) {
	eth, client := newClientFixture(t)
	tokenID := big.NewInt(7)
	updatedBy := common.HexToAddress("0x2220000000000000000000000000000000000def")
	eventTime := int64(1700001000)

	statusLog := types.Log{
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("AssetStatusUpdated(uint256,uint8,address,uint256)")),
			common.BigToHash(tokenID),
		},
		Data: mustPack(t,
			abi.Arguments{{Type: uint8Ty}, {Type: addressTy}, {Type: uint256Ty}},
			uint8(domain.AssetStatusRetired), updatedBy, big.NewInt(eventTime)),
		BlockNumber: 4100,
	}

	eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{statusLog}, nil)

	events, err := client.AssetLogs(context.Background(), domain.EventKindStatusChanged, tokenID, 4000, 5000)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, domain.EventKindStatusChanged, event.Kind)
	assert.Equal(t, domain.AssetStatusRetired, event.NewStatus)
	assert.Equal(t, "0x2220000000000000000000000000000000000def", event.UpdatedBy)
	assert.Equal(t, time.Unix(eventTime, 0), event.Timestamp)
}

func TestClient_AssetLogs_DecodesTransfer(t *testing.T) {
	eth, client := newClientFixture(t)
	tokenID := big.NewInt(7)
	from := common.HexToAddress("0x1110000000000000000000000000000000000def")
	to := common.HexToAddress("0x2220000000000000000000000000000000000def")

	transferLog := types.Log{
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("AssetTransferred(uint256,address,address,uint256)")),
			common.BigToHash(tokenID),
		},
		Data: mustPack(t,
			abi.Arguments{{Type: addressTy}, {Type: addressTy}, {Type: uint256Ty}},
			from, to, big.NewInt(1700002000)),
		BlockNumber: 4200,
	}

	eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{transferLog}, nil)

	events, err := client.AssetLogs(context.Background(), domain.EventKindTransferred, tokenID, 4000, 5000)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, domain.EventKindTransferred, event.Kind)
	assert.Equal(t, "0x1110000000000000000000000000000000000def", event.From)
	assert.Equal(t, "0x2220000000000000000000000000000000000def", event.To)
}

func TestClient_AssetLogs_FilterFailure(t *testing.T) {
	eth, client := newClientFixture(t)
	filterErr := errors.New("query returned more than 10000 results")

	eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return(nil, filterErr)

	_, err := client.AssetLogs(context.Background(), domain.EventKindCreated, big.NewInt(1), 0, 2000)
	assert.ErrorIs(t, err, filterErr)
}

func TestClient_AssetCode(t *testing.T) {
	eth, client := newClientFixture(t)

	eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).
		Return(mustPack(t, abi.Arguments{{Type: stringTy}}, "AST-042"), nil)

	code, err := client.AssetCode(context.Background(), big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, "AST-042", code)
}

func TestClient_AssetsByOwner(t *testing.T) {
	eth, client := newClientFixture(t)

	eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).
		Return(mustPack(t, abi.Arguments{{Type: uint256sTy}},
			[]*big.Int{big.NewInt(3), big.NewInt(12)}), nil)

	ids, err := client.AssetsByOwner(context.Background(), "0xabc0000000000000000000000000000000000def")
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, int64(3), ids[0].Int64())
	assert.Equal(t, int64(12), ids[1].Int64())
}

func TestClient_AssetsByOwner_InvalidAddress(t *testing.T) {
	_, client := newClientFixture(t)

	_, err := client.AssetsByOwner(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidWalletAddress)
}

func TestClient_AssetStatus(t *testing.T) {
	eth, client := newClientFixture(t)

	eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).
		Return(mustPack(t, abi.Arguments{{Type: uint8Ty}}, uint8(2)), nil)

	status, err := client.AssetStatus(context.Background(), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.AssetStatusRetired, status)
}

func TestClient_LatestBlock(t *testing.T) {
	eth, client := newClientFixture(t)

	eth.EXPECT().HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{Number: big.NewInt(123456)}, nil)

	head, err := client.LatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), head)
}

func TestClient_BlockTime(t *testing.T) {
	eth, client := newClientFixture(t)

	block := types.NewBlockWithHeader(&types.Header{
		Number: big.NewInt(500),
		Time:   1700000000,
	})
	eth.EXPECT().BlockByNumber(gomock.Any(), big.NewInt(500)).Return(block, nil)

	ts, err := client.BlockTime(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0), ts)
}

func TestClient_VerifyChainID(t *testing.T) {
	eth, client := newClientFixture(t)

	eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(338), nil)
	assert.NoError(t, client.VerifyChainID(context.Background(), 338))

	eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	assert.Error(t, client.VerifyChainID(context.Background(), 338))
}
