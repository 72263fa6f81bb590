package processor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

// ViewReader reads authoritative entity state through the view functions of one contract.
type ViewReader struct {
	client  rpc.ChainClient
	address common.Address
	abi     abi.ABI
}

func NewViewReader(client rpc.ChainClient, address common.Address, views abi.ABI) *ViewReader {
	return &ViewReader{
		client:  client,
		address: address,
		abi:     views,
	}
}

// Address returns the contract address.
func (r *ViewReader) Address() common.Address {
	return r.address
}

// Call invokes method at the latest block and unpacks its outputs into out, a pointer to a struct
// whose fields match the output names.
func (r *ViewReader) Call(ctx context.Context, out any, method string, args ...any) error {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	to := r.address
	result, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("%s(%v) on %s: %w", method, args, r.address.Hex(), err)
	}

	if err := r.abi.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return nil
}

// CallByID calls a view keyed by entity id. A zero id in the response means the entity does not exist.
func (r *ViewReader) CallByID(ctx context.Context, out interface{ EntityID() *big.Int }, method string, id uint64) error {
	if err := r.Call(ctx, out, method, new(big.Int).SetUint64(id)); err != nil {
		return err
	}

	if got := out.EntityID(); got == nil || got.Sign() == 0 {
		return fmt.Errorf("%s(%d): %w", method, id, rpc.ErrEntityNotFound)
	}

	return nil
}

// U64 narrows a uint256 to uint64, saturating at the maximum.
func U64(v *big.Int) uint64 {
	if v == nil || v.Sign() < 0 {
		return 0
	}
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
