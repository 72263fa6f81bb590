package processor

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var errNoTopics = errors.New("log has no topics")

// ParsedLog is a log decoded against a contract ABI. Args holds indexed and non indexed arguments by name.
type ParsedLog struct {
	Name string
	Args map[string]any
	Log  *types.Log
}

// ParseLog decodes log against contractABI.
func ParseLog(contractABI abi.ABI, log *types.Log) (*ParsedLog, error) {
	if log == nil {
		return nil, errors.New("missing log")
	}
	if len(log.Topics) == 0 {
		return nil, errNoTopics
	}

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("unknown event topic %s: %w", log.Topics[0].Hex(), err)
	}

	args := make(map[string]any, len(event.Inputs))
	if err := event.Inputs.UnpackIntoMap(args, log.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", event.Name, err)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(args, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse %s topics: %w", event.Name, err)
	}

	return &ParsedLog{Name: event.Name, Args: args, Log: log}, nil
}

// BigInt returns a uint256/int256 argument.
func (p *ParsedLog) BigInt(name string) (*big.Int, bool) {
	v, ok := p.Args[name].(*big.Int)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Uint64 returns an integer argument that fits into 64 bits.
func (p *ParsedLog) Uint64(name string) (uint64, bool) {
	switch v := p.Args[name].(type) {
	case *big.Int:
		if v == nil || !v.IsUint64() {
			return 0, false
		}
		return v.Uint64(), true
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	default:
		return 0, false
	}
}

func (p *ParsedLog) Address(name string) (common.Address, bool) {
	v, ok := p.Args[name].(common.Address)
	return v, ok
}

func (p *ParsedLog) Bool(name string) (bool, bool) {
	v, ok := p.Args[name].(bool)
	return v, ok
}

func (p *ParsedLog) String(name string) (string, bool) {
	v, ok := p.Args[name].(string)
	return v, ok
}

func (p *ParsedLog) Hash(name string) (common.Hash, bool) {
	switch v := p.Args[name].(type) {
	case [32]byte:
		return common.Hash(v), true
	case common.Hash:
		return v, true
	default:
		return common.Hash{}, false
	}
}
