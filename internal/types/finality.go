package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// BlockFinality represents how confirmed a block must be before the poller reads up to it.
type BlockFinality string

const (
	// FinalityFinalized uses the finalized block tag (highest level of finality)
	FinalityFinalized BlockFinality = "finalized"

	// FinalitySafe uses the safe block tag (medium level of finality)
	FinalitySafe BlockFinality = "safe"

	// FinalityLatest uses the latest block minus a configured lag
	FinalityLatest BlockFinality = "latest"
)

func (f BlockFinality) String() string {
	return string(f)
}

// BlockTag maps the finality onto the json-rpc block tag used to query the head.
func (f BlockFinality) BlockTag() rpc.BlockNumber {
	switch f {
	case FinalityFinalized:
		return rpc.FinalizedBlockNumber
	case FinalitySafe:
		return rpc.SafeBlockNumber
	default:
		return rpc.LatestBlockNumber
	}
}

// ParseBlockFinality parses a string into a BlockFinality type.
func ParseBlockFinality(s string) (BlockFinality, error) {
	switch f := BlockFinality(s); f {
	case FinalityFinalized, FinalitySafe, FinalityLatest:
		return f, nil
	default:
		return "", fmt.Errorf("invalid block finality: %s (must be one of: finalized, safe, latest)", s)
	}
}
