package types

import (
	"fmt"
	"strings"
)

// Contract identifies which on-chain contract emitted a raw event.
type Contract string

const (
	ContractAttestation Contract = "attestation"
	ContractReview      Contract = "review"
	ContractVouch       Contract = "vouch"
	ContractVote        Contract = "vote"
	ContractDiscussion  Contract = "discussion"
	ContractMarket      Contract = "market"
)

// AllContracts lists every contract type in a stable order.
var AllContracts = []Contract{
	ContractAttestation,
	ContractReview,
	ContractVouch,
	ContractVote,
	ContractDiscussion,
	ContractMarket,
}

func (c Contract) String() string {
	return string(c)
}

// ParseContract parses a case-insensitive contract name.
func ParseContract(s string) (Contract, error) {
	c := Contract(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllContracts {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown contract %q", s)
}
