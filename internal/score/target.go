// Package score fans processed state changes out to score recomputation.
package score

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TargetKind discriminates how a score target identifies a user.
type TargetKind string

const (
	KindProfile        TargetKind = "profile"
	KindAddress        TargetKind = "address"
	KindServiceAccount TargetKind = "service_account"
)

// Target identifies a user whose score is stale.
type Target struct {
	Kind      TargetKind      `json:"kind"`
	ProfileID uint64          `json:"profileId,omitempty"`
	Address   *common.Address `json:"address,omitempty"`
	Service   string          `json:"service,omitempty"`
	Account   string          `json:"account,omitempty"`
}

func ProfileTarget(profileID uint64) Target {
	return Target{Kind: KindProfile, ProfileID: profileID}
}

func AddressTarget(address common.Address) Target {
	return Target{Kind: KindAddress, Address: &address}
}

func ServiceAccountTarget(service, account string) Target {
	return Target{Kind: KindServiceAccount, Service: service, Account: account}
}

// Key returns a string that is equal for targets naming the same user.
func (t Target) Key() string {
	switch t.Kind {
	case KindProfile:
		return fmt.Sprintf("profile:%d", t.ProfileID)
	case KindAddress:
		if t.Address == nil {
			return "address:"
		}
		return "address:" + strings.ToLower(t.Address.Hex())
	case KindServiceAccount:
		return "service_account:" + strings.ToLower(t.Service) + ":" + t.Account
	default:
		return string(t.Kind)
	}
}

func (t Target) String() string {
	return t.Key()
}

// Validate reports whether the target carries the identifier its kind needs.
func (t Target) Validate() error {
	switch t.Kind {
	case KindProfile:
		if t.ProfileID == 0 {
			return fmt.Errorf("profile target without profile id")
		}
	case KindAddress:
		if t.Address == nil || *t.Address == (common.Address{}) {
			return fmt.Errorf("address target without address")
		}
	case KindServiceAccount:
		if t.Service == "" || t.Account == "" {
			return fmt.Errorf("service account target without service or account")
		}
	default:
		return fmt.Errorf("unknown target kind %q", t.Kind)
	}

	return nil
}

// RecomputeJob is the payload of the score-recompute queue.
type RecomputeJob struct {
	Target Target       `json:"target"`
	TxHash *common.Hash `json:"txHash,omitempty"`
}
