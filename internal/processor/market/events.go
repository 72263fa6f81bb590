package market

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

// Event is one of Created, Updated or Trade.
type Event interface {
	ProfileID() uint64
	isMarketEvent()
}

type Created struct {
	Profile uint64
	Creator common.Address
}

// Updated carries the vote totals and prices after a trade.
type Updated struct {
	Profile       uint64
	TrustVotes    *big.Int
	DistrustVotes *big.Int
	TrustPrice    *big.Int
	DistrustPrice *big.Int
}

// Trade is a purchase (IsBuy) or sale of trust or distrust votes.
type Trade struct {
	Profile    uint64
	Actor      common.Address
	IsBuy      bool
	IsPositive bool
	Amount     *big.Int
	Funds      *big.Int
}

func (e Created) ProfileID() uint64 { return e.Profile }
func (e Updated) ProfileID() uint64 { return e.Profile }
func (e Trade) ProfileID() uint64   { return e.Profile }

func (Created) isMarketEvent() {}
func (Updated) isMarketEvent() {}
func (Trade) isMarketEvent()   {}

func Wrangle(p *processor.ParsedLog) (Event, bool) {
	profile, ok := p.Uint64("profileId")
	if !ok {
		return nil, false
	}

	switch p.Name {
	case "MarketCreated":
		creator, ok := p.Address("creator")
		if !ok {
			return nil, false
		}
		return Created{Profile: profile, Creator: creator}, true

	case "MarketUpdated":
		trust, ok1 := p.BigInt("trustVotes")
		distrust, ok2 := p.BigInt("distrustVotes")
		trustPrice, ok3 := p.BigInt("trustPrice")
		distrustPrice, ok4 := p.BigInt("distrustPrice")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, false
		}
		return Updated{
			Profile:       profile,
			TrustVotes:    trust,
			DistrustVotes: distrust,
			TrustPrice:    trustPrice,
			DistrustPrice: distrustPrice,
		}, true

	case "VotesBought", "VotesSold":
		actor, ok1 := p.Address("actor")
		positive, ok2 := p.Bool("isPositive")
		amount, ok3 := p.BigInt("amount")
		funds, ok4 := p.BigInt("funds")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, false
		}
		return Trade{
			Profile:    profile,
			Actor:      actor,
			IsBuy:      p.Name == "VotesBought",
			IsPositive: positive,
			Amount:     amount,
			Funds:      funds,
		}, true

	default:
		return nil, false
	}
}
