package vouch

import (
	"math/big"

	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

// Event is one of Vouched, Unvouched or MarkedUnhealthy.
type Event interface {
	VouchID() uint64
	isVouchEvent()
}

// Ids are the three indexed arguments every vouch event carries.
type Ids struct {
	ID               uint64
	AuthorProfileID  uint64
	SubjectProfileID uint64
}

func (e Ids) VouchID() uint64 { return e.ID }

type Vouched struct {
	Ids
	AmountStaked *big.Int
}

type (
	Unvouched       struct{ Ids }
	MarkedUnhealthy struct{ Ids }
)

func (Vouched) isVouchEvent()         {}
func (Unvouched) isVouchEvent()       {}
func (MarkedUnhealthy) isVouchEvent() {}

func Wrangle(p *processor.ParsedLog) (Event, bool) {
	id, ok1 := p.Uint64("vouchId")
	author, ok2 := p.Uint64("authorProfileId")
	subject, ok3 := p.Uint64("subjectProfileId")
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	ids := Ids{ID: id, AuthorProfileID: author, SubjectProfileID: subject}

	switch p.Name {
	case "Vouched":
		amount, ok := p.BigInt("amountStaked")
		if !ok {
			return nil, false
		}
		return Vouched{Ids: ids, AmountStaked: amount}, true
	case "Unvouched":
		return Unvouched{ids}, true
	case "MarkedUnhealthy":
		return MarkedUnhealthy{ids}, true
	default:
		return nil, false
	}
}
