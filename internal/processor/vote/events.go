package vote

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

// Event is Voted or Changed.
type Event interface {
	VoteID() uint64
	isVoteEvent()
}

// Voted is a new up or down vote on an entity of another contract.
type Voted struct {
	ID             uint64
	VoterProfileID uint64
	TargetContract common.Address
	TargetID       uint64
	IsUpvote       bool
}

// Changed flips the direction of an existing vote.
type Changed struct {
	ID             uint64
	VoterProfileID uint64
	IsUpvote       bool
}

func (e Voted) VoteID() uint64   { return e.ID }
func (e Changed) VoteID() uint64 { return e.ID }

func (Voted) isVoteEvent()   {}
func (Changed) isVoteEvent() {}

func Wrangle(p *processor.ParsedLog) (Event, bool) {
	id, ok1 := p.Uint64("voteId")
	voter, ok2 := p.Uint64("voterProfileId")
	upvote, ok3 := p.Bool("isUpvote")
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}

	switch p.Name {
	case "Voted":
		target, ok4 := p.Address("targetContract")
		targetID, ok5 := p.Uint64("targetId")
		if !ok4 || !ok5 {
			return nil, false
		}
		return Voted{ID: id, VoterProfileID: voter, TargetContract: target, TargetID: targetID, IsUpvote: upvote}, true
	case "VoteChanged":
		return Changed{ID: id, VoterProfileID: voter, IsUpvote: upvote}, true
	default:
		return nil, false
	}
}
