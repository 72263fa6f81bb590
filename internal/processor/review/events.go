package review

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

// Score is the review sentiment as stored on chain.
type Score uint8

const (
	ScoreNegative Score = 0
	ScoreNeutral  Score = 1
	ScorePositive Score = 2
)

// Event is one of Created, Archived, Restored or Edited.
type Event interface {
	ReviewID() uint64
	isReviewEvent()
}

type Created struct {
	ID              uint64
	Score           Score
	Author          common.Address
	Subject         common.Address
	AttestationHash common.Hash
	// SubjectProfileID is the profile being reviewed, 0 when the subject has no profile.
	SubjectProfileID uint64
}

// Change is the shape shared by archive, restore and edit events.
type Change struct {
	ID      uint64
	Author  common.Address
	Subject common.Address
}

type (
	Archived struct{ Change }
	Restored struct{ Change }
	Edited   struct{ Change }
)

func (e Created) ReviewID() uint64 { return e.ID }
func (e Change) ReviewID() uint64  { return e.ID }

func (Created) isReviewEvent()  {}
func (Archived) isReviewEvent() {}
func (Restored) isReviewEvent() {}
func (Edited) isReviewEvent()   {}

// Wrangle maps a decoded review log onto Event.
func Wrangle(p *processor.ParsedLog) (Event, bool) {
	switch p.Name {
	case "ReviewCreated":
		id, ok1 := p.Uint64("reviewId")
		score, ok2 := p.Uint64("score")
		author, ok3 := p.Address("author")
		subject, ok4 := p.Address("subject")
		hash, ok5 := p.Hash("attestationHash")
		profileID, ok6 := p.Uint64("profileId")
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || score > uint64(ScorePositive) {
			return nil, false
		}
		return Created{
			ID:               id,
			Score:            Score(score),
			Author:           author,
			Subject:          subject,
			AttestationHash:  hash,
			SubjectProfileID: profileID,
		}, true

	case "ReviewArchived", "ReviewRestored", "ReviewEdited":
		id, ok1 := p.Uint64("reviewId")
		author, ok2 := p.Address("author")
		subject, ok3 := p.Address("subject")
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		change := Change{ID: id, Author: author, Subject: subject}
		switch p.Name {
		case "ReviewArchived":
			return Archived{change}, true
		case "ReviewRestored":
			return Restored{change}, true
		default:
			return Edited{change}, true
		}

	default:
		return nil, false
	}
}
