package discussion

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

type Event interface {
	ReplyID() uint64
	isDiscussionEvent()
}

type Added struct {
	ID              uint64
	AuthorProfileID uint64
	TargetContract  common.Address
	ParentID        uint64
}

type Edited struct {
	ID              uint64
	AuthorProfileID uint64
}

func (e Added) ReplyID() uint64  { return e.ID }
func (e Edited) ReplyID() uint64 { return e.ID }

func (Added) isDiscussionEvent()  {}
func (Edited) isDiscussionEvent() {}

func Wrangle(p *processor.ParsedLog) (Event, bool) {
	id, ok1 := p.Uint64("replyId")
	author, ok2 := p.Uint64("authorProfileId")
	if !ok1 || !ok2 {
		return nil, false
	}

	switch p.Name {
	case "ReplyAdded":
		target, ok3 := p.Address("targetContract")
		parent, ok4 := p.Uint64("parentId")
		if !ok3 || !ok4 {
			return nil, false
		}
		return Added{ID: id, AuthorProfileID: author, TargetContract: target, ParentID: parent}, true
	case "ReplyEdited":
		return Edited{ID: id, AuthorProfileID: author}, true
	default:
		return nil, false
	}
}
