package vote

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"Voted","inputs":[
    {"name":"isUpvote","type":"bool","indexed":false},
    {"name":"voterProfileId","type":"uint256","indexed":true},
    {"name":"targetContract","type":"address","indexed":true},
    {"name":"targetId","type":"uint256","indexed":true},
    {"name":"voteId","type":"uint256","indexed":false}]},
  {"type":"event","name":"VoteChanged","inputs":[
    {"name":"voteId","type":"uint256","indexed":true},
    {"name":"voterProfileId","type":"uint256","indexed":true},
    {"name":"isUpvote","type":"bool","indexed":false}]}
]`

const viewsABI = `[
  {"type":"function","name":"votes","stateMutability":"view",
   "inputs":[{"name":"voteId","type":"uint256"}],
   "outputs":[
    {"name":"isUpvote","type":"bool"},
    {"name":"isArchived","type":"bool"},
    {"name":"targetContract","type":"address"},
    {"name":"voterProfileId","type":"uint256"},
    {"name":"targetId","type":"uint256"},
    {"name":"createdAt","type":"uint256"},
    {"name":"voteId","type":"uint256"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)
