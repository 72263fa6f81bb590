package discussion

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"ReplyAdded","inputs":[
    {"name":"authorProfileId","type":"uint256","indexed":true},
    {"name":"targetContract","type":"address","indexed":true},
    {"name":"parentId","type":"uint256","indexed":true},
    {"name":"replyId","type":"uint256","indexed":false}]},
  {"type":"event","name":"ReplyEdited","inputs":[
    {"name":"authorProfileId","type":"uint256","indexed":true},
    {"name":"replyId","type":"uint256","indexed":true}]}
]`

const viewsABI = `[
  {"type":"function","name":"replies","stateMutability":"view",
   "inputs":[{"name":"replyId","type":"uint256"}],
   "outputs":[
    {"name":"parentIsOriginalComment","type":"bool"},
    {"name":"targetContract","type":"address"},
    {"name":"authorProfileId","type":"uint256"},
    {"name":"id","type":"uint256"},
    {"name":"parentId","type":"uint256"},
    {"name":"createdAt","type":"uint256"},
    {"name":"edits","type":"uint256"},
    {"name":"content","type":"string"},
    {"name":"metadata","type":"string"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)
