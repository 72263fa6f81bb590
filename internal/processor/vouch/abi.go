package vouch

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"Vouched","inputs":[
    {"name":"vouchId","type":"uint256","indexed":true},
    {"name":"authorProfileId","type":"uint256","indexed":true},
    {"name":"subjectProfileId","type":"uint256","indexed":true},
    {"name":"amountStaked","type":"uint256","indexed":false}]},
  {"type":"event","name":"Unvouched","inputs":[
    {"name":"vouchId","type":"uint256","indexed":true},
    {"name":"authorProfileId","type":"uint256","indexed":true},
    {"name":"subjectProfileId","type":"uint256","indexed":true}]},
  {"type":"event","name":"MarkedUnhealthy","inputs":[
    {"name":"vouchId","type":"uint256","indexed":true},
    {"name":"authorProfileId","type":"uint256","indexed":true},
    {"name":"subjectProfileId","type":"uint256","indexed":true}]}
]`

const viewsABI = `[
  {"type":"function","name":"vouches","stateMutability":"view",
   "inputs":[{"name":"vouchId","type":"uint256"}],
   "outputs":[
    {"name":"archived","type":"bool"},
    {"name":"unhealthy","type":"bool"},
    {"name":"authorProfileId","type":"uint256"},
    {"name":"subjectProfileId","type":"uint256"},
    {"name":"vouchId","type":"uint256"},
    {"name":"balance","type":"uint256"},
    {"name":"vouchedAt","type":"uint256"},
    {"name":"unvouchedAt","type":"uint256"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)
