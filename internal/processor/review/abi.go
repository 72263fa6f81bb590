package review

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"ReviewCreated","inputs":[
    {"name":"score","type":"uint8","indexed":false},
    {"name":"author","type":"address","indexed":true},
    {"name":"attestationHash","type":"bytes32","indexed":false},
    {"name":"subject","type":"address","indexed":true},
    {"name":"reviewId","type":"uint256","indexed":false},
    {"name":"profileId","type":"uint256","indexed":false}]},
  {"type":"event","name":"ReviewArchived","inputs":[
    {"name":"reviewId","type":"uint256","indexed":true},
    {"name":"author","type":"address","indexed":true},
    {"name":"subject","type":"address","indexed":true}]},
  {"type":"event","name":"ReviewRestored","inputs":[
    {"name":"reviewId","type":"uint256","indexed":true},
    {"name":"author","type":"address","indexed":true},
    {"name":"subject","type":"address","indexed":true}]},
  {"type":"event","name":"ReviewEdited","inputs":[
    {"name":"reviewId","type":"uint256","indexed":true},
    {"name":"author","type":"address","indexed":true},
    {"name":"subject","type":"address","indexed":true}]}
]`

const viewsABI = `[
  {"type":"function","name":"reviews","stateMutability":"view",
   "inputs":[{"name":"reviewId","type":"uint256"}],
   "outputs":[
    {"name":"archived","type":"bool"},
    {"name":"score","type":"uint8"},
    {"name":"author","type":"address"},
    {"name":"subject","type":"address"},
    {"name":"reviewId","type":"uint256"},
    {"name":"authorProfileId","type":"uint256"},
    {"name":"createdAt","type":"uint256"},
    {"name":"comment","type":"string"},
    {"name":"metadata","type":"string"},
    {"name":"attestationHash","type":"bytes32"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)
