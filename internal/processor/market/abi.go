package market

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"MarketCreated","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"creator","type":"address","indexed":true}]},
  {"type":"event","name":"MarketUpdated","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"trustVotes","type":"uint256","indexed":false},
    {"name":"distrustVotes","type":"uint256","indexed":false},
    {"name":"trustPrice","type":"uint256","indexed":false},
    {"name":"distrustPrice","type":"uint256","indexed":false}]},
  {"type":"event","name":"VotesBought","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"actor","type":"address","indexed":true},
    {"name":"isPositive","type":"bool","indexed":false},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"funds","type":"uint256","indexed":false}]},
  {"type":"event","name":"VotesSold","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"actor","type":"address","indexed":true},
    {"name":"isPositive","type":"bool","indexed":false},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"funds","type":"uint256","indexed":false}]},
  {"type":"event","name":"MarketConfigAdded","inputs":[
    {"name":"configIndex","type":"uint256","indexed":true},
    {"name":"initialLiquidity","type":"uint256","indexed":false},
    {"name":"basePrice","type":"uint256","indexed":false}]},
  {"type":"event","name":"MarketConfigRemoved","inputs":[
    {"name":"configIndex","type":"uint256","indexed":true}]}
]`

const viewsABI = `[
  {"type":"function","name":"getMarket","stateMutability":"view",
   "inputs":[{"name":"profileId","type":"uint256"}],
   "outputs":[
    {"name":"profileId","type":"uint256"},
    {"name":"trustVotes","type":"uint256"},
    {"name":"distrustVotes","type":"uint256"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)

// ignoreEvents configure future markets and change no market state.
var ignoreEvents = []string{"MarketConfigAdded", "MarketConfigRemoved"}
