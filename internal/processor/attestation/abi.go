package attestation

import "github.com/goran-ethernal/ReputationIndexor/internal/processor"

const eventsABI = `[
  {"type":"event","name":"AttestationCreated","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"service","type":"string","indexed":false},
    {"name":"account","type":"string","indexed":false},
    {"name":"evidence","type":"string","indexed":false},
    {"name":"attestationId","type":"uint256","indexed":false}]},
  {"type":"event","name":"AttestationArchived","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"service","type":"string","indexed":false},
    {"name":"account","type":"string","indexed":false},
    {"name":"attestationId","type":"uint256","indexed":false}]},
  {"type":"event","name":"AttestationRestored","inputs":[
    {"name":"profileId","type":"uint256","indexed":true},
    {"name":"service","type":"string","indexed":false},
    {"name":"account","type":"string","indexed":false},
    {"name":"attestationId","type":"uint256","indexed":false}]},
  {"type":"event","name":"AttestationClaimed","inputs":[
    {"name":"attestationId","type":"uint256","indexed":true},
    {"name":"service","type":"string","indexed":false},
    {"name":"account","type":"string","indexed":false},
    {"name":"evidence","type":"string","indexed":false},
    {"name":"profileId","type":"uint256","indexed":true}]}
]`

const viewsABI = `[
  {"type":"function","name":"attestationById","stateMutability":"view",
   "inputs":[{"name":"attestationId","type":"uint256"}],
   "outputs":[
    {"name":"archived","type":"bool"},
    {"name":"attestationId","type":"uint256"},
    {"name":"createdAt","type":"uint256"},
    {"name":"profileId","type":"uint256"},
    {"name":"account","type":"string"},
    {"name":"service","type":"string"}]}
]`

var (
	EventsABI = processor.MustEventsABI(eventsABI)
	ViewsABI  = processor.MustABI(viewsABI)
)
