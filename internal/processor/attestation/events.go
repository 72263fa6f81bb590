package attestation

import (
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
)

// Event is one of Created, Archived, Restored or Claimed.
type Event interface {
	AttestationID() uint64
	isAttestationEvent()
}

// Created links a service account to a profile.
type Created struct {
	ID        uint64
	ProfileID uint64
	Service   string
	Account   string
	Evidence  string
}

// Change is the shape of archive and restore events.
type Change struct {
	ID        uint64
	ProfileID uint64
	Service   string
	Account   string
}

type (
	Archived struct{ Change }
	Restored struct{ Change }
)

// Claimed moves an existing attestation to ProfileID.
type Claimed struct {
	ID        uint64
	ProfileID uint64
	Service   string
	Account   string
	Evidence  string
}

func (e Created) AttestationID() uint64 { return e.ID }
func (e Change) AttestationID() uint64  { return e.ID }
func (e Claimed) AttestationID() uint64 { return e.ID }

func (Created) isAttestationEvent()  {}
func (Archived) isAttestationEvent() {}
func (Restored) isAttestationEvent() {}
func (Claimed) isAttestationEvent()  {}

// Wrangle maps a decoded attestation log onto Event.
func Wrangle(p *processor.ParsedLog) (Event, bool) {
	id, ok1 := p.Uint64("attestationId")
	profileID, ok2 := p.Uint64("profileId")
	service, ok3 := p.String("service")
	account, ok4 := p.String("account")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}

	switch p.Name {
	case "AttestationCreated", "AttestationClaimed":
		evidence, ok := p.String("evidence")
		if !ok {
			return nil, false
		}
		if p.Name == "AttestationClaimed" {
			return Claimed{ID: id, ProfileID: profileID, Service: service, Account: account, Evidence: evidence}, true
		}
		return Created{ID: id, ProfileID: profileID, Service: service, Account: account, Evidence: evidence}, true

	case "AttestationArchived":
		return Archived{Change{ID: id, ProfileID: profileID, Service: service, Account: account}}, true
	case "AttestationRestored":
		return Restored{Change{ID: id, ProfileID: profileID, Service: service, Account: account}}, true

	default:
		return nil, false
	}
}
