package queue

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
)

// Names lists every queue of Topology, the dead-letter queue first.
var Names = []string{DeadLetter, EventProcessing, ScoreRecompute, PeriodicJobs}

// Topology returns the options of every queue the indexor uses.
func Topology(cfg config.QueueConfig) map[string]Options {
	return map[string]Options{
		DeadLetter: {
			Durable: true,
		},
		EventProcessing: {
			Durable:              true,
			DeliveryLimit:        cfg.EventDeliveryLimit,
			SingleActiveConsumer: true,
			DeadLetterTo:         DeadLetter,
		},
		ScoreRecompute: {
			Durable:       true,
			DeliveryLimit: Unlimited,
		},
		PeriodicJobs: {
			Durable:       true,
			DeliveryLimit: cfg.PeriodicDeliveryLimit,
			DeadLetterTo:  DeadLetter,
		},
	}
}

// DeclareAll declares every queue of Topology in the order of Names.
func DeclareAll(ctx context.Context, broker Broker, cfg config.QueueConfig) error {
	topology := Topology(cfg)

	for _, name := range Names {
		if err := broker.DeclareQueue(ctx, name, topology[name]); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	return nil
}
