package multisig

import (
	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/rs/zerolog"
)

// EventType names a state transition recorded in the audit log.
type EventType string

const (
	EventDeposit EventType = "deposit"
	EventSubmit  EventType = "submit"
	EventConfirm EventType = "confirm"
	EventRevoke  EventType = "revoke"
	EventExecute EventType = "execute"
)

// Event is one immutable audit record. Index is -1 for events that
// are not tied to a ledger record (deposits).
type Event struct {
	Type        EventType
	Actor       covault.Address
	Index       int64
	Destination covault.Address
	Amount      coin.Coin
	// Balance carries the aggregate vault balance after a deposit.
	Balance coin.Coins
}

// EventLog is the append-only audit trail of the vault. Every
// successful state transition appends exactly one record. When
// configured with a logger, each record is also emitted as a
// structured log event for external observers.
//
// EventLog is not safe for concurrent use on its own; the vault
// serializes all appends.
type EventLog struct {
	events []Event
	logger zerolog.Logger
}

// NewEventLog returns an empty audit trail emitting to the given
// logger. Use zerolog.Nop() to keep the records without emission.
func NewEventLog(logger zerolog.Logger) *EventLog {
	return &EventLog{logger: logger}
}

// Append records the event and emits it.
func (l *EventLog) Append(ev Event) {
	l.events = append(l.events, ev)

	entry := l.logger.Info().
		Str("event", string(ev.Type)).
		Str("actor", ev.Actor.String())
	if ev.Index >= 0 {
		entry = entry.Int64("index", ev.Index)
	}
	if len(ev.Destination) != 0 {
		entry = entry.Str("destination", ev.Destination.String())
	}
	if !ev.Amount.IsZero() {
		entry = entry.Str("amount", ev.Amount.String())
	}
	entry.Msg("vault transition")
}

// Events returns a snapshot of all records in append order.
func (l *EventLog) Events() []Event {
	res := make([]Event, len(l.events))
	copy(res, l.events)
	return res
}
