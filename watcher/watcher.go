// Package watcher decodes object store gateway access events out of a
// chain's ABCI event stream. It is the consuming half of the attribute
// contract the root package encodes: the gateway service feeds every event
// from finalized blocks through a Scanner and acts on the access grants and
// revokes that survive decoding.
package watcher

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/burnt-labs/osgateway"
)

// AccessEvent is a decoded gateway instruction recovered from a single wasm
// event. Addresses are carried verbatim from the attribute values; the
// watcher performs no bech32 normalization of its own.
type AccessEvent struct {
	// Action is the gateway event type value, one of
	// osgateway.EventTypeAccessGrant or osgateway.EventTypeAccessRevoke.
	Action string

	// ScopeAddress is the bech32 address of the metadata scope the action
	// targets.
	ScopeAddress string

	// GranteeAddress is the bech32 account address gaining or losing access.
	GranteeAddress string

	// AccessGrantID is the emitter-chosen grant identifier, or empty when
	// the emitting contract did not assign one.
	AccessGrantID string

	// ContractAddress is the emitting contract's address when the event came
	// out of a CosmWasm execution, or empty for native module emissions.
	ContractAddress string
}

// IsGrant reports whether the event instructs the gateway to record an
// access grant.
func (e AccessEvent) IsGrant() bool {
	return e.Action == osgateway.EventTypeAccessGrant
}

// IsRevoke reports whether the event instructs the gateway to delete
// previously recorded access grants.
func (e AccessEvent) IsRevoke() bool {
	return e.Action == osgateway.EventTypeAccessRevoke
}

// DecodeEvent extracts the gateway instruction from one ABCI event.
//
// Events whose type is not the wasm module event type, or that carry no
// gateway event type attribute, fail with ErrNotGatewayEvent; that is the
// normal outcome for the vast majority of a block's events and callers
// should skip those without logging. A recognized gateway event with an
// unknown event type value fails with ErrUnknownEventType, and one missing
// its scope or target account attribute fails with ErrMissingAttribute.
//
// When an attribute key repeats, the last occurrence wins, mirroring the
// last-write-wins behavior of the attribute builders.
func DecodeEvent(ev abci.Event) (AccessEvent, error) {
	if ev.Type != wasmtypes.WasmModuleEventType {
		return AccessEvent{}, errorsmod.Wrapf(ErrNotGatewayEvent, "event type %q", ev.Type)
	}

	var (
		decoded      AccessEvent
		hasEventType bool
		hasScope     bool
		hasTarget    bool
	)
	for _, attr := range ev.Attributes {
		switch attr.Key {
		case osgateway.AttributeKeyEventType:
			decoded.Action = attr.Value
			hasEventType = true
		case osgateway.AttributeKeyScopeAddress:
			decoded.ScopeAddress = attr.Value
			hasScope = true
		case osgateway.AttributeKeyTargetAccount:
			decoded.GranteeAddress = attr.Value
			hasTarget = true
		case osgateway.AttributeKeyAccessGrantID:
			decoded.AccessGrantID = attr.Value
		case wasmtypes.AttributeKeyContractAddr:
			decoded.ContractAddress = attr.Value
		}
	}

	if !hasEventType {
		return AccessEvent{}, errorsmod.Wrap(ErrNotGatewayEvent, "no gateway event type attribute")
	}
	switch decoded.Action {
	case osgateway.EventTypeAccessGrant, osgateway.EventTypeAccessRevoke:
	default:
		return AccessEvent{}, errorsmod.Wrapf(ErrUnknownEventType, "%q", decoded.Action)
	}
	if !hasScope {
		return AccessEvent{}, errorsmod.Wrap(ErrMissingAttribute, osgateway.AttributeKeyScopeAddress)
	}
	if !hasTarget {
		return AccessEvent{}, errorsmod.Wrap(ErrMissingAttribute, osgateway.AttributeKeyTargetAccount)
	}
	return decoded, nil
}

// Scanner sweeps whole event batches, keeping the gateway instructions and
// dropping everything else.
type Scanner struct {
	logger log.Logger
}

// NewScanner returns a Scanner that reports malformed gateway events through
// logger.
func NewScanner(logger log.Logger) Scanner {
	return Scanner{logger: logger}
}

// Scan decodes every event in events and returns the gateway instructions in
// emission order. Foreign events are skipped silently. Events that look like
// gateway events but fail to decode are logged and skipped; the gateway
// disregards bad instructions rather than halting on them.
func (s Scanner) Scan(events []abci.Event) []AccessEvent {
	var found []AccessEvent
	for _, ev := range events {
		decoded, err := DecodeEvent(ev)
		if err != nil {
			if !errorsmod.IsOf(err, ErrNotGatewayEvent) {
				s.logger.Error("skipping malformed gateway event", "error", err)
			}
			continue
		}
		found = append(found, decoded)
	}
	return found
}
