// Package osgateway builds the event attributes through which smart contracts
// and native modules instruct the Object Store Gateway to grant or revoke
// access to a scope's records.
//
// The gateway is a separate service that tails the chain's event stream; the
// attribute vocabulary in this package is its entire API. There is no
// synchronous call, no return value, and no acknowledgement: an emitter
// attaches the attributes to its outgoing event, and the gateway applies the
// requested access change when the event reaches it.
//
// Actions are built fluently and rendered into whichever sink the host
// provides:
//
//	// inside a cosmwasm message handler
//	resp.Attributes = osgateway.WasmAttributes(
//		osgateway.AccessGrant(scopeAddr, granteeAddr).
//			WithAccessGrantID("my_unique_id"),
//	)
//
//	// inside a native module
//	osgateway.Emit(ctx, osgateway.AccessRevoke(scopeAddr, granteeAddr))
//
// Both renderings carry the same pairs in the same fixed order. The gateway
// looks up values by key, but the stable order keeps raw event logs and
// recorded test fixtures reproducible.
//
// The watcher package decodes these attributes back out of ABCI events for
// the consuming side of the contract.
package osgateway
