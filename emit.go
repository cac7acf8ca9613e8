package osgateway

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// WasmAttributes renders the action for a cosmwasm contract response. The
// returned slice assigns directly to the response's attribute list; wasmd
// surfaces those attributes on chain under the wasm module event, which is
// where the gateway looks for them.
func WasmAttributes(act Action) []wasmvmtypes.EventAttribute {
	attrs := act.Attributes()
	out := make([]wasmvmtypes.EventAttribute, len(attrs))
	for i, attr := range attrs {
		out[i] = wasmvmtypes.EventAttribute{Key: attr.Key, Value: attr.Value}
	}
	return out
}

// Event renders the action as the wasm module event the gateway watches for.
// Native modules use this to put the same shape on chain that a contract
// produces through its response attributes.
func Event(act Action) sdk.Event {
	return sdk.NewEvent(wasmtypes.WasmModuleEventType, act.Attributes()...)
}

// Emit appends the action's event to the context's event manager.
func Emit(ctx sdk.Context, act Action) {
	ctx.EventManager().EmitEvent(Event(act))
}
