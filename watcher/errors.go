package watcher

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace for object store gateway event decoding errors.
const DefaultCodespace = "osgateway"

var (
	// ErrNotGatewayEvent marks events that do not carry the gateway's
	// attribute vocabulary at all. Callers scanning a block's event stream
	// should treat it as "skip silently".
	ErrNotGatewayEvent = errorsmod.Register(DefaultCodespace, 2, "not an object store gateway event")

	// ErrUnknownEventType marks events that declare a gateway event type the
	// watcher does not recognize.
	ErrUnknownEventType = errorsmod.Register(DefaultCodespace, 3, "unknown object store gateway event type")

	// ErrMissingAttribute marks gateway events missing a required attribute.
	ErrMissingAttribute = errorsmod.Register(DefaultCodespace, 4, "missing object store gateway attribute")
)
