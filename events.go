package osgateway

// Attribute keys recognized by the Object Store Gateway when digesting wasm
// events. Renaming any of these is a breaking protocol change: the gateway is
// deployed and upgraded independently of the chains and contracts that emit
// these attributes.
const (
	// AttributeKeyEventType selects which gateway functionality the event
	// invokes. Its value is one of the EventType* constants below.
	AttributeKeyEventType = "object_store_gateway_event_type"

	// AttributeKeyScopeAddress is the bech32 address of the object store
	// scope the event acts on.
	AttributeKeyScopeAddress = "object_store_gateway_scope_address"

	// AttributeKeyTargetAccount is the bech32 address of the account gaining
	// or losing access to the scope's records (the grantee).
	AttributeKeyTargetAccount = "object_store_gateway_target_account_address"

	// AttributeKeyAccessGrantID is an optional caller-supplied identifier for
	// a grant. The gateway stores the resulting access grant under this id,
	// letting a later revoke target that grant specifically.
	AttributeKeyAccessGrantID = "object_store_gateway_access_grant_id"
)

// Values of AttributeKeyEventType the gateway acts on.
const (
	EventTypeAccessGrant  = "access_grant"
	EventTypeAccessRevoke = "access_revoke"
)

// AttributeKeys returns every attribute key in the gateway vocabulary, in the
// order the keys appear in emitted events.
func AttributeKeys() []string {
	return []string{
		AttributeKeyEventType,
		AttributeKeyScopeAddress,
		AttributeKeyTargetAccount,
		AttributeKeyAccessGrantID,
	}
}

// EventTypes returns every event type value the gateway acts on.
func EventTypes() []string {
	return []string{EventTypeAccessGrant, EventTypeAccessRevoke}
}

// IsGatewayKey reports whether key belongs to the gateway's attribute
// vocabulary.
func IsGatewayKey(key string) bool {
	switch key {
	case AttributeKeyEventType,
		AttributeKeyScopeAddress,
		AttributeKeyTargetAccount,
		AttributeKeyAccessGrantID:
		return true
	}
	return false
}
