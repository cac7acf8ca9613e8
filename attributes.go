package osgateway

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Action is a single access-control instruction addressed to the Object Store
// Gateway. The concrete types are GrantAction and RevokeAction; the gateway's
// action vocabulary is closed, so new kinds are added here and nowhere else.
type Action interface {
	// Attributes encodes the action as the ordered attribute list the gateway
	// expects: event type first, then scope address, then target account,
	// then any optional attributes. Identical action values always encode to
	// identical output.
	Attributes() []sdk.Attribute

	gatewayAction()
}

var (
	_ Action = GrantAction{}
	_ Action = RevokeAction{}
)

// GrantAction instructs the gateway to give an account read access to a
// scope's records.
type GrantAction struct {
	scopeAddress   string
	granteeAddress string
	accessGrantID  string
	hasGrantID     bool
}

// AccessGrant builds the action denoting to the gateway that access to
// scopeAddress should be granted to granteeAddress.
//
// Both addresses pass through untouched; bech32 validation is the chain's
// concern, not this package's. The gateway disregards the resulting event
// unless the signer of the surrounding wasm payload is the scope's value
// owner.
func AccessGrant(scopeAddress, granteeAddress string) GrantAction {
	return GrantAction{
		scopeAddress:   scopeAddress,
		granteeAddress: granteeAddress,
	}
}

// WithAccessGrantID attaches a caller-supplied identifier to the grant so the
// stored access grant can be referenced later, e.g. by a targeted revoke.
// Calling it again replaces the previous id. When it is never called the
// grant-id attribute is omitted from the output entirely; omission, not an
// empty value, is what signals "no id assigned".
func (a GrantAction) WithAccessGrantID(accessGrantID string) GrantAction {
	a.accessGrantID = accessGrantID
	a.hasGrantID = true
	return a
}

// Attributes implements Action.
func (a GrantAction) Attributes() []sdk.Attribute {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyEventType, EventTypeAccessGrant),
		sdk.NewAttribute(AttributeKeyScopeAddress, a.scopeAddress),
		sdk.NewAttribute(AttributeKeyTargetAccount, a.granteeAddress),
	}
	if a.hasGrantID {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyAccessGrantID, a.accessGrantID))
	}
	return attrs
}

func (GrantAction) gatewayAction() {}

// RevokeAction instructs the gateway to remove an account's access to a
// scope's records.
type RevokeAction struct {
	scopeAddress   string
	granteeAddress string
}

// AccessRevoke builds the action denoting to the gateway that
// granteeAddress's access to scopeAddress should be revoked. Every grant
// stored for the scope and grantee combination is removed at once. The
// gateway disregards the resulting event unless the signer of the
// surrounding wasm payload is the scope's value owner or the grantee itself.
func AccessRevoke(scopeAddress, granteeAddress string) RevokeAction {
	return RevokeAction{
		scopeAddress:   scopeAddress,
		granteeAddress: granteeAddress,
	}
}

// Attributes implements Action.
func (a RevokeAction) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyEventType, EventTypeAccessRevoke),
		sdk.NewAttribute(AttributeKeyScopeAddress, a.scopeAddress),
		sdk.NewAttribute(AttributeKeyTargetAccount, a.granteeAddress),
	}
}

func (RevokeAction) gatewayAction() {}
