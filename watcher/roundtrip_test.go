package watcher_test

import (
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gotest.tools/v3/assert"

	"github.com/burnt-labs/osgateway"
	"github.com/burnt-labs/osgateway/watcher"
)

// The scanner must recover exactly what the attribute builders emitted, in
// emission order, with unrelated chain events interleaved.
func TestScanRecoversEmittedActions(t *testing.T) {
	em := sdk.NewEventManager()
	ctx := sdk.Context{}.WithEventManager(em)

	osgateway.Emit(ctx, osgateway.AccessGrant(myScopeAddr, myGranteeAddr).WithAccessGrantID("my_unique_id"))
	em.EmitEvent(sdk.NewEvent("message", sdk.NewAttribute("module", "bank")))
	osgateway.Emit(ctx, osgateway.AccessRevoke(myScopeAddr, myGranteeAddr))

	got := watcher.NewScanner(log.NewNopLogger()).Scan(em.ABCIEvents())
	assert.DeepEqual(t, []watcher.AccessEvent{
		{
			Action:         osgateway.EventTypeAccessGrant,
			ScopeAddress:   myScopeAddr,
			GranteeAddress: myGranteeAddr,
			AccessGrantID:  "my_unique_id",
		},
		{
			Action:         osgateway.EventTypeAccessRevoke,
			ScopeAddress:   myScopeAddr,
			GranteeAddress: myGranteeAddr,
		},
	}, got)
}
