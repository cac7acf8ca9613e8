package watcher

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	abci "github.com/cometbft/cometbft/abci/types"
)

// Handler receives every gateway instruction recovered from one finalized
// block, in emission order. A returned error propagates to the node's
// streaming manager, which owns stop/continue policy; the listener itself
// never retries.
type Handler func(ctx context.Context, height int64, events []AccessEvent) error

// Listener plugs a gateway watching service into a node's streaming manager.
// It feeds finalized-block events through a Scanner and hands the recovered
// instructions to a Handler, once per block.
type Listener struct {
	scanner Scanner
	handler Handler
	log     log.Logger
}

var _ storetypes.ABCIListener = (*Listener)(nil)

// NewListener returns a Listener that calls handler for every finalized block
// carrying gateway instructions.
func NewListener(handler Handler, logger log.Logger) *Listener {
	logger = logger.With("module", "osgateway")
	return &Listener{
		scanner: NewScanner(logger),
		handler: handler,
		log:     logger,
	}
}

// ListenFinalizeBlock scans the block's own events and the events of every
// successful transaction. Failed transactions are rolled back and their
// events carry no authority, so they are skipped wholesale.
func (l *Listener) ListenFinalizeBlock(ctx context.Context, req abci.RequestFinalizeBlock, res abci.ResponseFinalizeBlock) error {
	found := l.scanner.Scan(res.Events)
	for _, tx := range res.TxResults {
		if tx.Code != abci.CodeTypeOK {
			continue
		}
		found = append(found, l.scanner.Scan(tx.Events)...)
	}
	if len(found) == 0 {
		return nil
	}
	l.log.Info("object store gateway instructions", "height", req.Height, "count", len(found))
	return l.handler(ctx, req.Height, found)
}

// ListenCommit is a no-op. Gateway instructions travel as events, never as
// state writes, so commit change sets carry nothing to scan.
func (l *Listener) ListenCommit(_ context.Context, _ abci.ResponseCommit, _ []*storetypes.StoreKVPair) error {
	return nil
}
