package fsutil

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// opCounts tracks how often each operation ran, keyed by operation name.
// Written from whatever goroutine happens to call in, hence the xsync map.
var opCounts = xsync.NewMap[string, *atomic.Int64]()

func countOp(name string) {
	c, _ := opCounts.LoadOrStore(name, &atomic.Int64{})
	c.Add(1)
}

// OpCounts returns a snapshot of per-operation call counts since process
// start. Intended for debug logging in the client, not precise accounting.
func OpCounts() map[string]int64 {
	out := make(map[string]int64)
	opCounts.Range(func(name string, c *atomic.Int64) bool {
		out[name] = c.Load()
		return true
	})
	return out
}
