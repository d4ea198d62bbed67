package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/settlement"
)

// settlementKeyPrefix namespaces the in-flight submission markers.
const settlementKeyPrefix = "settlement"

func inFlightKey(feePayer ledger.Address) string {
	return fmt.Sprintf("%s:inflight:%s", settlementKeyPrefix, feePayer)
}

// TryAcquire marks a submission for feePayer as in flight. It returns false
// when another process already holds the marker. The marker expires after
// ttl so a crashed holder cannot block the fee payer forever.
func (c *client) TryAcquire(ctx context.Context, feePayer ledger.Address, ttl time.Duration) (bool, error) {
	return c.conn.SetNX(ctx, inFlightKey(feePayer), time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
}

// Release clears the in-flight marker of feePayer.
func (c *client) Release(ctx context.Context, feePayer ledger.Address) error {
	return c.conn.Del(ctx, inFlightKey(feePayer)).Err()
}

var _ settlement.InFlightGuard = new(client)
