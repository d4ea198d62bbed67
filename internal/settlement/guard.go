package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/coinflip/internal/ledger"
)

// InFlightGuard serializes submissions per fee payer. A lock expires after
// its TTL, so a holder that crashed before releasing does not block the fee
// payer forever.
type InFlightGuard interface {
	// TryAcquire takes the lock for feePayer. It returns false, without
	// error, when another submission holds it.
	TryAcquire(ctx context.Context, feePayer ledger.Address, ttl time.Duration) (bool, error)

	// Release drops the lock for feePayer. Releasing a lock that is not
	// held is a no-op.
	Release(ctx context.Context, feePayer ledger.Address) error
}

type memoryGuard struct {
	mu   sync.Mutex
	held map[ledger.Address]time.Time // fee payer -> lock expiry
	now  func() time.Time
}

var _ InFlightGuard = (*memoryGuard)(nil)

// NewMemoryGuard returns an InFlightGuard that coordinates submissions made
// by the current process only.
func NewMemoryGuard() *memoryGuard {
	return &memoryGuard{
		held: make(map[ledger.Address]time.Time),
		now:  time.Now,
	}
}

func (g *memoryGuard) TryAcquire(_ context.Context, feePayer ledger.Address, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if expiry, ok := g.held[feePayer]; ok && now.Before(expiry) {
		return false, nil
	}

	g.held[feePayer] = now.Add(ttl)
	return true, nil
}

func (g *memoryGuard) Release(_ context.Context, feePayer ledger.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, feePayer)
	return nil
}
