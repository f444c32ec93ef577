package http

import (
	"errors"
	"sync"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	DefaultOtpAttempts = 5
	DefaultOtpWindow   = 10 * time.Minute
)

type otpKey struct {
	agentID kernel.UUID
	orderID kernel.UUID
}

type otpBucket struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// OtpLimiter throttles wrong confirmation codes per agent and order. Only mismatches
// spend the budget: attempts mismatches are allowed within window, after that a new
// attempt is refused until the budget refills.
type OtpLimiter struct {
	attempts int
	window   time.Duration
	now      func() time.Time

	mu        sync.Mutex
	buckets   map[otpKey]*otpBucket
	lastPrune time.Time
}

func NewOtpLimiter(attempts int, window time.Duration) *OtpLimiter {
	if attempts <= 0 {
		attempts = DefaultOtpAttempts
	}
	if window <= 0 {
		window = DefaultOtpWindow
	}
	return &OtpLimiter{
		attempts: attempts,
		window:   window,
		now:      time.Now,
		buckets:  make(map[otpKey]*otpBucket),
	}
}

// OtpAttempt is one admitted confirmation. Finish must be called with the outcome.
type OtpAttempt struct {
	reservation *rate.Reservation
	at          time.Time
}

// Begin reserves one mismatch for the pair and reports whether the attempt may proceed.
func (l *OtpLimiter) Begin(agentID, orderID kernel.UUID) (OtpAttempt, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	key := otpKey{agentID: agentID, orderID: orderID}
	b, ok := l.buckets[key]
	if !ok {
		every := rate.Every(l.window / time.Duration(l.attempts))
		b = &otpBucket{limiter: rate.NewLimiter(every, l.attempts)}
		l.buckets[key] = b
	}
	b.lastUsed = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() || r.DelayFrom(now) > 0 {
		r.CancelAt(now)
		return OtpAttempt{}, false
	}
	return OtpAttempt{reservation: r, at: now}, true
}

// Finish gives the reserved mismatch back unless err is a code mismatch.
func (a OtpAttempt) Finish(err error) {
	if a.reservation == nil || errors.Is(err, errs.ErrOtpMismatch) {
		return
	}
	a.reservation.CancelAt(a.at)
}

// prune drops pairs idle for a whole window: their budget is full again. Callers hold mu.
func (l *OtpLimiter) prune(now time.Time) {
	if now.Sub(l.lastPrune) < l.window {
		return
	}
	l.lastPrune = now
	for key, b := range l.buckets {
		if now.Sub(b.lastUsed) >= l.window {
			delete(l.buckets, key)
		}
	}
}

// Len is the number of tracked pairs.
func (l *OtpLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
