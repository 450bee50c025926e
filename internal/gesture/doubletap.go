// Package gesture turns a raw repeated key-press stream into a single
// confirmed double-tap event. The detector mirrors one physical keyboard
// channel, so one instance is constructed per process and handed to the
// input-hook registration point; tests build their own instances.
package gesture

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kazukinakai/neural-translator/internal/ports"
)

const (
	// MinTapInterval filters hardware key-repeat noise.
	MinTapInterval = 50 * time.Millisecond
	// DoubleTapTimeout is the maximum spacing between the two taps.
	DoubleTapTimeout = 300 * time.Millisecond

	// ConfirmEvent is emitted to the GUI layer on a confirmed double-tap.
	ConfirmEvent = "translate-shortcut"
)

// Detector is a two-state machine: Idle (no pending first tap) and awaiting
// a second tap. Taps arrive from the OS callback thread; each transition runs
// under the lock, but event emission happens after unlock so a reentrant tap
// from the handler cannot deadlock. time.Time carries a monotonic reading, so
// wall-clock adjustments do not affect elapsed measurement.
type Detector struct {
	mu       sync.Mutex
	firstTap time.Time
	waiting  bool

	minInterval time.Duration
	timeout     time.Duration
	now         func() time.Time

	em  ports.EventEmitter
	log *zap.SugaredLogger
}

func New(minInterval, timeout time.Duration, log *zap.SugaredLogger) *Detector {
	if minInterval <= 0 {
		minInterval = MinTapInterval
	}
	if timeout <= 0 {
		timeout = DoubleTapTimeout
	}
	return &Detector{
		minInterval: minInterval,
		timeout:     timeout,
		now:         time.Now,
		log:         log,
	}
}

// SetEmitter wires the GUI event sink. Called once at startup before taps flow.
func (d *Detector) SetEmitter(em ports.EventEmitter) { d.em = em }

// Tap feeds one raw key press through the state machine and reports whether
// it confirmed a double-tap. Never blocks beyond the state transition.
func (d *Detector) Tap() bool {
	d.mu.Lock()
	confirmed := false
	now := d.now()
	if d.waiting && !d.firstTap.IsZero() {
		elapsed := now.Sub(d.firstTap)
		switch {
		case elapsed <= d.minInterval:
			// Key repeat; keep the original first-tap time.
			d.log.Debugw("tap too quick, ignoring", "elapsed", elapsed)
		case elapsed <= d.timeout:
			confirmed = true
			d.firstTap = time.Time{}
			d.waiting = false
		default:
			// Window expired; this tap opens a new one.
			d.log.Debugw("double-tap window expired, treating as new first tap")
			d.firstTap = now
		}
	} else {
		d.firstTap = now
		d.waiting = true
	}
	em := d.em
	d.mu.Unlock()

	if confirmed {
		d.log.Infow("double-tap confirmed")
		if em != nil {
			em.Emit(ConfirmEvent, nil)
		}
	}
	return confirmed
}

// Reset clears any pending first tap.
func (d *Detector) Reset() {
	d.mu.Lock()
	d.firstTap = time.Time{}
	d.waiting = false
	d.mu.Unlock()
}
