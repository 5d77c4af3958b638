package extension

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/puz/errs"
)

// Timer is the decoded view of the LTIM record.
type Timer struct {
	set     *Set
	Elapsed time.Duration // whole seconds
	Stopped bool
}

// DecodeTimer builds a timer view over set. A missing record reads as a
// stopped timer at zero.
func DecodeTimer(set *Set) (*Timer, error) {
	t := &Timer{set: set, Stopped: true}

	payload, ok := set.Get(CodeTimer)
	if !ok {
		return t, nil
	}

	secs, state, found := strings.Cut(string(payload), ",")
	if !found {
		return nil, fmt.Errorf("%w: LTIM %q", errs.ErrInvalidExtension, payload)
	}

	n, err := strconv.Atoi(strings.TrimSpace(secs))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: LTIM seconds %q", errs.ErrInvalidExtension, secs)
	}
	t.Elapsed = time.Duration(n) * time.Second
	t.Stopped = strings.TrimSpace(state) != "0"

	return t, nil
}

func (t *Timer) Running() bool {
	return !t.Stopped
}

// Commit writes the timer back into its set.
func (t *Timer) Commit() error {
	stopped := 0
	if t.Stopped {
		stopped = 1
	}
	t.set.Set(CodeTimer, fmt.Appendf(nil, "%d,%d", int64(t.Elapsed/time.Second), stopped))

	return nil
}
