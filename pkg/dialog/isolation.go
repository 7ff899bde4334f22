package dialog

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/go-errors/errors"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// PanicReporter is told about panics that escape background dialog work
type PanicReporter func(recovered interface{}, stack []byte)

var (
	// isolationMutex is held for the whole of an isolated call. It is a plain
	// mutex because it stays locked while a dialog waits on the user.
	isolationMutex sync.Mutex

	// reporterMutex guards the reporters below and is only held to read or
	// swap them
	reporterMutex deadlock.Mutex
	reporter      PanicReporter = logPanic
	// restoreTo is the reporter put back when the isolated call in flight
	// returns. It is only meaningful while isolating is set.
	restoreTo PanicReporter
	isolating bool
)

func logPanic(recovered interface{}, stack []byte) {
	logrus.WithField("panic", fmt.Sprint(recovered)).Error(string(stack))
}

// quietPanic is installed while an isolated native call runs. Panics are
// expected there, so anything reported meanwhile is only kept at debug level.
func quietPanic(recovered interface{}, stack []byte) {
	logrus.WithField("panic", fmt.Sprint(recovered)).Debug(string(stack))
}

// SetPanicReporter installs r as the process-wide panic reporter and returns
// the previous one. It never waits on an open dialog: while an isolated call
// is in flight, r takes effect as soon as that call returns.
func SetPanicReporter(r PanicReporter) PanicReporter {
	reporterMutex.Lock()
	defer reporterMutex.Unlock()

	if isolating {
		previous := restoreTo
		restoreTo = r
		return previous
	}

	previous := reporter
	reporter = r
	return previous
}

func reportPanic(recovered interface{}, stack []byte) {
	reporterMutex.Lock()
	report := reporter
	reporterMutex.Unlock()

	report(recovered, stack)
}

// isolate runs call exactly once with panic reporting suppressed, turning a
// panic into a NativePanic error. Isolated calls are serialised: the quiet
// reporter is installed, the call runs and the previous reporter is restored
// before the next isolated call may start, whichever way call returns.
func (r *Runtime) isolate(op string, call func() error) (err error) {
	isolationMutex.Lock()
	reporterMutex.Lock()
	restoreTo = reporter
	reporter = quietPanic
	isolating = true
	reporterMutex.Unlock()
	previousPanicOnFault := debug.SetPanicOnFault(true)

	defer func() {
		if recovered := recover(); recovered != nil {
			err = r.nativePanic(op, recovered)
		}
		debug.SetPanicOnFault(previousPanicOnFault)

		reporterMutex.Lock()
		reporter = restoreTo
		restoreTo = nil
		isolating = false
		reporterMutex.Unlock()
		isolationMutex.Unlock()
	}()

	return call()
}

func (r *Runtime) nativePanic(op string, recovered interface{}) error {
	cause := errors.Wrap(recovered, 2)
	r.Log.WithField("dialog", op).Debug(cause.ErrorStack())
	return newError(NativePanic, r.Tr.NativePanicError, cause)
}
