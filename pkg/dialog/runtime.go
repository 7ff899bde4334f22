package dialog

import (
	"io"
	"runtime/debug"
	"time"

	"github.com/christophe-duc/lazydialog/pkg/i18n"
	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/christophe-duc/lazydialog/pkg/tasks"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Runtime is what dialogs need to run: a backend to render them, somewhere to
// run background dialogs and a place to log to. Dialogs created by the package
// level constructors use the default runtime.
type Runtime struct {
	Log     *logrus.Entry
	Backend native.Backend
	Tasks   *tasks.TaskManager
	Tr      *i18n.TranslationSet
}

func NewRuntime(log *logrus.Entry, backend native.Backend, tr *i18n.TranslationSet) *Runtime {
	return &Runtime{
		Log:     log,
		Backend: backend,
		Tasks:   tasks.NewTaskManager(log, tr),
		Tr:      tr,
	}
}

// Close waits up to timeout for background dialogs to be dismissed
func (r *Runtime) Close(timeout time.Duration) error {
	return r.Tasks.Close(timeout)
}

var (
	defaultMutex   deadlock.Mutex
	defaultRuntime *Runtime
)

// Default returns the runtime used by the package level constructors. Unless
// replaced with SetDefaultRuntime it renders dialogs with zenity, in english,
// and logs nothing.
func Default() *Runtime {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	if defaultRuntime == nil {
		logger := logrus.New()
		logger.Out = io.Discard
		log := logger.WithField("pkg", "dialog")
		tr := i18n.NewTranslationSet(log, i18n.EN)
		defaultRuntime = NewRuntime(log, native.NewZenityBackend(tr.Labels()), tr)
	}
	return defaultRuntime
}

// SetDefaultRuntime replaces the runtime used by the package level
// constructors. Dialogs already created keep the runtime they were made with.
func SetDefaultRuntime(r *Runtime) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultRuntime = r
}

// spawn runs call in the background, isolated from panics in the native layer
func spawn[T any](r *Runtime, op string, call func() (T, error)) *Future[T] {
	future := newFuture[T]()
	log := r.Log.WithField("dialog", op).WithField("id", future.ID())
	log.Debug("starting")

	r.Tasks.NewTask(op+" "+future.ID(), func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				reportPanic(recovered, debug.Stack())
				var zero T
				future.resolve(zero, r.nativePanic(op, recovered))
			}
		}()

		var value T
		err := r.isolate(op, func() error {
			var err error
			value, err = call()
			return err
		})
		if err != nil {
			log.WithError(err).Debug("failed")
		} else {
			log.Debug("done")
		}
		future.resolve(value, err)
	})

	return future
}

func (r *Runtime) alreadyConsumed() error {
	return newError(AlreadyConsumed, r.Tr.AlreadyConsumedError, nil)
}

// backendError wraps a failure reported by the backend. Errors that are
// already ours are passed through.
func (r *Runtime) backendError(op string, err error) error {
	var dialogErr *Error
	if xerrors.As(err, &dialogErr) {
		return err
	}
	r.Log.WithField("dialog", op).WithError(err).Error(r.Tr.BackendFailureError)
	return newError(BackendFailure, r.Tr.BackendFailureError, err)
}

// singleText turns the outcome of a single-path dialog into text
func (r *Runtime) singleText(op string, path native.Path, ok bool, err error) (string, bool, error) {
	if err != nil {
		return "", false, r.backendError(op, err)
	}
	if !ok {
		return "", false, nil
	}
	text, err := r.pathText(path)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (r *Runtime) multipleText(op string, paths []native.Path, ok bool, err error) ([]string, bool, error) {
	if err != nil {
		return nil, false, r.backendError(op, err)
	}
	if !ok {
		return nil, false, nil
	}
	texts, err := r.pathTexts(paths)
	if err != nil {
		return nil, false, err
	}
	return texts, true, nil
}

// singleHandle turns the outcome of a single-path dialog into a handle. A nil
// handle means the dialog was cancelled.
func (r *Runtime) singleHandle(op string, path native.Path, ok bool, err error) (*FileHandle, error) {
	if err != nil {
		return nil, r.backendError(op, err)
	}
	if !ok {
		return nil, nil
	}
	if _, err := r.pathText(path); err != nil {
		return nil, err
	}
	return r.wrapHandle(path), nil
}

func (r *Runtime) multipleHandles(op string, paths []native.Path, ok bool, err error) ([]*FileHandle, error) {
	if err != nil {
		return nil, r.backendError(op, err)
	}
	if !ok {
		return nil, nil
	}
	if _, err := r.pathTexts(paths); err != nil {
		return nil, err
	}
	handles := make([]*FileHandle, len(paths))
	for i, path := range paths {
		handles[i] = r.wrapHandle(path)
	}
	return handles, nil
}
