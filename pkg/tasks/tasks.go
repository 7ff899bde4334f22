package tasks

import (
	"sort"
	"sync"
	"time"

	"github.com/christophe-duc/lazydialog/pkg/i18n"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// TaskManager runs background work on its own goroutines and keeps track of
// what is still running so that Close can wait for it.
type TaskManager struct {
	runningMutex deadlock.Mutex
	running      map[int]*Task
	wg           sync.WaitGroup
	Log          *logrus.Entry
	Tr           *i18n.TranslationSet
	newTaskId    int
}

type Task struct {
	ID            int
	Name          string
	notifyStopped chan struct{}
	Log           *logrus.Entry
	f             func()
}

func NewTaskManager(log *logrus.Entry, translationSet *i18n.TranslationSet) *TaskManager {
	return &TaskManager{
		Log:     log,
		Tr:      translationSet,
		running: map[int]*Task{},
	}
}

// NewTask starts f on a new goroutine. f should not panic; callers that run
// code which may panic recover inside f.
func (t *TaskManager) NewTask(name string, f func()) *Task {
	t.runningMutex.Lock()
	t.newTaskId++
	task := &Task{
		ID:            t.newTaskId,
		Name:          name,
		notifyStopped: make(chan struct{}),
		Log:           t.Log.WithField("task", name),
		f:             f,
	}
	t.running[task.ID] = task
	t.wg.Add(1)
	t.runningMutex.Unlock()

	go func() {
		defer t.wg.Done()
		defer t.finish(task)

		task.f()
		task.Log.Debug("returned from function, closing notifyStopped")
	}()

	return task
}

func (t *TaskManager) finish(task *Task) {
	t.runningMutex.Lock()
	delete(t.running, task.ID)
	t.runningMutex.Unlock()

	close(task.notifyStopped)
}

// Running returns the names of the tasks that have not returned yet, oldest
// first
func (t *TaskManager) Running() []string {
	t.runningMutex.Lock()
	defer t.runningMutex.Unlock()

	tasks := lo.Values(t.running)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return lo.Map(tasks, func(task *Task, _ int) string { return task.Name })
}

// Close waits up to timeout for running tasks to return. Tasks cannot be
// interrupted, so if some are still running afterwards they are reported and
// left behind.
func (t *TaskManager) Close(timeout time.Duration) error {
	c := make(chan struct{})

	go func() {
		t.wg.Wait()
		close(c)
	}()

	select {
	case <-c:
		return nil
	case <-time.After(timeout):
		running := t.Running()
		t.Log.WithField("running", running).Warn(t.Tr.CannotCloseDialogs)
		return errors.Errorf("%s: %v", t.Tr.DialogsStillOpen, running)
	}
}

// Wait blocks until the task has returned
func (task *Task) Wait() {
	<-task.notifyStopped
}

// Done is closed once the task has returned
func (task *Task) Done() <-chan struct{} {
	return task.notifyStopped
}
