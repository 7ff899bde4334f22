package tasks

import (
	"io"
	"testing"
	"time"

	"github.com/christophe-duc/lazydialog/pkg/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newDummyTaskManager() *TaskManager {
	log := logrus.New()
	log.Out = io.Discard
	entry := log.WithField("test", "test")
	return NewTaskManager(entry, i18n.NewTranslationSet(entry, i18n.EN))
}

func TestNewTaskRunsAndFinishes(t *testing.T) {
	manager := newDummyTaskManager()

	ran := make(chan struct{})
	task := manager.NewTask("pick", func() {
		close(ran)
	})
	task.Wait()

	select {
	case <-ran:
	default:
		t.Fatal("task did not run")
	}
	assert.Empty(t, manager.Running())
	assert.NoError(t, manager.Close(time.Second))
}

func TestRunningListsOpenTasksInOrder(t *testing.T) {
	manager := newDummyTaskManager()

	release := make(chan struct{})
	first := manager.NewTask("first", func() { <-release })
	second := manager.NewTask("second", func() { <-release })

	assert.EqualValues(t, []string{"first", "second"}, manager.Running())

	close(release)
	first.Wait()
	second.Wait()

	assert.Empty(t, manager.Running())
}

func TestCloseTimesOut(t *testing.T) {
	manager := newDummyTaskManager()

	release := make(chan struct{})
	defer close(release)
	manager.NewTask("message", func() { <-release })

	err := manager.Close(10 * time.Millisecond)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dialogs still open")
	assert.Contains(t, err.Error(), "message")
}
