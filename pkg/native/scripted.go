package native

import (
	"github.com/sasha-s/go-deadlock"
)

// Answer is the scripted outcome of one dialog
type Answer struct {
	// Paths are returned by file dialogs. No paths means the dialog was cancelled.
	Paths []Path

	// Confirmed is returned by message dialogs
	Confirmed bool

	// Err is returned as a backend failure
	Err error

	// Panic, when not nil, makes the dialog panic with this value
	Panic interface{}

	// Wait, when not nil, keeps the dialog open until it is closed
	Wait <-chan struct{}
}

// Call records a dialog that was shown
type Call struct {
	Method  string
	File    FileOptions
	Message MessageOptions
}

// ScriptedBackend replays queued answers instead of showing anything. Once
// the queue is empty every dialog behaves as if the user cancelled it, which
// makes it usable as a headless backend.
type ScriptedBackend struct {
	mutex   deadlock.Mutex
	answers []Answer
	calls   []Call
}

func NewScriptedBackend(answers ...Answer) *ScriptedBackend {
	return &ScriptedBackend{answers: answers}
}

// Push queues more answers
func (b *ScriptedBackend) Push(answers ...Answer) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.answers = append(b.answers, answers...)
}

// Calls returns the dialogs shown so far, oldest first
func (b *ScriptedBackend) Calls() []Call {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return append([]Call(nil), b.calls...)
}

func (b *ScriptedBackend) next(call Call) Answer {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.calls = append(b.calls, call)
	if len(b.answers) == 0 {
		return Answer{}
	}
	answer := b.answers[0]
	b.answers = b.answers[1:]
	return answer
}

func (b *ScriptedBackend) answer(call Call) (Answer, error) {
	answer := b.next(call)
	if answer.Wait != nil {
		<-answer.Wait
	}
	if answer.Panic != nil {
		panic(answer.Panic)
	}
	return answer, answer.Err
}

func (b *ScriptedBackend) single(method string, opts FileOptions) (Path, bool, error) {
	answer, err := b.answer(Call{Method: method, File: opts})
	if err != nil {
		return "", false, err
	}
	if len(answer.Paths) == 0 {
		return "", false, nil
	}
	return answer.Paths[0], true, nil
}

func (b *ScriptedBackend) multiple(method string, opts FileOptions) ([]Path, bool, error) {
	answer, err := b.answer(Call{Method: method, File: opts})
	if err != nil {
		return nil, false, err
	}
	if len(answer.Paths) == 0 {
		return nil, false, nil
	}
	return append([]Path(nil), answer.Paths...), true, nil
}

func (b *ScriptedBackend) PickFile(opts FileOptions) (Path, bool, error) {
	return b.single("PickFile", opts)
}

func (b *ScriptedBackend) PickFiles(opts FileOptions) ([]Path, bool, error) {
	return b.multiple("PickFiles", opts)
}

func (b *ScriptedBackend) PickFolder(opts FileOptions) (Path, bool, error) {
	return b.single("PickFolder", opts)
}

func (b *ScriptedBackend) PickFolders(opts FileOptions) ([]Path, bool, error) {
	return b.multiple("PickFolders", opts)
}

func (b *ScriptedBackend) SaveFile(opts FileOptions) (Path, bool, error) {
	return b.single("SaveFile", opts)
}

func (b *ScriptedBackend) ShowMessage(opts MessageOptions) (bool, error) {
	answer, err := b.answer(Call{Method: "ShowMessage", Message: opts})
	if err != nil {
		return false, err
	}
	return answer.Confirmed, nil
}
