package dialog

import (
	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/samber/lo"
)

// pathText renders a native path as text. Paths that are not valid UTF-8 fail
// with InvalidEncoding; they are never truncated or patched up.
func (r *Runtime) pathText(path native.Path) (string, error) {
	text, ok := path.Text()
	if !ok {
		return "", newError(InvalidEncoding, r.Tr.InvalidEncodingError, nil)
	}
	return text, nil
}

// pathTexts renders every path, failing as a whole if any one path fails
func (r *Runtime) pathTexts(paths []native.Path) ([]string, error) {
	if _, found := lo.Find(paths, func(path native.Path) bool {
		_, ok := path.Text()
		return !ok
	}); found {
		return nil, newError(InvalidEncoding, r.Tr.InvalidEncodingError, nil)
	}
	return lo.Map(paths, func(path native.Path, _ int) string { return string(path) }), nil
}
