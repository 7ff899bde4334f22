package i18n

import (
	"io"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// TestDetectLanguage is a function.
func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", errors.New("an error")
			},
			"C",
		},
		{
			func() (string, error) {
				return "pl", nil
			},
			"pl",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

func TestNewTranslationSetFromConfig(t *testing.T) {
	type scenario struct {
		language    string
		expectedOK  string
		expectError bool
	}

	scenarios := []scenario{
		{"en", "OK", false},
		{"pl", "OK", false},
		{"klingon", "OK", true},
	}

	for _, s := range scenarios {
		tr, err := NewTranslationSetFromConfig(newDummyLog(), s.language)
		if s.expectError {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
		assert.EqualValues(t, s.expectedOK, tr.OK)
	}
}

func TestPolishFallsBackToEnglish(t *testing.T) {
	tr := NewTranslationSet(newDummyLog(), "pl_PL.UTF-8")

	assert.EqualValues(t, "Anuluj", tr.Cancel)
	assert.EqualValues(t, "Tak", tr.Yes)
	// not translated, so the english string is kept
	assert.EqualValues(t, englishSet().InvalidFilterError, tr.InvalidFilterError)
}

func TestLabels(t *testing.T) {
	labels := NewTranslationSet(newDummyLog(), PL).Labels()

	assert.EqualValues(t, "OK", labels.OK)
	assert.EqualValues(t, "Anuluj", labels.Cancel)
	assert.EqualValues(t, "Tak", labels.Yes)
	assert.EqualValues(t, "Nie", labels.No)
}

func TestEveryLanguageIsSupported(t *testing.T) {
	for code := range GetTranslationSets() {
		assert.Contains(t, getSupportedLanguages(), code)
	}
}
