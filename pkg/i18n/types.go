package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred        string
	ErrorTitle           string
	CannotCloseDialogs   string
	DialogsStillOpen     string
	ClipboardUnsupported string

	AlreadyConsumedError string
	InvalidEncodingError string
	NativePanicError     string
	BackendFailureError  string
	InvalidLevelError    string
	InvalidButtonsError  string
	InvalidFilterError   string
	UnknownCommandError  string

	Cancelled string
	Confirmed string
	Declined  string

	FileNameColumn string
	TypeColumn     string
	SizeColumn     string
	PathColumn     string

	OK     string
	Cancel string
	Yes    string
	No     string
}
