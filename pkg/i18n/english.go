package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:        "An error occurred! Please create an issue at https://github.com/christophe-duc/lazydialog/issues",
		ErrorTitle:           "Error",
		CannotCloseDialogs:   "Waited for open dialogs to close but they are still showing. They will be abandoned when the process exits.",
		DialogsStillOpen:     "dialogs still open",
		ClipboardUnsupported: "Copying to the clipboard is not supported on this system. On linux you need xclip, xsel or wl-clipboard installed.",

		AlreadyConsumedError: "this dialog has already been used. Create a new one for every dialog you want to show",
		InvalidEncodingError: "the selected path is not valid UTF-8",
		NativePanicError:     "the native dialog layer panicked",
		BackendFailureError:  "the dialog backend failed",
		InvalidLevelError:    "unknown message level",
		InvalidButtonsError:  "unknown message buttons",
		InvalidFilterError:   "filters must look like 'Name:ext1,ext2'",
		UnknownCommandError:  "no command given. Run with --help to see the available commands",

		Cancelled: "cancelled",
		Confirmed: "true",
		Declined:  "false",

		FileNameColumn: "NAME",
		TypeColumn:     "TYPE",
		SizeColumn:     "SIZE",
		PathColumn:     "PATH",

		OK:     "OK",
		Cancel: "Cancel",
		Yes:    "Yes",
		No:     "No",
	}
}
