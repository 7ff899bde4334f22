package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:      "Wystąpił błąd! Zgłoś problem na https://github.com/christophe-duc/lazydialog/issues",
		ErrorTitle:         "Błąd",
		CannotCloseDialogs: "Otwarte okna dialogowe nie zostały zamknięte. Zostaną porzucone przy zakończeniu procesu.",
		DialogsStillOpen:   "okna dialogowe wciąż otwarte",

		AlreadyConsumedError: "to okno dialogowe zostało już użyte. Utwórz nowe dla każdego okna, które chcesz wyświetlić",
		InvalidEncodingError: "wybrana ścieżka nie jest poprawnym UTF-8",
		NativePanicError:     "natywna warstwa okien dialogowych uległa awarii",
		BackendFailureError:  "mechanizm okien dialogowych zawiódł",
		InvalidLevelError:    "nieznany poziom komunikatu",
		InvalidButtonsError:  "nieznany zestaw przycisków",

		Cancelled: "anulowano",

		FileNameColumn: "NAZWA",
		TypeColumn:     "TYP",
		SizeColumn:     "ROZMIAR",
		PathColumn:     "ŚCIEŻKA",

		OK:     "OK",
		Cancel: "Anuluj",
		Yes:    "Tak",
		No:     "Nie",
	}
}
