// Lists the translation keys each language is missing. Missing keys fall
// back to english at runtime.
//
//	go run scripts/translations/get_required_translations.go
package main

import (
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/christophe-duc/lazydialog/pkg/i18n"
	"github.com/samber/lo"
)

func main() {
	output, missing := getOutstandingTranslations()
	fmt.Print(output)
	if missing > 0 && len(os.Args) > 1 && os.Args[1] == "--strict" {
		os.Exit(1)
	}
}

func getOutstandingTranslations() (string, int) {
	sets := i18n.GetTranslationSets()
	languageCodes := lo.Keys(sets)
	sort.Strings(languageCodes)

	output := ""
	missing := 0
	for _, languageCode := range languageCodes {
		v := reflect.ValueOf(sets[languageCode])

		keys := []string{}
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).Kind() == reflect.String && v.Field(i).String() == "" {
				keys = append(keys, v.Type().Field(i).Name)
			}
		}
		if len(keys) == 0 {
			continue
		}

		missing += len(keys)
		output += fmt.Sprintf("%s (%d missing):\n", languageCode, len(keys))
		for _, key := range keys {
			output += "  " + key + "\n"
		}
	}
	return output, missing
}
