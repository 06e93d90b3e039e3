package reporting

import "strings"

// Messages holds the user-facing strings of a report.
type Messages struct {
	NoDuplicates string
	Header       string
	// Summary takes total, unique and duplicate-kind counts, in that order.
	Summary string

	Title       string
	CodeColumn  string
	CountColumn string
}

const DefaultLocale = "ko"

var catalogs = map[string]Messages{
	"ko": {
		NoDuplicates: "중복 없음",
		Header:       "중복된 catalogItemCode (값 : 중복횟수):",
		Summary:      "총 아이템: %d, 유니크: %d, 중복 종류: %d",
		Title:        "catalogItemCode 중복 리포트",
		CodeColumn:   "값",
		CountColumn:  "중복횟수",
	},
	"en": {
		NoDuplicates: "No duplicates",
		Header:       "Duplicated catalogItemCode (value : count):",
		Summary:      "Total items: %d, unique: %d, duplicate kinds: %d",
		Title:        "catalogItemCode duplicate report",
		CodeColumn:   "Value",
		CountColumn:  "Count",
	},
}

// MessagesFor returns the catalog for locale; "" means DefaultLocale.
func MessagesFor(locale string) (Messages, bool) {
	l := strings.ToLower(strings.TrimSpace(locale))
	if l == "" {
		l = DefaultLocale
	}
	m, ok := catalogs[l]
	return m, ok
}

func Locales() []string {
	return []string{"en", "ko"}
}
