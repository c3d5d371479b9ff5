package i18n

import (
	"strings"
	"sync"
)

// Language is a site display language tag.
type Language string

const (
	English Language = "en"
	Kannada Language = "kn"
)

// Parse normalizes a raw language tag, defaulting to English. Tags arrive
// from env vars and CLI flags, so the comparison is case-insensitive.
func Parse(raw string) Language {
	if strings.ToLower(raw) == string(Kannada) {
		return Kannada
	}
	return English
}

var (
	mu     sync.RWMutex
	active = English
)

// SetActive switches the process-wide display language. Written only by the
// language toggle action; read everywhere.
func SetActive(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	active = lang
}

// Active returns the current display language.
func Active() Language {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Pick resolves between the English and Kannada variants of one field.
// Kannada falls back to English when the Kannada text is empty; the reverse
// fallback never happens.
func Pick(lang Language, en, kn string) string {
	if lang == Kannada && kn != "" {
		return kn
	}
	return en
}

// Select resolves a bilingual field on a raw decoded record. The Kannada
// variant is stored under the "<field>_k" key. Absent or non-string fields
// resolve to the empty string; Select never panics.
func Select(record map[string]any, field string, lang Language) string {
	if record == nil {
		return ""
	}
	en, _ := record[field].(string)
	kn, _ := record[field+"_k"].(string)
	return Pick(lang, en, kn)
}
