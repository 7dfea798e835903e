package i18n

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/reoring/ledgerskema"
)

// Translator retrieves localized labels for Issue codes.
// data provides optional parameters to embed in the label (for example,
// "max" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		ledgerskema.CodeInvalidType:     "invalid type",
		ledgerskema.CodeRequired:        "required field missing",
		ledgerskema.CodeUnknownKey:      "unknown field",
		ledgerskema.CodeDuplicateKey:    "duplicate key",
		ledgerskema.CodeTooShort:        "too short",
		ledgerskema.CodeTooLong:         "too long (max {max})",
		ledgerskema.CodeInvalidEnum:     "not a member of the allowed values",
		ledgerskema.CodeInvalidFlags:    "unrecognized flag bits",
		ledgerskema.CodeInvalidFormat:   "invalid format",
		ledgerskema.CodeParseError:      "parse error",
		ledgerskema.CodeTooDeep:         "nesting too deep",
		ledgerskema.CodeExclusiveChoice: "mutually exclusive fields",
		ledgerskema.CodePairedFields:    "fields must be set together",
		ledgerskema.CodeInvalidAmount:   "invalid amount",
		ledgerskema.CodeConflict:        "conflicting fields",
	},
	"ja": {
		ledgerskema.CodeInvalidType:     "型が不正です",
		ledgerskema.CodeRequired:        "必須フィールドが不足しています",
		ledgerskema.CodeUnknownKey:      "未知のフィールドです",
		ledgerskema.CodeDuplicateKey:    "キーが重複しています",
		ledgerskema.CodeTooShort:        "短すぎます",
		ledgerskema.CodeTooLong:         "長すぎます (最大 {max})",
		ledgerskema.CodeInvalidEnum:     "許可された値ではありません",
		ledgerskema.CodeInvalidFlags:    "未定義のフラグビットがあります",
		ledgerskema.CodeInvalidFormat:   "形式が不正です",
		ledgerskema.CodeParseError:      "解析エラー",
		ledgerskema.CodeTooDeep:         "ネストが深すぎます",
		ledgerskema.CodeExclusiveChoice: "排他的なフィールドです",
		ledgerskema.CodePairedFields:    "同時に指定する必要があります",
		ledgerskema.CodeInvalidAmount:   "金額が不正です",
		ledgerskema.CodeConflict:        "フィールドが競合しています",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the built-in languages.
func Languages() []string {
	out := make([]string, 0, len(dictionaries))
	for l := range dictionaries {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// SetLanguage switches the built-in Translator language. Unknown languages
// fall back to "en".
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a label for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

// Describe renders an issue as "<path or rule>: <label>: <message>".
func Describe(it ledgerskema.Issue) string {
	data := make(map[string]string, len(it.Params))
	for k, v := range it.Params {
		data[k] = fmt.Sprint(v)
	}
	return it.Key() + ": " + T(it.Code, data) + ": " + it.Message
}
