package ledgerskema

import (
	eng "github.com/reoring/ledgerskema/internal/engine"
)

// DetectJSONDuplicateKeys reports duplicate object keys in a JSON document,
// each at the JSON Pointer of the repeated key.
func DetectJSONDuplicateKeys(data []byte) (Issues, error) {
	_, si, err := eng.Decode(data, eng.Options{OnDuplicate: eng.DupWarn})
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}
