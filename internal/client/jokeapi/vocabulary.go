package jokeapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
)

// ParseVocabulary reads doc[field] as text, drops every character that is
// not an ASCII letter or a comma, and splits the rest on commas.
//
// A JSON string field is used as its contents; any other JSON value (the API
// sends arrays) is used as its raw JSON text, so ["Misc", "Dark"] becomes
// "Misc,Dark". Empty segments are kept.
func ParseVocabulary(doc []byte, field string) (models.Vocabulary, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParse, err)
	}

	raw, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrMissingField, field)
	}

	text := string(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		text = s
	}

	return strings.Split(stripNonLetters(text), ","), nil
}

func stripNonLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, s)
}
