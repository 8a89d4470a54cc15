package jokeapi

import (
	"testing"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		want  models.Vocabulary
	}{
		{
			name:  "comma separated string",
			doc:   `{"categories":"Programming,Misc,Dark"}`,
			field: "categories",
			want:  models.Vocabulary{"Programming", "Misc", "Dark"},
		},
		{
			name:  "array as sent by the API",
			doc:   `{"error":false,"categories":["Any","Misc","Programming","Dark","Pun","Spooky","Christmas"],"categoryAliases":[{"alias":"Miscellaneous","resolved":"Misc"}],"timestamp":1}`,
			field: "categories",
			want:  models.Vocabulary{"Any", "Misc", "Programming", "Dark", "Pun", "Spooky", "Christmas"},
		},
		{
			name:  "pretty printed array",
			doc:   "{\n  \"flags\": [\n    \"nsfw\",\n    \"religious\"\n  ]\n}",
			field: "flags",
			want:  models.Vocabulary{"nsfw", "religious"},
		},
		{
			name:  "digits and punctuation are stripped",
			doc:   `{"flags":"ns-fw1, rac_ist!"}`,
			field: "flags",
			want:  models.Vocabulary{"nsfw", "racist"},
		},
		{
			name:  "trailing comma keeps an empty segment",
			doc:   `{"flags":"nsfw,racist,"}`,
			field: "flags",
			want:  models.Vocabulary{"nsfw", "racist", ""},
		},
		{
			name:  "empty string yields one empty entry",
			doc:   `{"flags":""}`,
			field: "flags",
			want:  models.Vocabulary{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVocabulary([]byte(tt.doc), tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVocabulary_Errors(t *testing.T) {
	_, err := ParseVocabulary([]byte(`{"categories":["Misc"]}`), "flags")
	require.ErrorIs(t, err, common.ErrMissingField)
	require.ErrorIs(t, err, common.ErrParse)

	_, err = ParseVocabulary([]byte(`not json`), "flags")
	require.ErrorIs(t, err, common.ErrParse)

	_, err = ParseVocabulary([]byte(`["a","b"]`), "flags")
	require.ErrorIs(t, err, common.ErrParse)
}
