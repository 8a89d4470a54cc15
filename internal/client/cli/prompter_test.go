package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/jokecli/internal/client/client"
	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okResp(body string) *client.Response {
	return &client.Response{StatusCode: 200, Reason: "OK", Body: []byte(body)}
}

func TestChoose_MultipleIndicesKeepOrder(t *testing.T) {
	var out bytes.Buffer
	got, err := Choose(rdr("1,3\n"), &out, okResp(`{"categories":"Programming,Misc,Dark"}`), "Choose joke category: ", "categories")
	require.NoError(t, err)

	assert.Equal(t, "Programming,Dark", got)
	assert.Equal(t, "1 - Programming\n2 - Misc\n3 - Dark\nChoose joke category:\n> ", out.String())
}

func TestChoose_EmptyInputMeansNoRestriction(t *testing.T) {
	var out bytes.Buffer
	got, err := Choose(rdr("\n"), &out, okResp(`{"flags":["nsfw","religious","political"]}`), "Choose flags: ", "flags")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestChoose_SingleIndex(t *testing.T) {
	var out bytes.Buffer
	got, err := Choose(rdr("2\n"), &out, okResp(`{"flags":["nsfw","religious","political"]}`), "Choose flags: ", "flags")
	require.NoError(t, err)
	assert.Equal(t, "religious", got)
}

func TestChoose_ErrorStatusStopsEarly(t *testing.T) {
	var out bytes.Buffer
	resp := &client.Response{StatusCode: 503, Reason: "Service Unavailable", Body: []byte(`{"categories":"Misc"}`)}

	_, err := Choose(rdr("1\n"), &out, resp, "Choose: ", "categories")

	var apiErr *common.APIResponseError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "Service Unavailable", apiErr.Reason)
	assert.Empty(t, out.String(), "nothing is listed or asked")
}

func TestChoose_MissingField(t *testing.T) {
	var out bytes.Buffer
	_, err := Choose(rdr("1\n"), &out, okResp(`{"other":"x"}`), "Choose: ", "categories")
	require.ErrorIs(t, err, common.ErrMissingField)
}

func TestChoose_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := Choose(rdr(""), &out, okResp(`{"categories":"Misc"}`), "Choose: ", "categories")
	require.Error(t, err)
}

func TestSelectEntries(t *testing.T) {
	vocab := models.Vocabulary{"Programming", "Misc", "Dark"}

	tests := []struct {
		name    string
		line    string
		want    string
		wantErr error
	}{
		{name: "empty", line: "", want: ""},
		{name: "single", line: "3", want: "Dark"},
		{name: "list", line: "1,3", want: "Programming,Dark"},
		{name: "reversed order", line: "3,1", want: "Dark,Programming"},
		{name: "duplicates kept", line: "2,2", want: "Misc,Misc"},
		{name: "spaces tolerated", line: "1, 2", want: "Programming,Misc"},
		{name: "zero", line: "0", wantErr: common.ErrIndexOutOfRange},
		{name: "past the end", line: "1,4", wantErr: common.ErrIndexOutOfRange},
		{name: "negative", line: "-1", wantErr: common.ErrIndexOutOfRange},
		{name: "word", line: "Dark", wantErr: common.ErrNotANumber},
		{name: "trailing comma", line: "1,", wantErr: common.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectEntries(vocab, tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, common.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectEntries_EmptySegmentFromVocabulary(t *testing.T) {
	got, err := selectEntries(models.Vocabulary{"nsfw", ""}, "2")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
