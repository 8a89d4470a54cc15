package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jokecli/internal/client/client"
	"github.com/dmitrijs2005/jokecli/internal/client/jokeapi"
	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
)

// Choose lists the vocabulary held in resp's JSON field as a numbered menu,
// asks prompt, and returns the chosen entries joined by commas in the order
// they were typed. An empty answer means no restriction and yields "".
//
// A non-2xx resp yields *common.APIResponseError before anything is parsed
// or printed. Non-numeric and out-of-range answers yield
// common.ErrNotANumber and common.ErrIndexOutOfRange.
func Choose(r *bufio.Reader, w io.Writer, resp *client.Response, prompt, field string) (string, error) {
	if !common.IsSuccessStatus(resp.StatusCode) {
		return "", &common.APIResponseError{StatusCode: resp.StatusCode, Reason: resp.Reason}
	}

	vocab, err := jokeapi.ParseVocabulary(resp.Body, field)
	if err != nil {
		return "", err
	}

	for i, name := range vocab {
		if _, err := fmt.Fprintf(w, "%d - %s\n", i+1, name); err != nil {
			return "", err
		}
	}

	line, err := GetSimpleText(r, prompt, w)
	if err != nil {
		return "", fmt.Errorf("read choice: %w", err)
	}
	return selectEntries(vocab, line)
}

// selectEntries maps a comma-separated list of 1-based indices onto vocab.
// Duplicates are kept.
func selectEntries(vocab models.Vocabulary, line string) (string, error) {
	if line == "" {
		return "", nil
	}

	parts := strings.Split(line, ",")
	chosen := make([]string, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", fmt.Errorf("%w: %q", common.ErrNotANumber, p)
		}
		if n < 1 || n > len(vocab) {
			return "", fmt.Errorf("%w: %d (expected 1-%d)", common.ErrIndexOutOfRange, n, len(vocab))
		}
		chosen = append(chosen, vocab[n-1])
	}
	return strings.Join(chosen, ","), nil
}
