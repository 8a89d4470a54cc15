package jokeapi

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
)

// jokeDoc mirrors the joke endpoint's response. Unknown fields are ignored.
type jokeDoc struct {
	Error          bool     `json:"error"`
	Message        string   `json:"message"`
	AdditionalInfo string   `json:"additionalInfo"`
	ID             int      `json:"id"`
	Category       string   `json:"category"`
	Lang           string   `json:"lang"`
	Type           *string  `json:"type"`
	Joke           *string  `json:"joke"`
	Setup          *string  `json:"setup"`
	Delivery       *string  `json:"delivery"`
}

// DecodeJoke turns a joke endpoint response into a models.Joke.
//
// Errors wrap common.ErrParse: malformed JSON, an error document from the
// API, a missing type/joke/setup/delivery field (common.ErrMissingField) or
// a type other than "single" and "twopart" (common.ErrUnknownJokeType).
func DecodeJoke(body []byte) (*models.Joke, error) {
	var d jokeDoc
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParse, err)
	}

	if d.Error {
		msg := d.Message
		if d.AdditionalInfo != "" {
			msg += ": " + d.AdditionalInfo
		}
		return nil, fmt.Errorf("%w: api reported an error: %s", common.ErrParse, msg)
	}

	if d.Type == nil {
		return nil, fmt.Errorf("%w: %q", common.ErrMissingField, "type")
	}

	j := &models.Joke{
		APIID:    d.ID,
		Category: d.Category,
		Lang:     d.Lang,
		Kind:     models.JokeKind(*d.Type),
	}

	switch j.Kind {
	case models.KindSingle:
		if d.Joke == nil {
			return nil, fmt.Errorf("%w: %q", common.ErrMissingField, "joke")
		}
		j.Text = *d.Joke
	case models.KindTwoPart:
		if d.Setup == nil {
			return nil, fmt.Errorf("%w: %q", common.ErrMissingField, "setup")
		}
		if d.Delivery == nil {
			return nil, fmt.Errorf("%w: %q", common.ErrMissingField, "delivery")
		}
		j.Setup, j.Delivery = *d.Setup, *d.Delivery
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownJokeType, *d.Type)
	}

	return j, nil
}
