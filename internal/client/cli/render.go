package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/mitchellh/go-wordwrap"
)

// render prints a joke. A two-part joke shows its setup, waits
// TwoPartDelay, then shows the delivery.
func (a *App) render(ctx context.Context, j *models.Joke) error {
	switch j.Kind {
	case models.KindSingle:
		return a.printPart(j.Text)
	case models.KindTwoPart:
		if err := a.printPart(j.Setup); err != nil {
			return err
		}
		if err := a.wait(ctx, a.config.TwoPartDelay); err != nil {
			return err
		}
		return a.printPart(j.Delivery)
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownJokeType, j.Kind)
	}
}

func (a *App) printPart(text string) error {
	if width := a.termWidth(); width > 0 {
		text = wordwrap.WrapString(text, uint(width))
	}
	_, err := fmt.Fprintln(a.out, "\n"+text)
	return err
}
