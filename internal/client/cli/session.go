package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/jokecli/internal/client/jokeapi"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"golang.org/x/text/cases"
)

const (
	categoryPrompt = "Choose joke category (one or a comma seprated list): "
	flagsPrompt    = "Choose joke flags to exclude (one or a comma seprated list, enter to exclude none): "
	keywordsPrompt = "Enter keywords to search: "
	continuePrompt = "More of the same (exit to exit, menu to return to the main menu)?"
)

type state int

const (
	stateMenu state = iota
	stateDisplay
	stateContinue
	stateDone
)

// session runs the menu → display → continue loop:
//
//	stateMenu     build the request target from the arguments or the menu
//	stateDisplay  fetch and render one joke
//	stateContinue ask: "exit" ends, "menu" rebuilds the target,
//	              anything else fetches another joke for the same target
//
// The first error ends the session.
func (a *App) session(ctx context.Context) error {
	var target string
	st := stateMenu

	for {
		switch st {
		case stateMenu:
			t, err := a.buildTarget(ctx)
			if err != nil {
				return err
			}
			target = t
			a.logger.Debug(ctx, "request target", "url", target)
			st = stateDisplay

		case stateDisplay:
			joke, err := a.jokeService.Next(ctx, target)
			if err != nil {
				return err
			}
			if err := a.render(ctx, joke); err != nil {
				return err
			}
			st = stateContinue

		case stateContinue:
			next, err := a.askContinue()
			if err != nil {
				return err
			}
			st = next

		case stateDone:
			return nil
		}
	}
}

// buildTarget reuses the positional selectors when present, so returning to
// the menu in that mode rebuilds the same URL without prompting.
func (a *App) buildTarget(ctx context.Context) (string, error) {
	if a.selectors != nil {
		return jokeapi.BuildTarget(a.config.APIRoot, *a.selectors), nil
	}
	return a.mainMenu(ctx)
}

func (a *App) mainMenu(ctx context.Context) (string, error) {
	root := a.config.APIRoot

	resp, err := a.jokeService.Document(ctx, jokeapi.CategoriesURL(root))
	if err != nil {
		return "", fmt.Errorf("fetch categories: %w", err)
	}
	category, err := Choose(a.reader, a.out, resp, categoryPrompt, "categories")
	if err != nil {
		return "", fmt.Errorf("categories: %w", err)
	}
	if category == "" {
		category = common.AnyCategory
	}

	resp, err = a.jokeService.Document(ctx, jokeapi.FlagsURL(root))
	if err != nil {
		return "", fmt.Errorf("fetch flags: %w", err)
	}
	fmt.Fprintln(a.out)
	flags, err := Choose(a.reader, a.out, resp, flagsPrompt, "flags")
	if err != nil {
		return "", fmt.Errorf("flags: %w", err)
	}

	keywords, err := GetSimpleText(a.reader, keywordsPrompt, a.out)
	if err != nil {
		return "", fmt.Errorf("read keywords: %w", err)
	}

	return jokeapi.BuildURL(root, category, flags, keywords), nil
}

// askContinue maps the answer to the next state. EOF on input ends the
// session like "exit".
func (a *App) askContinue() (state, error) {
	fmt.Fprintln(a.out)
	answer, err := GetSimpleText(a.reader, continuePrompt, a.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stateDone, nil
		}
		return stateDone, err
	}

	switch cases.Fold().String(answer) {
	case "exit":
		return stateDone, nil
	case "menu":
		return stateMenu, nil
	default:
		return stateDisplay, nil
	}
}
