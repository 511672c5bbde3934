// Package app provides the main application structure and coordination.
package app

import (
	"fmt"

	"github.com/dshills/az/internal/engine/search"
	"github.com/dshills/az/internal/renderer/backend"
)

// MaxPromptInput is the longest answer a prompt accepts, in bytes.
const MaxPromptInput = 255

// Prompt labels.
const (
	promptFileName = "File name: "
	promptSearch   = "^F Search  ^C Cancel: "
	promptReplace  = "^R Search  ^C Cancel: "
	promptWith     = "^R Replace with  ^C Cancel: "
)

// prompt is a one-line question on the help row. While it is open every
// key goes to it. Esc or Ctrl+C cancels with "Cancelled".
type prompt struct {
	label string
	input []byte

	// choice prompts answer with a single key instead of a line.
	choice bool

	// accept receives the answer.
	accept func(app *Application, answer string) error
}

// String returns what the help line shows.
func (p *prompt) String() string {
	return p.label + string(p.input)
}

// ask opens a line prompt.
func (app *Application) ask(label string, accept func(app *Application, answer string) error) {
	app.prompt = &prompt{label: label, accept: accept}
}

// askChoice opens a prompt answered by one key.
func (app *Application) askChoice(label string, accept func(app *Application, answer string) error) {
	app.prompt = &prompt{label: label, choice: true, accept: accept}
}

// Prompting reports whether a prompt is open.
func (app *Application) Prompting() bool {
	return app.prompt != nil
}

// handlePromptKey edits or resolves the open prompt.
func (app *Application) handlePromptKey(ev backend.Event) error {
	p := app.prompt

	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		app.prompt = nil
		app.editor.SetStatus("Cancelled")
		app.LogDebug("prompt %q cancelled", p.label)
		return nil

	case backend.KeyEnter:
		if p.choice {
			return app.resolve(p, "\n")
		}
		return app.resolve(p, string(p.input))

	case backend.KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
		return nil

	case backend.KeyRune:
		if p.choice {
			return app.resolve(p, string(ev.Rune))
		}
		if printable(ev.Rune) && len(p.input) < MaxPromptInput {
			p.input = append(p.input, byte(ev.Rune))
		}
		return nil
	}

	if p.choice {
		return app.resolve(p, "")
	}
	return nil
}

// resolve closes p and hands over the answer. The accept function may
// open the next prompt.
func (app *Application) resolve(p *prompt, answer string) error {
	app.prompt = nil
	return app.run(binding{name: p.label, run: func(app *Application) error {
		return p.accept(app, answer)
	}})
}

// startSearch asks for a query and selects its next occurrence.
func (app *Application) startSearch() error {
	app.ask(promptSearch, func(app *Application, query string) error {
		return app.editor.Search(query)
	})
	return nil
}

// startReplace asks for a query, its replacement, then how many to
// replace.
func (app *Application) startReplace() error {
	app.ask(promptReplace, func(app *Application, query string) error {
		if query == "" {
			_, err := app.editor.Replace(query, "", search.ModeAll)
			return err
		}
		app.ask(promptWith, func(app *Application, with string) error {
			return app.confirmReplace(query, with)
		})
		return nil
	})
	return nil
}

// confirmReplace counts the matches and asks All / One / Cancel.
func (app *Application) confirmReplace(query, with string) error {
	n := app.editor.Count(query)
	if n == 0 {
		app.editor.SetStatus("Not found")
		return nil
	}

	label := fmt.Sprintf("%d found. All (a) / One (1) / Cancel (Esc)?", n)
	app.askChoice(label, func(app *Application, answer string) error {
		var r rune
		if answer != "" {
			r = []rune(answer)[0]
		}
		mode, ok := search.ParseMode(r)
		if !ok {
			app.editor.SetStatus("Cancelled")
			return nil
		}
		replaced, err := app.editor.Replace(query, with, mode)
		app.LogDebug("replace %q -> %q (%s): %d", query, with, mode, replaced)
		return err
	})
	return nil
}
