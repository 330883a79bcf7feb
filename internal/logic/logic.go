// Package logic ties the parser, the model and the storage together.
//
// Every call to Execute takes the same mutex for the whole
// parse → execute → save sequence. Commands check for duplicates and then
// write, and the REPL and the HTTP server may both drive one Logic, so two
// commands must never interleave.
package logic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/parser"
	"github.com/tuthub/tuthub/internal/storage"
	"github.com/tuthub/tuthub/internal/tutor"
)

// MessageSaveFailed prefixes a storage failure after a successful command.
const MessageSaveFailed = "could not save data"

// Logic runs user commands one at a time.
type Logic struct {
	mu    sync.Mutex
	model model.Model
	store storage.Storage
	log   *slog.Logger
}

// New wraps an existing model.
func New(m model.Model, store storage.Storage, log *slog.Logger) *Logic {
	return &Logic{model: m, store: store, log: log}
}

// Open loads the stored list into a fresh model. A load failure is logged
// and the session starts empty. When the store is a storage.Backuper the
// unreadable content is copied aside first; either way nothing is written
// back until a command changes the list.
func Open(store storage.Storage, log *slog.Logger) *Logic {
	tutors, err := store.LoadTutors()
	if err != nil {
		log.Warn("could not load tutors, starting with an empty list",
			slog.String("error", err.Error()))
		backup(store, log)
		return New(model.New(), store, log)
	}

	m, err := model.NewWithTutors(tutors)
	if err != nil {
		log.Warn("stored tutors contain duplicates, starting with an empty list",
			slog.String("error", err.Error()))
		backup(store, log)
		return New(model.New(), store, log)
	}

	log.Info("tutors loaded", slog.Int("count", len(tutors)))
	return New(m, store, log)
}

func backup(store storage.Storage, log *slog.Logger) {
	b, ok := store.(storage.Backuper)
	if !ok {
		return
	}
	path, err := b.Backup()
	if err != nil {
		log.Error("could not back up stored tutors", slog.String("error", err.Error()))
		return
	}
	if path != "" {
		log.Warn("stored tutors backed up", slog.String("path", path))
	}
}

// Execute parses and runs one line of input, then saves the list if the
// command changed it.
//
// A user error (bad format, duplicate, index out of range, ...) comes back
// as an *apperrors.Error and nothing is saved. Read-only commands (list,
// find, help, exit) never save. A storage failure is returned wrapped with
// MessageSaveFailed; the in-memory change stays.
func (l *Logic) Execute(ctx context.Context, text string) (command.Result, error) {
	if err := ctx.Err(); err != nil {
		return command.Result{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cmd, err := parser.Parse(text)
	if err != nil {
		l.log.DebugContext(ctx, "command rejected",
			slog.String("command", text),
			slog.String("op", apperrors.Op(err)),
			slog.String("error", err.Error()))
		return command.Result{}, err
	}

	result, err := cmd.Execute(l.model)
	if err != nil {
		l.log.InfoContext(ctx, "command failed",
			slog.String("command", text),
			slog.String("op", apperrors.Op(err)),
			slog.String("error", err.Error()))
		return command.Result{}, err
	}

	if result.Mutated {
		if err := l.store.SaveTutors(l.model.Tutors()); err != nil {
			l.log.ErrorContext(ctx, "save failed",
				slog.String("command", text),
				slog.String("error", err.Error()))
			return command.Result{}, fmt.Errorf("%s: %w", MessageSaveFailed, err)
		}
	}

	l.log.InfoContext(ctx, "command executed",
		slog.String("command", text),
		slog.Int("tutors", len(l.model.Tutors())))
	return result, nil
}

// FilteredTutors returns the displayed list.
func (l *Logic) FilteredTutors() []tutor.Tutor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.FilteredTutors()
}

// Tutors returns the full list.
func (l *Logic) Tutors() []tutor.Tutor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.Tutors()
}
