package logic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/storage/yamlfile"
	"github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/tutor/tutortest"
)

type fakeStore struct {
	loaded  []tutor.Tutor
	loadErr error
	saveErr error
	saves   [][]tutor.Tutor
}

func (f *fakeStore) LoadTutors() ([]tutor.Tutor, error) { return f.loaded, f.loadErr }

func (f *fakeStore) SaveTutors(tutors []tutor.Tutor) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, tutors)
	return nil
}

func (f *fakeStore) Close() error { return nil }

type backupStore struct {
	fakeStore
	backups int
}

func (b *backupStore) Backup() (string, error) {
	b.backups++
	return "tuthub.yaml.1.bak", nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const addAmy = "add n/Amy Bee p/85355255 e/amy@gmail.com m/CS2100 y/3 s/A1234567X"

func TestOpen(t *testing.T) {
	l := Open(&fakeStore{loaded: tutortest.Typical()}, discard())
	assert.Len(t, l.Tutors(), 4)

	l = Open(&fakeStore{loadErr: errors.New("corrupt")}, discard())
	assert.Empty(t, l.Tutors())

	dup := []tutor.Tutor{tutortest.Alice(), tutortest.Alice()}
	l = Open(&fakeStore{loaded: dup}, discard())
	assert.Empty(t, l.Tutors())
}

func TestOpen_BacksUpUnreadableStore(t *testing.T) {
	store := &backupStore{fakeStore: fakeStore{loadErr: errors.New("corrupt")}}
	Open(store, discard())
	assert.Equal(t, 1, store.backups)

	store = &backupStore{fakeStore: fakeStore{loaded: []tutor.Tutor{tutortest.Alice(), tutortest.Alice()}}}
	Open(store, discard())
	assert.Equal(t, 1, store.backups)

	store = &backupStore{fakeStore: fakeStore{loaded: tutortest.Typical()}}
	Open(store, discard())
	assert.Zero(t, store.backups)
}

func TestExecute_ReadOnlyCommandsKeepUnreadableStore(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("corrupt")}
	l := Open(store, discard())

	for _, text := range []string{"list", "find Alex", "findmodule cs", "help", "exit"} {
		_, err := l.Execute(context.Background(), text)
		require.NoError(t, err, text)
	}
	assert.Empty(t, store.saves)

	_, err := l.Execute(context.Background(), addAmy)
	require.NoError(t, err)
	assert.Len(t, store.saves, 1)
}

func TestOpen_UnreadableFileIsKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuthub.yaml")
	broken := []byte("tutors: [not, a, mapping")
	require.NoError(t, os.WriteFile(path, broken, 0o644))

	store, err := yamlfile.New(path)
	require.NoError(t, err)
	l := Open(store, discard())

	_, err = l.Execute(context.Background(), "list")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, broken, data, "a read-only command does not save")

	backups, err := filepath.Glob(filepath.Join(dir, "tuthub.yaml.*.bak"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	_, err = l.Execute(context.Background(), addAmy)
	require.NoError(t, err)
	data, err = os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, broken, data, "the backup survives the next save")
}

func TestExecute_SavesAfterSuccess(t *testing.T) {
	store := &fakeStore{}
	l := New(model.New(), store, discard())

	result, err := l.Execute(context.Background(), addAmy)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageAddSuccess, tutortest.NewBuilder().Build()), result.Feedback)

	require.Len(t, store.saves, 1)
	require.Len(t, store.saves[0], 1)
	assert.Equal(t, "A1234567X", store.saves[0][0].StudentID().String())
}

func TestExecute_UserErrorIsNotSaved(t *testing.T) {
	store := &fakeStore{}
	m, err := model.NewWithTutors(tutortest.Typical())
	require.NoError(t, err)
	l := New(m, store, discard())

	_, err = l.Execute(context.Background(), "edit 9 n/Bob")
	assert.True(t, errors.Is(err, apperrors.ErrIndexOutOfRange))

	_, err = l.Execute(context.Background(), "frobnicate")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownCommand))

	assert.Empty(t, store.saves)
}

func TestExecute_SaveFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	l := New(model.New(), store, discard())

	_, err := l.Execute(context.Background(), addAmy)
	require.Error(t, err)
	assert.Equal(t, "could not save data: disk full", err.Error())
	assert.False(t, apperrors.IsUserError(err))

	// the command itself went through
	assert.Len(t, l.Tutors(), 1)
}

func TestExecute_CancelledContext(t *testing.T) {
	l := New(model.New(), &fakeStore{}, discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Execute(ctx, addAmy)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, l.Tutors())
}

func TestExecute_FilteredTutors(t *testing.T) {
	m, err := model.NewWithTutors(tutortest.Typical())
	require.NoError(t, err)
	l := New(m, &fakeStore{}, discard())

	_, err = l.Execute(context.Background(), "find Meier")
	require.NoError(t, err)
	assert.Len(t, l.FilteredTutors(), 2)
	assert.Len(t, l.Tutors(), 4)
}

func TestExecute_ConcurrentEditsStayUnique(t *testing.T) {
	x := tutortest.NewBuilder().WithStudentID("A1111111A").Build()
	y := tutortest.NewBuilder().WithStudentID("A2222222B").Build()
	m, err := model.NewWithTutors([]tutor.Tutor{x, y})
	require.NoError(t, err)
	l := New(m, &fakeStore{}, discard())

	// both edits try to take the same new student ID
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.Execute(context.Background(), fmt.Sprintf("edit %d s/A3333333C", i+1))
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.True(t, errors.Is(err, apperrors.ErrDuplicateTutor))
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	ids := map[string]bool{}
	for _, tt := range l.Tutors() {
		ids[tt.StudentID().String()] = true
	}
	assert.Len(t, ids, 2)
	assert.True(t, ids["A3333333C"])
}
