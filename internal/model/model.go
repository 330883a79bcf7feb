// Package model holds the in-memory tutor collection and its displayed view.
//
// The collection keeps insertion order (changed only by SortTutors) and
// never contains two tutors for which IsSameTutor holds. The displayed
// view is the collection filtered by the current predicate, recomputed on
// every read so indices always refer to what the user last saw.
//
// Manager is not safe for concurrent use; package logic serialises access.
package model

import (
	"slices"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/tutor"
)

// Predicate selects tutors for the displayed view.
type Predicate func(tutor.Tutor) bool

// ShowAll is the predicate that displays every tutor.
var ShowAll Predicate = func(tutor.Tutor) bool { return true }

// Messages surfaced to the user.
const (
	MessageDuplicateTutor = "This tutor already exists in Tuthub."
	MessageTutorNotFound  = "The tutor to modify is not in Tuthub."
	MessageIncomplete     = "The tutor record is missing required fields."
)

// Model is the contract commands run against.
type Model interface {
	// Tutors returns the full collection in order.
	Tutors() []tutor.Tutor
	// FilteredTutors returns the displayed view in order.
	FilteredTutors() []tutor.Tutor
	// HasTutor reports whether a tutor with the same identity exists in the
	// full collection.
	HasTutor(t tutor.Tutor) bool
	// AddTutor appends t; it fails if the same tutor already exists.
	AddTutor(t tutor.Tutor) error
	// DeleteTutor removes the tutor equal to t.
	DeleteTutor(t tutor.Tutor) error
	// SetTutor replaces target with edited at the same position.
	SetTutor(target, edited tutor.Tutor) error
	// UpdateFilter changes the displayed view.
	UpdateFilter(p Predicate)
	// SortTutors reorders the full collection, stable under cmp.
	SortTutors(cmp func(a, b tutor.Tutor) int)
	// ResetTutors replaces the whole collection.
	ResetTutors(tutors []tutor.Tutor) error
}

// Manager is the in-memory Model.
type Manager struct {
	tutors []tutor.Tutor
	filter Predicate
}

var _ Model = (*Manager)(nil)

// New returns an empty Manager showing every tutor.
func New() *Manager {
	return &Manager{filter: ShowAll}
}

// NewWithTutors returns a Manager holding tutors. It fails when two of them
// are the same tutor.
func NewWithTutors(tutors []tutor.Tutor) (*Manager, error) {
	m := New()
	if err := m.ResetTutors(tutors); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Tutors() []tutor.Tutor {
	return slices.Clone(m.tutors)
}

func (m *Manager) FilteredTutors() []tutor.Tutor {
	shown := make([]tutor.Tutor, 0, len(m.tutors))
	for _, t := range m.tutors {
		if m.filter(t) {
			shown = append(shown, t)
		}
	}
	return shown
}

func (m *Manager) HasTutor(t tutor.Tutor) bool {
	return m.indexOfSame(t) >= 0
}

func (m *Manager) AddTutor(t tutor.Tutor) error {
	if err := requireComplete(t, "model.AddTutor"); err != nil {
		return err
	}
	if m.HasTutor(t) {
		return apperrors.New(apperrors.ErrDuplicateTutor, "model.AddTutor", MessageDuplicateTutor)
	}
	m.tutors = append(m.tutors, t)
	return nil
}

func (m *Manager) DeleteTutor(t tutor.Tutor) error {
	i := m.indexOfEqual(t)
	if i < 0 {
		return apperrors.New(apperrors.ErrTutorNotFound, "model.DeleteTutor", MessageTutorNotFound)
	}
	m.tutors = slices.Delete(m.tutors, i, i+1)
	return nil
}

func (m *Manager) SetTutor(target, edited tutor.Tutor) error {
	i := m.indexOfEqual(target)
	if i < 0 {
		return apperrors.New(apperrors.ErrTutorNotFound, "model.SetTutor", MessageTutorNotFound)
	}
	if err := requireComplete(edited, "model.SetTutor"); err != nil {
		return err
	}
	if !target.IsSameTutor(edited) && m.HasTutor(edited) {
		return apperrors.New(apperrors.ErrDuplicateTutor, "model.SetTutor", MessageDuplicateTutor)
	}
	m.tutors[i] = edited
	return nil
}

func (m *Manager) UpdateFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.filter = p
}

func (m *Manager) SortTutors(cmp func(a, b tutor.Tutor) int) {
	slices.SortStableFunc(m.tutors, cmp)
}

func (m *Manager) ResetTutors(tutors []tutor.Tutor) error {
	for i := range tutors {
		if err := requireComplete(tutors[i], "model.ResetTutors"); err != nil {
			return err
		}
		for j := i + 1; j < len(tutors); j++ {
			if tutors[i].IsSameTutor(tutors[j]) {
				return apperrors.New(apperrors.ErrDuplicateTutor, "model.ResetTutors", MessageDuplicateTutor)
			}
		}
	}
	m.tutors = slices.Clone(tutors)
	return nil
}

func (m *Manager) indexOfSame(t tutor.Tutor) int {
	return slices.IndexFunc(m.tutors, t.IsSameTutor)
}

func (m *Manager) indexOfEqual(t tutor.Tutor) int {
	return slices.IndexFunc(m.tutors, t.Equal)
}

// requireComplete rejects the zero Tutor, which never went through
// tutor.New.
func requireComplete(t tutor.Tutor, op string) error {
	if !t.IsComplete() {
		return apperrors.New(apperrors.ErrConstraintViolation, op, MessageIncomplete)
	}
	return nil
}
