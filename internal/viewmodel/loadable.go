// Package viewmodel holds the per-screen orchestration: each view model
// calls services, tracks load state and exposes projections over the data
// it fetched. Screens only read state and call view model methods.
package viewmodel

import (
	"context"

	"github.com/doulovera/proyx-app/internal/observable"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// Phase is where a load is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is one snapshot of a Loadable. Data holds the last successful
// result; a failed load keeps it.
type State[T any] struct {
	Phase        Phase
	Data         T
	HasData      bool
	Err          error
	ErrorMessage string
}

// IsLoading reports whether a load is in flight.
func (s State[T]) IsLoading() bool {
	return s.Phase == PhaseLoading
}

// Loadable runs loads and publishes their state. Overlapping loads are not
// de-duplicated; whichever finishes last decides the final state.
type Loadable[T any] struct {
	state *observable.Value[State[T]]
}

// NewLoadable returns an idle Loadable.
func NewLoadable[T any]() *Loadable[T] {
	return &Loadable[T]{state: observable.New(State[T]{})}
}

// State returns the current snapshot.
func (l *Loadable[T]) State() State[T] {
	return l.state.Get()
}

// Subscribe delivers the current snapshot and then every change,
// latest-wins.
func (l *Loadable[T]) Subscribe() (<-chan State[T], func()) {
	return l.state.Subscribe()
}

// Run moves to Loading, calls fetch and then moves to Loaded with the result
// replacing any previous data, or to Failed keeping it.
func (l *Loadable[T]) Run(ctx context.Context, fetch func(context.Context) (T, error)) error {
	l.state.Update(func(s State[T]) State[T] {
		s.Phase = PhaseLoading
		s.Err = nil
		s.ErrorMessage = ""
		return s
	})

	data, err := fetch(ctx)
	if err != nil {
		l.Fail(err)
		return err
	}
	l.state.Set(State[T]{Phase: PhaseLoaded, Data: data, HasData: true})
	return nil
}

// Fail moves to Failed without running a load, for input rejected before
// any service call.
func (l *Loadable[T]) Fail(err error) {
	l.state.Update(func(s State[T]) State[T] {
		s.Phase = PhaseFailed
		s.Err = err
		s.ErrorMessage = apperrors.UserMessage(err)
		return s
	})
}

// Reset drops data and errors and returns to Idle.
func (l *Loadable[T]) Reset() {
	l.state.Set(State[T]{})
}
