package controller

import (
	"context"
	"sync"

	"catalogadmin/pkg/errors"
)

// Phase is the lifecycle stage of a screen.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseErrored
)

// Scope ties every request a screen issues to one cancellable context.
// Closing the scope aborts in-flight requests and makes late results drop
// instead of overwriting newer state.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

// Alive reports whether the scope is still accepting results.
func (s *Scope) Alive() bool {
	return s.ctx.Err() == nil
}

func (s *Scope) Close() {
	s.cancel()
}

// screenState is the shared skeleton of every screen controller: phase,
// error banner and the mutex guarding them.
type screenState struct {
	mu      sync.Mutex
	scope   *Scope
	phase   Phase
	message string
}

func newScreenState(parent context.Context) screenState {
	return screenState{scope: NewScope(parent)}
}

func (s *screenState) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Message is the current error banner, empty when the screen is healthy.
func (s *screenState) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *screenState) Close() {
	s.scope.Close()
}

// fail moves the screen to the errored phase with the error's user-facing
// message, unless the scope was already closed. Reserved for the initial
// load; action failures use banner so the loaded state survives.
func (s *screenState) fail(err error) {
	if !s.scope.Alive() {
		return
	}
	s.phase = PhaseErrored
	s.message = errors.Message(err)
}

// banner surfaces an action failure without leaving the ready phase.
func (s *screenState) banner(err error) {
	if !s.scope.Alive() {
		return
	}
	s.message = errors.Message(err)
}

func (s *screenState) ready() {
	if !s.scope.Alive() {
		return
	}
	s.phase = PhaseReady
	s.message = ""
}
