// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// ErrReplayExhausted is reported once a replay file has no agent turns left.
var ErrReplayExhausted = errors.New("replay transcript has no more agent turns")

// ReplayFeed plays back a saved transcript. Each Submit consumes the next
// agent turn from the file, re-emitting its recorded steps in order; the
// submitted prompt itself is ignored. Timestamps and content come from the
// recording untouched.
type ReplayFeed struct {
	mu       sync.Mutex
	listener Listener
	cancel   context.CancelFunc
	flight   uint64
	delay    time.Duration

	turns []replayTurn
	next  int
}

type replayTurn struct {
	message transcript.Message
	steps   []transcript.ProcessedEvent
}

// NewReplay loads the transcript at path and prepares its agent turns for
// playback.
func NewReplay(path string, opts ...Option) (*ReplayFeed, error) {
	tr, err := transcript.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load replay transcript: %w", err)
	}
	o := buildOptions(opts)
	f := &ReplayFeed{delay: o.delay}
	for _, msg := range tr.Messages {
		if !msg.IsAI() {
			continue
		}
		f.turns = append(f.turns, replayTurn{
			message: msg,
			steps:   tr.EventsFor(msg.ID),
		})
	}
	return f, nil
}

// Remaining reports how many agent turns are left to play.
func (f *ReplayFeed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.turns) - f.next
}

// SetListener replaces the event sink.
func (f *ReplayFeed) SetListener(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = l
}

// Submit plays the next recorded agent turn. It returns an error while a
// previous turn is still in flight; an exhausted recording is reported
// through an error event so the caller's turn still resolves.
func (f *ReplayFeed) Submit(ctx context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return fmt.Errorf("a turn is already in flight")
	}
	turnCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.flight++
	if f.next >= len(f.turns) {
		go f.runExhausted(turnCtx, f.flight)
		return nil
	}
	turn := f.turns[f.next]
	f.next++
	go f.run(turnCtx, f.flight, turn)
	return nil
}

// Cancel stops the in-flight turn, if any. The consumed turn is not rewound.
func (f *ReplayFeed) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *ReplayFeed) run(ctx context.Context, flight uint64, turn replayTurn) {
	defer f.release(flight)

	f.emit(ctx, Event{Type: EventThinkingStarted, Data: ThinkingData{
		MessageID: turn.message.ID,
		AgentID:   turn.message.Agent,
	}})

	for _, step := range turn.steps {
		if !f.pause(ctx) {
			return
		}
		f.emit(ctx, Event{Type: EventStepRecorded, Data: StepData{
			MessageID: turn.message.ID,
			Step:      step,
		}})
	}

	if !f.pause(ctx) {
		return
	}
	f.emit(ctx, Event{Type: EventResponseComplete, Data: ResponseData{
		Message: turn.message,
	}})
}

func (f *ReplayFeed) runExhausted(ctx context.Context, flight uint64) {
	defer f.release(flight)
	f.emit(ctx, Event{Type: EventError, Data: ErrorData{Err: ErrReplayExhausted}})
}

func (f *ReplayFeed) pause(ctx context.Context) bool {
	if f.delay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(f.delay):
		return true
	}
}

func (f *ReplayFeed) emit(ctx context.Context, ev Event) {
	if ctx.Err() != nil {
		return
	}
	f.mu.Lock()
	l := f.listener
	f.mu.Unlock()
	if l != nil {
		l.OnEvent(ev)
	}
}

// release clears the busy state, but only if the finished goroutine still
// owns the slot. A Cancel followed by a fresh Submit moves ownership on.
func (f *ReplayFeed) release(flight uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flight == flight && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}
