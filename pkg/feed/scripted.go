// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

const defaultStepDelay = 450 * time.Millisecond

// Option adjusts feed pacing.
type Option func(*options)

type options struct {
	delay time.Duration
}

// WithDelay sets the pause between emitted steps. Zero disables pacing.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

func buildOptions(opts []Option) options {
	o := options{delay: defaultStepDelay}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ScriptedFeed answers every prompt with a canned specialist turn. Routing is
// keyword based, so the demo stays deterministic while still exercising the
// full event surface: tool calls, tool responses, source lists, and a final
// markdown report.
type ScriptedFeed struct {
	mu       sync.Mutex
	listener Listener
	cancel   context.CancelFunc
	turn     uint64
	delay    time.Duration
}

// NewScripted builds the demo feed.
func NewScripted(opts ...Option) *ScriptedFeed {
	o := buildOptions(opts)
	return &ScriptedFeed{delay: o.delay}
}

// SetListener replaces the event sink.
func (f *ScriptedFeed) SetListener(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = l
}

// Submit starts one scripted turn. It returns an error while a previous turn
// is still in flight.
func (f *ScriptedFeed) Submit(ctx context.Context, prompt string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return fmt.Errorf("a turn is already in flight")
	}
	turnCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.turn++
	go f.run(turnCtx, f.turn, prompt)
	return nil
}

// Cancel stops the in-flight turn, if any. Nothing more is emitted for a
// cancelled turn.
func (f *ScriptedFeed) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *ScriptedFeed) run(ctx context.Context, turn uint64, prompt string) {
	defer f.release(turn)

	script := routeScript(prompt)
	msgID := uuid.NewString()

	f.emit(ctx, Event{Type: EventThinkingStarted, Data: ThinkingData{
		MessageID: msgID,
		AgentID:   script.agentID,
	}})

	if !f.pause(ctx) {
		return
	}
	f.emit(ctx, Event{Type: EventStepRecorded, Data: StepData{
		MessageID: msgID,
		Step: transcript.ProcessedEvent{
			Title:   "Function call: " + script.function,
			Payload: transcript.FunctionCallPayload{Name: script.function, Args: script.args},
		},
	}})

	if !f.pause(ctx) {
		return
	}
	f.emit(ctx, Event{Type: EventStepRecorded, Data: StepData{
		MessageID: msgID,
		Step: transcript.ProcessedEvent{
			Title:   "Function response: " + script.function,
			Payload: transcript.FunctionResponsePayload{Name: script.function, Response: script.response},
		},
	}})

	if len(script.sources) > 0 {
		if !f.pause(ctx) {
			return
		}
		f.emit(ctx, Event{Type: EventStepRecorded, Data: StepData{
			MessageID: msgID,
			Step: transcript.ProcessedEvent{
				Title:   fmt.Sprintf("Sources (%d)", len(script.sources)),
				Payload: transcript.SourcePayload{Sources: script.sources},
			},
		}})
	}

	if !f.pause(ctx) {
		return
	}
	f.emit(ctx, Event{Type: EventResponseComplete, Data: ResponseData{
		Message: transcript.Message{
			ID:                       msgID,
			Role:                     transcript.RoleAI,
			Content:                  script.report,
			Agent:                    script.agentID,
			Timestamp:                time.Now(),
			FinalReportWithCitations: script.citations,
		},
	}})
}

// pause waits one step delay, reporting false once the turn is cancelled.
func (f *ScriptedFeed) pause(ctx context.Context) bool {
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

func (f *ScriptedFeed) emit(ctx context.Context, ev Event) {
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
func (f *ScriptedFeed) release(turn uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.turn == turn && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}
