// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// collector records every event and signals once the turn resolves.
type collector struct {
	mu     sync.Mutex
	events []Event
	done   chan struct{}
	once   sync.Once
}

func newCollector() *collector {
	return &collector{done: make(chan struct{})}
}

func (c *collector) OnEvent(ev Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
	if ev.Type == EventResponseComplete || ev.Type == EventError {
		c.once.Do(func() { close(c.done) })
	}
}

func (c *collector) wait(t *testing.T) []Event {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("turn did not resolve in time")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestRouteScript(t *testing.T) {
	tests := []struct {
		prompt string
		agent  string
	}{
		{"Show me this week's performance summary", "atlas"},
		{"any overtime concerns?", "atlas"},
		{"Do we have capacity gaps next week?", "maestro"},
		{"optimize the holiday schedule", "maestro"},
		{"where do we stand on compliance training", "aegis"},
		{"what market trends should I watch", "scout"},
		{"research competitor staffing models", "sage"},
		{"summarize my inbox", "pulse"},
		{"what does the overtime policy say", "lexi"},
		{"pull the latest utilization metric", "quanta"},
		{"automate the monday rollup", "gears"},
		{"any open alerts?", "sentinel"},
		{"hello there", "nexus"},
		{"", "nexus"},
	}
	for _, tt := range tests {
		if got := routeScript(tt.prompt); got.agentID != tt.agent {
			t.Errorf("routeScript(%q) = %s, want %s", tt.prompt, got.agentID, tt.agent)
		}
	}
}

func TestScriptedTurnSequence(t *testing.T) {
	f := NewScripted(WithDelay(0))
	c := newCollector()
	f.SetListener(c)

	if err := f.Submit(context.Background(), "weekly performance summary"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	events := c.wait(t)

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	wantTypes := []EventType{EventThinkingStarted, EventStepRecorded, EventStepRecorded, EventResponseComplete}
	for i, want := range wantTypes {
		if events[i].Type != want {
			t.Fatalf("event %d type = %v, want %v", i, events[i].Type, want)
		}
	}

	think := events[0].Data.(ThinkingData)
	if think.AgentID != "atlas" {
		t.Errorf("thinking agent = %s, want atlas", think.AgentID)
	}

	call := events[1].Data.(StepData)
	if call.MessageID != think.MessageID {
		t.Errorf("step message id %s does not match thinking id %s", call.MessageID, think.MessageID)
	}
	if call.Step.Payload.Kind() != transcript.KindFunctionCall {
		t.Errorf("first step kind = %v, want function call", call.Step.Payload.Kind())
	}
	if events[2].Data.(StepData).Step.Payload.Kind() != transcript.KindFunctionResponse {
		t.Error("second step should be the function response")
	}

	resp := events[3].Data.(ResponseData)
	if resp.Message.ID != think.MessageID {
		t.Error("response message id does not match the turn id")
	}
	if resp.Message.Role != transcript.RoleAI {
		t.Errorf("response role = %v, want ai", resp.Message.Role)
	}
	if resp.Message.Agent != "atlas" {
		t.Errorf("response agent = %s, want atlas", resp.Message.Agent)
	}
	if resp.Message.Content == "" {
		t.Error("response content is empty")
	}
}

func TestScriptedResearchCarriesSources(t *testing.T) {
	f := NewScripted(WithDelay(0))
	c := newCollector()
	f.SetListener(c)

	if err := f.Submit(context.Background(), "research peer staffing models"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	events := c.wait(t)

	var sources *transcript.SourcePayload
	for _, ev := range events {
		step, ok := ev.Data.(StepData)
		if !ok {
			continue
		}
		if p, ok := step.Step.Payload.(transcript.SourcePayload); ok {
			sources = &p
		}
	}
	if sources == nil {
		t.Fatal("research turn emitted no source list step")
	}
	if len(sources.Sources) == 0 {
		t.Fatal("source list step is empty")
	}
	for _, s := range sources.Sources {
		if s.Label == "" || s.URL == "" {
			t.Errorf("source missing label or url: %+v", s)
		}
	}

	final := events[len(events)-1].Data.(ResponseData)
	if !final.Message.FinalReportWithCitations {
		t.Error("research report should be flagged as citation-bearing")
	}
}

func TestScriptedSubmitWhileBusy(t *testing.T) {
	f := NewScripted(WithDelay(100 * time.Millisecond))
	f.SetListener(newCollector())

	if err := f.Submit(context.Background(), "performance"); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if err := f.Submit(context.Background(), "capacity"); err == nil {
		t.Error("second Submit during an in-flight turn should fail")
	}
	f.Cancel()
}

func TestScriptedCancelSuppressesResponse(t *testing.T) {
	f := NewScripted(WithDelay(50 * time.Millisecond))
	c := newCollector()
	f.SetListener(c)

	if err := f.Submit(context.Background(), "performance"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	f.Cancel()
	time.Sleep(250 * time.Millisecond)

	for _, ev := range c.snapshot() {
		if ev.Type == EventResponseComplete {
			t.Fatal("cancelled turn still delivered a response")
		}
	}

	// The slot frees up for the next turn.
	c2 := newCollector()
	f.SetListener(c2)
	if err := f.Submit(context.Background(), "any open alerts?"); err != nil {
		t.Fatalf("Submit after cancel: %v", err)
	}
	events := c2.wait(t)
	final := events[len(events)-1].Data.(ResponseData)
	if final.Message.Agent != "sentinel" {
		t.Errorf("post-cancel turn agent = %s, want sentinel", final.Message.Agent)
	}
}

// submitEventually retries while the previous turn's goroutine is still
// releasing its slot.
func submitEventually(t *testing.T, f Feed, prompt string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		err := f.Submit(context.Background(), prompt)
		if err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Submit: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestScriptedMessageIDsAreUnique(t *testing.T) {
	f := NewScripted(WithDelay(0))
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		c := newCollector()
		f.SetListener(c)
		submitEventually(t, f, "performance")
		events := c.wait(t)
		id := events[len(events)-1].Data.(ResponseData).Message.ID
		if id == "" {
			t.Fatal("empty message id")
		}
		if seen[id] {
			t.Fatalf("message id %s repeated", id)
		}
		seen[id] = true
	}
}
