// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package feed

import (
	"strings"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// turnScript is one canned agent turn: the tool activity the timeline shows
// and the report the chat receives.
type turnScript struct {
	agentID   string
	cues      []string
	function  string
	args      map[string]any
	response  map[string]any
	sources   []transcript.Source
	report    string
	citations bool
}

// routeScript picks the script whose cue keywords appear in the prompt.
// First match wins; no match lands on the orchestrator overview.
func routeScript(prompt string) turnScript {
	lower := strings.ToLower(prompt)
	for _, s := range scripts {
		for _, cue := range s.cues {
			if strings.Contains(lower, cue) {
				return s
			}
		}
	}
	return nexusScript
}

var nexusScript = turnScript{
	agentID:  "nexus",
	function: "route_request",
	args:     map[string]any{"strategy": "overview"},
	response: map[string]any{"agents_synced": 10, "status": "ready"},
	report: `# Nexus Command Status

All specialist agents are synced and ready. 🟢

## Quick starts
- 📊 "Show me a performance summary" routes to **Atlas**
- 📅 "Any capacity gaps this week?" routes to **Maestro**
- 🔍 "Research a topic for me" routes to **Sage**
- 🛡️ "Any alerts I should know about?" routes to **Sentinel**

Tell me what you need and I will bring in the right specialist.`,
}

var scripts = []turnScript{
	// lexi routes first: policy questions usually name a topic that
	// another agent also claims ("what does the overtime policy say").
	{
		agentID:  "lexi",
		cues:     []string{"policy", "manual", "reference", "what does", "procedure"},
		function: "search_knowledge_base",
		args:     map[string]any{"collection": "policies"},
		response: map[string]any{"matches": 3},
		sources: []transcript.Source{
			{Label: "Overtime policy v6, section 4.2", URL: "https://example.com/policies/overtime"},
		},
		report: `# Policy Answer

Per overtime policy v6 section 4.2, premium hours require supervisor approval **before** the shift is worked, except for emergency coverage, which is reviewed within 48 hours ([Overtime policy v6, section 4.2](https://example.com/policies/overtime)).`,
		citations: true,
	},
	{
		agentID:  "atlas",
		cues:     []string{"performance", "overtime", "kpi", "summary", "analytics", "hours"},
		function: "query_nbot",
		args:     map[string]any{"region": "central", "window": "trailing_4_weeks"},
		response: map[string]any{"rows": 412, "ot_pct": 4.2, "status": "GREEN"},
		report: `# Weekly Performance Summary

Overall portfolio overtime is **4.2%** 🟢, down from 5.1% the prior week.

| Site | OT % | Status |
|------|------|--------|
| Central | 3.1% | 🟢 |
| North | 4.8% | 🟡 |
| Harbor | 7.9% | 🔴 |

## Drivers
- Harbor absorbed two unplanned absences; backfill coverage ran on premium hours.
- North trend is stable but sits within 0.4 points of its threshold.

## Recommended follow-up
1. Ask Maestro to simulate a Harbor coverage plan.
2. Have Sentinel watch the North threshold for the next two weeks.`,
	},
	{
		agentID:  "maestro",
		cues:     []string{"capacity", "schedule", "optimiz", "forecast", "coverage", "plan"},
		function: "simulate_capacity",
		args:     map[string]any{"horizon_weeks": 2, "objective": "minimize_premium_hours"},
		response: map[string]any{"scenarios": 3, "best_delta_pct": -1.8},
		report: `# Capacity Outlook

Two-week simulation across three scenarios. Best case trims premium hours by **1.8 points**. 🟢

- Shift two float resources from Central to Harbor on Tue/Wed peaks.
- Hold North unchanged; its variance is seasonal.
- Pre-approve one weekend rotation to absorb the parade-week surge.

Scenario detail is ready if you want the full plan.`,
	},
	{
		agentID:  "aegis",
		cues:     []string{"compliance", "training", "certification", "mandatory", "audit"},
		function: "compliance_scan",
		args:     map[string]any{"scope": "all_sites"},
		response: map[string]any{"complete_pct": 93.4, "expiring_30d": 12},
		report: `# Compliance Posture

Mandatory completion sits at **93.4%** 🟡 against the 95% target.

- 12 certifications expire within 30 days ⚠️
- Harbor carries 7 of the 12; schedule refreshers before the audit window.
- No open critical findings. 🟢`,
	},
	{
		agentID:  "scout",
		cues:     []string{"trend", "market", "seasonal", "demand", "interest"},
		function: "pull_trend_signals",
		args:     map[string]any{"window": "90d"},
		response: map[string]any{"rising_topics": 4},
		report: `# External Signal Watch

Rising interest over the last 90 days:

1. Same-day fulfillment queries up 22%.
2. Regional hiring searches cooling after the spring spike.
3. Weather-driven demand variance expected to widen in September.

Seasonality suggests locking October schedules two weeks earlier than usual.`,
	},
	{
		agentID:  "sage",
		cues:     []string{"research", "investigate", "deep dive", "competitive", "look into", "tell me about"},
		function: "deep_research",
		args:     map[string]any{"depth": "brief", "max_sources": 5},
		response: map[string]any{"sources_reviewed": 5, "confidence": "medium-high"},
		sources: []transcript.Source{
			{Label: "Industry quarterly review", URL: "https://example.com/industry-q3"},
			{Label: "Workforce analytics benchmark", URL: "https://example.com/benchmark"},
			{Label: "Regional labor bulletin", URL: "https://example.com/labor-bulletin"},
		},
		report: `# Research Brief

## Key findings
- Peer operators are consolidating scheduling tools; the median stack dropped from 4 systems to 2 ([Industry quarterly review](https://example.com/industry-q3)).
- Benchmarked overtime for comparable portfolios centers on 4.5% ([Workforce analytics benchmark](https://example.com/benchmark)).
- Regional labor supply loosened slightly quarter over quarter ([Regional labor bulletin](https://example.com/labor-bulletin)).

## Implication
Your 4.2% overtime is already below benchmark; further cuts likely trade against coverage risk.`,
		citations: true,
	},
	{
		agentID:  "pulse",
		cues:     []string{"email", "inbox", "message", "agenda", "comms", "escalation"},
		function: "summarize_interactions",
		args:     map[string]any{"channel": "email", "window": "today"},
		response: map[string]any{"open": 14, "escalations": 2},
		report: `# Communications Digest

- 14 open threads, 2 escalations ⚠️
- Oldest escalation is 26 hours: vendor invoice dispute, owner unassigned.
- Today's agenda: capacity review at 14:00, compliance sync at 15:30.

Want me to draft a reply for the invoice thread?`,
	},
	{
		agentID:  "quanta",
		cues:     []string{"metric", "warehouse", "pull", "query", "latest"},
		function: "run_warehouse_query",
		args:     map[string]any{"dataset": "kpi_daily"},
		response: map[string]any{"rows": 28, "freshness": "02:10 UTC"},
		report: `# Latest Metrics

Fresh as of 02:10 UTC:

- Utilization: 87.3% 🟢
- Fill rate: 96.1% 🟢
- Premium-hour share: 4.2% 🟡

Ask Atlas for the trend view behind any of these.`,
	},
	{
		agentID:  "gears",
		cues:     []string{"automate", "automation", "workflow", "job", "recurring"},
		function: "register_workflow",
		args:     map[string]any{"trigger": "weekly", "day": "monday"},
		response: map[string]any{"workflow_id": "wf-1042", "state": "armed"},
		report: `# Automation Armed

Workflow **wf-1042** is registered: every Monday 06:00 it compiles the weekly performance summary and posts it to the leadership channel. 🟢

- Inputs: Atlas weekly rollup, Sentinel open alerts.
- Failure policy: retry twice, then page the on-call coordinator.`,
	},
	{
		agentID:  "sentinel",
		cues:     []string{"alert", "anomal", "monitor", "threshold", "watchlist"},
		function: "check_watchlists",
		args:     map[string]any{"severity_min": "warning"},
		response: map[string]any{"open_alerts": 2},
		report: `# Active Alerts

- 🔴 Harbor overtime breached 7.5% threshold 3 days running.
- 🟡 North trending within 0.4 points of threshold.
- 🟢 All other watchlists quiet.

Harbor alert auto-escalates tomorrow unless acknowledged.`,
	},
}
