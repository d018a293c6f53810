// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package roster

// Default returns the Nexus Command team registry: the orchestrator plus the
// ten specialists, with the backend identifiers each one answers to.
func Default() *Registry {
	profiles := []Profile{
		{
			ID:    "nexus",
			Name:  "Nexus",
			Badge: "🧭",
			Color: "#2DD4BF",
			Role:  "Orchestrator",
			Blurb: "Chief orchestrator. Routes every request to the right specialist and stitches their findings together.",
			Cues:  []string{"Give me a status overview", "What should I focus on today?"},
		},
		{
			ID:    "atlas",
			Name:  "Atlas",
			Badge: "📊",
			Color: "#3498DB",
			Role:  "AnalyticsAgent",
			Blurb: "Historical performance analytics: overtime %, hours mix, cost drivers, KPI trends.",
			Cues:  []string{"Show me a performance summary"},
		},
		{
			ID:    "maestro",
			Name:  "Maestro",
			Badge: "📅",
			Color: "#9B59B6",
			Role:  "CapacityPlanner",
			Blurb: "Workforce capacity planning, resource optimization, forecasting strategy.",
			Cues:  []string{"Any capacity gaps or optimization opportunities this week?"},
		},
		{
			ID:    "aegis",
			Name:  "Aegis",
			Badge: "✅",
			Color: "#2ECC71",
			Role:  "ComplianceAgent",
			Blurb: "Compliance posture: mandatory completions, certification gaps, risk exposure.",
			Cues:  []string{"Compliance KPI analysis?"},
		},
		{
			ID:    "scout",
			Name:  "Scout",
			Badge: "📈",
			Color: "#E67E22",
			Role:  "TrendIntelAgent",
			Blurb: "External signals: market interest, rising topics, seasonality, demand patterns.",
			Cues:  []string{"What trends should I watch?"},
		},
		{
			ID:    "sage",
			Name:  "Sage",
			Badge: "🔍",
			Color: "#1ABC9C",
			Role:  "ResearchAgent",
			Blurb: "Deep research, competitive intelligence, industry trends, foresight briefs.",
			Cues:  []string{"Research a topic for me"},
		},
		{
			ID:    "pulse",
			Name:  "Pulse",
			Badge: "💬",
			Color: "#E74C3C",
			Role:  "CommsAgent",
			Blurb: "Communications desk: email and chat interactions, backlog, closure rates, escalations.",
			Cues:  []string{"Summarize today's emails"},
		},
		{
			ID:    "lexi",
			Name:  "Lexi",
			Badge: "📚",
			Color: "#F39C12",
			Role:  "TeamSMEAgent",
			Blurb: "Policies, manuals, and reference documents, answered with citations.",
			Cues:  []string{"What does policy say about overtime?"},
		},
		{
			ID:    "quanta",
			Name:  "Quanta",
			Badge: "🗄️",
			Color: "#34495E",
			Role:  "DataWarehouseAgent",
			Blurb: "Direct warehouse queries: latest metrics on any KPI.",
			Cues:  []string{"Pull latest metrics on utilization"},
		},
		{
			ID:    "gears",
			Name:  "Gears",
			Badge: "⚙️",
			Color: "#95A5A6",
			Role:  "AutomationAgent",
			Blurb: "Workflow automation: scheduled tasks, multi-step flows, system integrations.",
			Cues:  []string{"Automate the weekly report for me"},
		},
		{
			ID:    "sentinel",
			Name:  "Sentinel",
			Badge: "🛡️",
			Color: "#C0392B",
			Role:  "MonitorAgent",
			Blurb: "Monitoring and alerts: anomalies, thresholds, SLA risk, watchlists.",
			Cues:  []string{"Any alerts I should know about?"},
		},
	}

	aliases := []Alias{
		{"nexus", "nexus"},
		{"Nexus", "nexus"},
		{"nexus_agent", "nexus"},
		{"nexus_root_orchestrator", "nexus"},
		{"root_agent", "nexus"},

		{"atlas", "atlas"},
		{"Atlas", "atlas"},
		{"atlas_agent", "atlas"},
		{"Atlas_agent", "atlas"},
		{"nbot_agent", "atlas"},
		{"analytics_agent", "atlas"},

		{"maestro", "maestro"},
		{"Maestro", "maestro"},
		{"maestro_agent", "maestro"},
		{"scheduling_agent", "maestro"},

		{"aegis", "aegis"},
		{"Aegis", "aegis"},
		{"aegis_agent", "aegis"},
		{"training_agent", "aegis"},
		{"compliance_agent", "aegis"},

		{"scout", "scout"},
		{"Scout", "scout"},
		{"scout_agent", "scout"},
		{"trends_agent", "scout"},

		{"sage", "sage"},
		{"Sage", "sage"},
		{"sage_agent", "sage"},
		{"research_agent", "sage"},
		{"deep_research_agent", "sage"},

		{"pulse", "pulse"},
		{"Pulse", "pulse"},
		{"pulse_agent", "pulse"},
		{"touch_points_agent", "pulse"},
		{"comms_agent", "pulse"},

		{"lexi", "lexi"},
		{"Lexi", "lexi"},
		{"lexi_agent", "lexi"},
		{"sme_agent", "lexi"},
		{"sme_rag_agent", "lexi"},

		{"quanta", "quanta"},
		{"Quanta", "quanta"},
		{"quanta_agent", "quanta"},
		{"bigquery_agent", "quanta"},
		{"warehouse_agent", "quanta"},

		{"gears", "gears"},
		{"Gears", "gears"},
		{"gears_agent", "gears"},
		{"automation_agent", "gears"},

		{"sentinel", "sentinel"},
		{"Sentinel", "sentinel"},
		{"sentinel_agent", "sentinel"},
		{"monitor_agent", "sentinel"},
	}

	return New(profiles, aliases)
}
