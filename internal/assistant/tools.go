package assistant

var rangeProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"all", "last-7-days", "last-30-days", "this-month", "last-month"},
	"description": "Time range over ticket creation dates. Defaults to 'all'.",
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "get_dashboard_stats",
				"description": "Get the dashboard overview (total, open, closed, average resolution hours, average rating) for a time range.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"range": rangeProperty,
					},
				},
			},
			map[string]interface{}{
				"name":        "get_agent_metrics",
				"description": "Get the per-agent rollup (ticket counts, active tickets, average rating and resolution hours) for a time range, sorted by workload.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"range": rangeProperty,
					},
				},
			},
			map[string]interface{}{
				"name":        "get_trends",
				"description": "Compare a time range against its previous comparable period. Returns percentage-change trends with favorable/unfavorable polarity. The previous period of 'all' is empty.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"range": rangeProperty,
					},
				},
			},
			map[string]interface{}{
				"name":        "generate_insights",
				"description": "Generate a narrative insight for a time range using the configured language-model backend. Results are cached per range until the next data import.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"range": rangeProperty,
					},
				},
			},
			map[string]interface{}{
				"name":        "import_file",
				"description": "Import a spreadsheet export (.xlsx, .xlsm or .csv) of support tickets. Replaces the current ticket collection wholesale.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"path": map[string]interface{}{"type": "string", "description": "Path to the spreadsheet file"},
					},
					"required": []string{"path"},
				},
			},
			map[string]interface{}{
				"name":        "reset_data",
				"description": "Discard all imported tickets and the persisted copy on disk.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}
}
