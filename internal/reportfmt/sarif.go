package reportfmt

import (
	"encoding/json"
	"io"

	"faultline/internal/report"
)

// SARIF v2.1.0 structures, limited to the fields this tool emits.

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string        `json:"id"`
	ShortDescription *sarifMessage `json:"shortDescription,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

const sarifSchemaURI = "https://json.schemastore.org/sarif-2.1.0.json"

// Sarif writes reports as a SARIF v2.1.0 log. Each distinct error type
// becomes a rule; each report becomes one result at level error.
func Sarif(w io.Writer, reports []*report.Report, meta SarifRunMeta) error {
	seen := make(map[string]bool)
	var rules []sarifRule
	results := make([]sarifResult, 0, len(reports))

	for _, r := range reports {
		ruleID := string(r.Analysis.ErrorType)
		if !seen[ruleID] {
			seen[ruleID] = true
			rule := sarifRule{ID: ruleID}
			if r.Description != "" {
				rule.ShortDescription = &sarifMessage{Text: r.Description}
			}
			rules = append(rules, rule)
		}

		result := sarifResult{
			RuleID:  ruleID,
			Level:   "error",
			Message: sarifMessage{Text: r.Analysis.RootCause},
		}
		if r.Path != "" {
			loc := sarifLocation{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: r.Path},
				},
			}
			if r.Analysis.LineNumber > 0 {
				loc.PhysicalLocation.Region = &sarifRegion{StartLine: r.Analysis.LineNumber}
			}
			result.Locations = []sarifLocation{loc}
		}
		results = append(results, result)
	}

	name := meta.ToolName
	if name == "" {
		name = "faultline"
	}
	log := sarifLog{
		Version: "2.1.0",
		Schema:  sarifSchemaURI,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    name,
				Version: meta.ToolVersion,
				Rules:   rules,
			}},
			Results: results,
		}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}
