package count

import "time"

// Report summarizes the result of a single measurement run.
type Report struct {
	Summary ReportSummary `json:"summary" yaml:"summary"`
	Results []FileResult  `json:"results" yaml:"results"`
}

// ReportSummary contains aggregated statistics for a run.
type ReportSummary struct {
	Command         string    `json:"command" yaml:"command"`
	Mode            string    `json:"mode" yaml:"mode"`
	TargetPath      string    `json:"targetPath" yaml:"targetPath"`
	ConfigFilePath  string    `json:"configFilePath,omitempty" yaml:"configFilePath,omitempty"`
	FilesMeasured   int       `json:"filesMeasured" yaml:"filesMeasured"`
	TotalCount      uint64    `json:"totalCount" yaml:"totalCount"`
	DurationSeconds float64   `json:"durationSeconds" yaml:"durationSeconds"`
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
	SchemaVersion   string    `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
}

// FileResult is the measured count for a single input. In merged mode
// there is exactly one result and Filename names the manifest, since no
// per-file boundary survives the merge.
type FileResult struct {
	Filename string `json:"filename" yaml:"filename"`
	Count    uint64 `json:"count" yaml:"count"`
}
