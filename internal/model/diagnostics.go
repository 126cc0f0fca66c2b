package model

// DiagnosticsReport describes backend and storage connectivity for the
// diagnostics endpoint. The status strings, emoji prefixes included, are what
// operators see when checking a deployment, so they are part of the contract.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
