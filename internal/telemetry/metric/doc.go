// Package metric provides Prometheus metrics for configuration loads.
//
// A Collector is registered as a cfg.Observer and records every Load:
//
//   - d3ck_cfg_loads_total{result="ok|error"}
//   - d3ck_cfg_files_loaded
//   - d3ck_cfg_keys
//   - d3ck_cfg_load_duration_seconds
//
// The tool is short-lived, so metrics are not served over HTTP. They are
// written once in text format for the node_exporter textfile collector.
package metric
