package types

import "errors"

var (
	ErrNoRegionsConfigured   = errors.New("no scan regions configured. Set SCAN_REGIONS or pass --regions")
	ErrNotifierNotConfigured = errors.New("notifier credentials not configured")
	ErrUnsupportedReportType = errors.New("unsupported report type: use csv, json or pdf")
)
