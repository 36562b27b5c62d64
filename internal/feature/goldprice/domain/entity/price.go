// Package entity defines the domain models for the goldprice feature.
package entity

// HistoryQuery holds the optional history lookup parameters.
// Values are passed to the upstream verbatim; empty means "not supplied".
type HistoryQuery struct {
	Symbol         string
	StartTimestamp string
	EndTimestamp   string
	GroupBy        string
	Aggregation    string
	OrderBy        string
}

// UpstreamResponse is an upstream price API reply, relayed to the caller without inspection.
type UpstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
