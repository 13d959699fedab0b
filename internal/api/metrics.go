package api

import (
	"sync/atomic"
	"time"
)

// Metrics tracks client request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsSent  atomic.Int64
	HTTPErrors    atomic.Int64
	NetworkErrors atomic.Int64
	InFlight      atomic.Int32
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequestsSent increments the requests sent counter
func (m *Metrics) IncRequestsSent() {
	m.RequestsSent.Add(1)
}

// IncHTTPErrors increments the non-2xx response counter
func (m *Metrics) IncHTTPErrors() {
	m.HTTPErrors.Add(1)
}

// IncNetworkErrors increments the transport failure counter
func (m *Metrics) IncNetworkErrors() {
	m.NetworkErrors.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsSent  int64     `json:"requests_sent"`
	HTTPErrors    int64     `json:"http_errors"`
	NetworkErrors int64     `json:"network_errors"`
	InFlight      int32     `json:"in_flight"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsSent:  m.RequestsSent.Load(),
		HTTPErrors:    m.HTTPErrors.Load(),
		NetworkErrors: m.NetworkErrors.Load(),
		InFlight:      m.InFlight.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).Round(time.Millisecond).String(),
	}
}
