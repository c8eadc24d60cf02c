package tool

import (
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// ProbeResult summarizes a reachability probe.
type ProbeResult struct {
	Host        string
	Addr        string
	PacketsSent int
	PacketsRecv int
	PacketLoss  float64
	AvgRtt      time.Duration
}

// Reachable reports whether at least one reply came back.
func (r ProbeResult) Reachable() bool {
	return r.PacketsRecv > 0
}

// ProbeHost pings host count times using unprivileged UDP pings.
func ProbeHost(host string, count int, timeout time.Duration) (ProbeResult, error) {
	if count <= 0 {
		count = 3
	}
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("failed to create pinger for %s: %w", host, err)
	}
	pinger.Count = count
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		return ProbeResult{}, fmt.Errorf("ping %s failed: %w", host, err)
	}
	stats := pinger.Statistics()
	return ProbeResult{
		Host:        host,
		Addr:        stats.Addr,
		PacketsSent: stats.PacketsSent,
		PacketsRecv: stats.PacketsRecv,
		PacketLoss:  stats.PacketLoss,
		AvgRtt:      stats.AvgRtt,
	}, nil
}
