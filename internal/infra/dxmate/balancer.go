package infra_dxmate

import (
	"strings"
	"sync/atomic"
)

// RRBalancer spreads requests over the configured API replicas.
type RRBalancer struct {
	servers []string
	cur     atomic.Uint64
}

func NewBalancer(serversList string) *RRBalancer {
	servers := make([]string, 0)
	for _, s := range strings.Split(serversList, ";") {
		if trimmed := strings.TrimSuffix(strings.TrimSpace(s), "/"); trimmed != "" {
			servers = append(servers, trimmed)
		}
	}
	return &RRBalancer{servers: servers}
}

func (b *RRBalancer) NextServer() string {
	if len(b.servers) == 0 {
		return ""
	}
	n := b.cur.Add(1)
	return b.servers[(n-1)%uint64(len(b.servers))]
}
