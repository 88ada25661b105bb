package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Node describes the running server instance.
type Node struct {
	ID         string    `json:"id"`
	Hostname   string    `json:"hostname"`
	Version    string    `json:"version"`
	CommitHash string    `json:"commit_hash"`
	StartedAt  time.Time `json:"started_at"`
}

// Set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     *Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "localhost"
		}
		current = &Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			Version:    Version,
			CommitHash: CommitHash,
			StartedAt:  time.Now().UTC(),
		}
	})

	return current
}

func (n *Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}
