package binding

import (
	"log/slog"
	"sync"

	"binding-generator/environment"
)

// ApplicationArtifacts is a settled application together with the resolved
// names of its artifacts for one environment.
type ApplicationArtifacts struct {
	Application      *Application
	Environment      environment.Environment
	Name             string
	ReceivePorts     []string
	ReceiveLocations []string
	SendPorts        []string
	Orchestrations   []string
}

type artifactKey struct {
	env environment.Environment
	app string
}

// ArtifactCache memoizes settled applications per environment and
// application key. Entries are never evicted: the number of environments is
// small and fixed.
type ArtifactCache struct {
	mu      sync.Mutex
	entries map[artifactKey]*ApplicationArtifacts
	log     *slog.Logger
}

// NewArtifactCache returns an empty cache.
func NewArtifactCache(log *slog.Logger) *ArtifactCache {
	if log == nil {
		log = slog.Default()
	}

	return &ArtifactCache{
		entries: make(map[artifactKey]*ApplicationArtifacts),
		log:     log,
	}
}

// Lookup returns the artifacts of the application built by factory for
// d.Environment, building and settling it on first request. Settling runs
// the full preprocessing pipeline, so overrides and validation apply.
// Concurrent first requests may build twice; the first stored entry wins.
func (c *ArtifactCache) Lookup(d environment.Deployment, key string, factory ApplicationFactory) (*ApplicationArtifacts, error) {
	k := artifactKey{env: d.Environment, app: key}

	c.mu.Lock()
	cached, ok := c.entries[k]
	c.mu.Unlock()

	if ok {
		return cached, nil
	}

	artifacts, err := settle(d, factory(), c.log)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.entries[k]; ok {
		return cached, nil
	}

	c.entries[k] = artifacts
	c.log.Debug("application settled",
		slog.String("application", artifacts.Name),
		slog.String("environment", d.Environment.String()))

	return artifacts, nil
}

// Len returns the number of cached entries.
func (c *ArtifactCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func settle(d environment.Deployment, app *Application, log *slog.Logger) (*ApplicationArtifacts, error) {
	artifacts := &ApplicationArtifacts{Application: app, Environment: d.Environment}

	collector := &VisitorFuncs{
		Application: func(a *Application) (err error) {
			artifacts.Name, err = a.ResolveName()
			return err
		},
		ReceivePort: func(p *ReceivePort) error {
			return appendName(&artifacts.ReceivePorts, p)
		},
		ReceiveLocation: func(l *ReceiveLocation) error {
			return appendName(&artifacts.ReceiveLocations, l)
		},
		SendPort: func(p *SendPort) error {
			return appendName(&artifacts.SendPorts, p)
		},
		Orchestration: func(o *Orchestration) error {
			return appendName(&artifacts.Orchestrations, o)
		},
	}

	if err := NewVisitorPipeline(app, d, WithLogger(log)).Accept(collector); err != nil {
		return nil, err
	}

	return artifacts, nil
}

func appendName(names *[]string, n Node) error {
	name, err := n.ResolveName()
	if err != nil {
		return err
	}

	*names = append(*names, name)

	return nil
}
