package types

import (
	"sort"
	"time"
)

// LinkSpec is one source -> target pair handed over by the orchestrator.
type LinkSpec struct {
	Source string
	Target string
}

// LinkSet maps source paths to target paths.
type LinkSet map[string]string

// Specs returns the set as LinkSpecs sorted by source path.
func (s LinkSet) Specs() []LinkSpec {
	specs := make([]LinkSpec, 0, len(s))
	for source, target := range s {
		specs = append(specs, LinkSpec{Source: source, Target: target})
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Source < specs[j].Source
	})
	return specs
}

// Targets returns the target paths of the set in the same order as Specs.
// The result is suitable as a RemovalSet undoing the set.
func (s LinkSet) Targets() RemovalSet {
	specs := s.Specs()
	targets := make(RemovalSet, len(specs))
	for i, spec := range specs {
		targets[i] = spec.Target
	}
	return targets
}

// RemovalSet is an ordered list of targets to remove.
type RemovalSet []string

// Strategy describes how a target was materialized.
type Strategy string

const (
	StrategySymlink Strategy = "symlink"
	StrategyCopy    Strategy = "copy"
)

// LinkRecord is the persisted outcome of one establishment.
type LinkRecord struct {
	Source   string    `toml:"source" json:"source"`
	Target   string    `toml:"target" json:"target"`
	Strategy Strategy  `toml:"strategy" json:"strategy"`
	Created  time.Time `toml:"created" json:"created"`
}

// RootPaths are the two well-known directories packages are provisioned into.
type RootPaths struct {
	ExtensionDir       string `json:"extension_dir"`
	SystemExtensionDir string `json:"system_extension_dir"`
}
