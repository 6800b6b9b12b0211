package sim

import (
	"hash/fnv"
	"math/rand"
)

// WorkloadStream draws the single process set shared by every policy under
// --same-workload. It is seeded with the seed itself, so the seed alone
// reproduces that set.
const WorkloadStream = "workload"

// PolicyStream names the stream that draws the fresh process set handed to
// one policy.
func PolicyStream(policy string) string {
	return "policy_" + policy
}

// SeedStreams hands out one *rand.Rand per named stream, all derived from a
// single seed. A policy's fresh set depends only on the seed and the policy
// name, never on which other policies ran or in what order.
//
// Not safe for concurrent use.
type SeedStreams struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewSeedStreams returns the streams for seed.
func NewSeedStreams(seed int64) *SeedStreams {
	return &SeedStreams{seed: seed, streams: make(map[string]*rand.Rand)}
}

// Stream returns the generator for name, creating it on first use. Repeated
// calls return the same instance, so draws continue where they left off.
func (s *SeedStreams) Stream(name string) *rand.Rand {
	if rng, ok := s.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(streamSeed(s.seed, name)))
	s.streams[name] = rng
	return rng
}

// streamSeed is seed for WorkloadStream and seed XOR FNV-1a(name) otherwise.
func streamSeed(seed int64, name string) int64 {
	if name == WorkloadStream {
		return seed
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
