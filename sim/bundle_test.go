package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPolicyBundle_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
policies: [srtf, round-robin, multilevel-queue]
round_robin:
  quantum: 3
multilevel_queue:
  priority_threshold: 1
  quantum: 6
`)
	bundle, err := LoadPolicyBundle(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"srtf", "round-robin", "multilevel-queue"}, bundle.Names())
	assert.Equal(t, int64(3), bundle.RoundRobin.Quantum)
	assert.Equal(t, MultilevelConfig{PriorityThreshold: 1, Quantum: 6}, bundle.Multilevel)
	assert.NoError(t, bundle.Validate())
}

func TestLoadPolicyBundle_PartialFile_KeepsComparisonDefaults(t *testing.T) {
	path := writeTempYAML(t, "policies: [round-robin]\n")

	bundle, err := LoadPolicyBundle(path)
	require.NoError(t, err)

	assert.Equal(t, []string{PolicyRoundRobin}, bundle.Names())
	assert.Equal(t, ComparisonPolicyConfig(), bundle.PolicyConfig)
}

func TestLoadPolicyBundle_UnknownKey_Rejected(t *testing.T) {
	path := writeTempYAML(t, "round_robin:\n  quantam: 3\n")

	_, err := LoadPolicyBundle(path)

	assert.Error(t, err)
}

func TestLoadPolicyBundle_MissingFile(t *testing.T) {
	_, err := LoadPolicyBundle(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPolicyBundle_EmptyListMeansAllPolicies(t *testing.T) {
	var b PolicyBundle
	assert.Equal(t, DefaultComparison, b.Names())
	assert.NoError(t, b.Validate())
}

func TestPolicyBundle_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		bundle PolicyBundle
	}{
		{"unknown policy", PolicyBundle{Policies: []string{"fcfs", "lottery"}}},
		{"duplicate policy", PolicyBundle{Policies: []string{"sjf", "sjf"}}},
		{"negative quantum", PolicyBundle{PolicyConfig: PolicyConfig{RoundRobin: RoundRobinConfig{Quantum: -1}}}},
		{"negative multilevel quantum", PolicyBundle{PolicyConfig: PolicyConfig{Multilevel: MultilevelConfig{Quantum: -2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.bundle.Validate())
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "SJF Preemptive", DisplayName(PolicySRTF))
	assert.Equal(t, "Multilevel Queue", DisplayName(PolicyMultilevelQueue))
	assert.Equal(t, "custom", DisplayName("custom"))
	for _, name := range DefaultComparison {
		assert.True(t, IsValidPolicy(name), name)
		assert.NotEqual(t, name, DisplayName(name), "missing display name for %s", name)
	}
}
