package compliance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchPublishedBenchmark(t *testing.T) {
	summary := Defaults()
	require.Len(t, summary.Standards, 3)
	assert.Equal(t, "CIS Kubernetes", summary.Standards[0].Name)
	assert.Equal(t, 85, summary.Standards[0].Score)
	assert.Equal(t, 112, summary.Standards[0].ControlsTotal)
	assert.InDelta(t, 84.3, summary.Overall, 0.001)
}

func TestLoadOverrideFile(t *testing.T) {
	doc := `standards:
  - name: CIS Kubernetes
    score: 92
    controls_passed: 103
    controls_total: 112
overall_compliance: 92.0
`
	path := filepath.Join(t.TempDir(), "standards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	summary, err := Load(path)
	require.NoError(t, err)
	require.Len(t, summary.Standards, 1)
	assert.Equal(t, 92, summary.Standards[0].Score)
	assert.InDelta(t, 92.0, summary.Overall, 0.001)
}

func TestLoadComputesOverallWhenOmitted(t *testing.T) {
	doc := `standards:
  - name: CIS Kubernetes
    score: 80
    controls_passed: 90
    controls_total: 100
  - name: OWASP API
    score: 90
    controls_passed: 9
    controls_total: 10
`
	path := filepath.Join(t.TempDir(), "standards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	summary, err := Load(path)
	require.NoError(t, err)
	// (80*100 + 90*10) / 110 = 80.9
	assert.InDelta(t, 80.9, summary.Overall, 0.001)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("standards: {"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
