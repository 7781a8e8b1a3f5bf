package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

func TestWriteFileCreatesDirectoryAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", MaturityHTMLFile)
	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileReportsDirectoryCreationFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFile(filepath.Join(blocker, "sub", MaturityHTMLFile), []byte("report"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output dir")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), SecurityMetricsFile)
	want := schema.SecurityMetrics{
		Timestamp:       "2026-02-18T10:30:00Z",
		SecurityScore:   72,
		ComplianceScore: 84.3,
		Vulnerabilities: schema.VulnerabilitySummary{High: 2, Low: 5},
	}
	require.NoError(t, WriteJSON(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got schema.SecurityMetrics
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}
