package assessment

import (
	"fmt"
	"os/exec"
)

// DefaultScript is the shell script that performs the actual security
// assessment and writes security-assessment-report.json as a side effect.
const DefaultScript = "./hack/security-assessment.sh"

// RunScript invokes the assessment script synchronously and returns its
// combined output. The output is captured for logging only; the script's
// JSON side-effect file is what gets consumed. Callers treat a failure as a
// degraded run, not a fatal one.
func RunScript(script string) ([]byte, error) {
	cmd := exec.Command(script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("run %s: %w", script, err)
	}
	return out, nil
}
