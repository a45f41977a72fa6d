package harness

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_FailingCheckAlwaysPrinted(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, false, false)

	rep.Result(Result{
		Name:     "person/overwrite",
		Failures: []string{"employer: mismatch"},
		Duration: 2 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "FAIL person/overwrite")
	assert.Contains(t, out, "    employer: mismatch")
}

func TestReporter_PassingCheckOnlyInVerbose(t *testing.T) {
	res := Result{Name: "greeting/match"}

	var quiet bytes.Buffer
	NewReporter(&quiet, false, false).Result(res)
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	NewReporter(&verbose, false, true).Result(res)
	assert.Contains(t, verbose.String(), "PASS greeting/match")
}

func TestReporter_SummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, false, false)

	rep.Summary(Summary{
		RunID:    uuid.New(),
		Results:  []Result{{Name: "a"}, {Name: "b"}},
		Duration: 5 * time.Millisecond,
	})

	assert.Contains(t, buf.String(), "PASS: 2 check(s)")
}

func TestReporter_SummaryWithFailures(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, false, false)

	rep.Summary(Summary{
		RunID: uuid.New(),
		Results: []Result{
			{Name: "a"},
			{Name: "b", Failures: []string{"nope"}},
		},
	})

	assert.Contains(t, buf.String(), "FAIL: 1 of 2 check(s) failed")
}

func TestRunner_WithReporterEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	checks := []Check{
		{Name: "passes", Fn: func(*T) {}},
		{Name: "fails", Fn: func(ct *T) { ct.Errorf("bad") }},
	}

	summary, err := NewRunner(checks, WithReporter(NewReporter(&buf, false, true))).Run("")
	require.NoError(t, err)

	assert.False(t, summary.Passed())
	out := buf.String()
	assert.Contains(t, out, "PASS passes")
	assert.Contains(t, out, "FAIL fails")
	assert.Contains(t, out, "FAIL: 1 of 2 check(s) failed")
}
