package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/folio/internal/common"
)

const testFixture = `
personal_bests:
  - event_date: "2024-09-29"
    event_location: Berlin
    distance: Marathon
    used_shoe: Adios Pro 3
    time: "3:05:12"
  - event_date: "2024-04-14"
    event_location: Vienna
    distance: 5k
    used_shoe: Takumi Sen
    time: "18:12"
training:
  - date: "2024-01-01"
    distance: 8.5
    moving_time: 45
  - date: "2024-01-02"
    distance: 0
  - date: "2024-01-03"
    distance: 12
    moving_time: 63
  - date: "2024-01-09"
    distance: 10
    moving_time: 50
`

func writeFixture(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)

	var got struct {
		Valid  bool           `json:"valid"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, 8, got.Counts["blog_posts"])

	bad := writeFixture(t, "training:\n  - date: \"2024-01-01\"\n    distance: -3\n")
	_, err = run(t, "validate", "--fixture", bad)
	require.Error(t, err)

	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "must not be negative", validationErr.Errors["Training[0].Distance"])

	_, err = run(t, "validate", "--fixture", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "could not open fixture")
}

func TestWeeklyCommand(t *testing.T) {
	out, err := run(t, "weekly", "--fixture", writeFixture(t, testFixture))
	require.NoError(t, err)

	var weeks []struct {
		Week          string  `json:"week"`
		TotalDistance float64 `json:"total_distance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &weeks))
	require.Len(t, weeks, 2)
	assert.Equal(t, "2023-12-31", weeks[0].Week)
	assert.Equal(t, 20.5, weeks[0].TotalDistance)
	assert.Equal(t, "2024-01-07", weeks[1].Week)
	assert.Equal(t, 10.0, weeks[1].TotalDistance)
}

func TestSummaryCommand(t *testing.T) {
	fixture := writeFixture(t, testFixture)

	out, err := run(t, "summary", "--fixture", fixture, "--timeframe", "7", "--ref", "2024-01-09")
	require.NoError(t, err)

	var got struct {
		Trainings         []json.RawMessage `json:"trainings"`
		WeeklyAverage     float64           `json:"weekly_average"`
		PrevWeeklyAverage float64           `json:"prev_weekly_average"`
		TotalDistance     float64           `json:"total_distance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Trainings, 2)
	assert.Equal(t, 22.0, got.TotalDistance)
	assert.Equal(t, 22.0, got.WeeklyAverage)
	assert.Equal(t, 8.5, got.PrevWeeklyAverage)

	_, err = run(t, "summary", "--fixture", fixture, "--timeframe", "soon")
	assert.Error(t, err)

	_, err = run(t, "summary", "--fixture", fixture, "--ref", "01.01.2024")
	assert.ErrorContains(t, err, "invalid date")
}

func TestPersonalBestsCommand(t *testing.T) {
	out, err := run(t, "pbs", "--fixture", writeFixture(t, testFixture))
	require.NoError(t, err)

	var pbs []struct {
		Distance string `json:"distance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &pbs))
	require.Len(t, pbs, 2)
	assert.Equal(t, "5k", pbs[0].Distance)
	assert.Equal(t, "Marathon", pbs[1].Distance)
}
