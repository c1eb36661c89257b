package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medical-tracker/internal/delivery/cli"
	"medical-tracker/internal/infrastructure/storage"
	"medical-tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func newTestRouter(t *testing.T) *cli.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	router, err := Wire(context.Background(), storage.NewMemoryStorage(), repository.DefaultKeyPrefix, log)
	require.NoError(t, err)
	return router
}

func run(t *testing.T, router *cli.Router, stdin string, args ...string) (envelope, error) {
	t.Helper()

	var out bytes.Buffer
	root := router.Setup()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	var env envelope
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &env), out.String())
	}
	return env, err
}

func mustRun(t *testing.T, router *cli.Router, args ...string) envelope {
	t.Helper()
	env, err := run(t, router, "", args...)
	require.NoError(t, err)
	require.True(t, env.Success, "%s: %s", strings.Join(args, " "), env.Message)
	return env
}

func dataID(t *testing.T, env envelope) string {
	t.Helper()
	var record struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	require.NotEmpty(t, record.ID)
	return record.ID
}

func TestCLI_RequiresLogin(t *testing.T) {
	router := newTestRouter(t)

	env, err := run(t, router, "", "appointments", "list")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.False(t, env.Success)
	assert.Equal(t, "Not logged in", env.Message)

	env, err = run(t, router, "", "whoami")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Not logged in", env.Message)
}

func TestCLI_AccountFlow(t *testing.T) {
	router := newTestRouter(t)

	env := mustRun(t, router, "register", "--username", "alice", "--password", "secret",
		"--email", "alice@example.com", "--first-name", "Alice", "--last-name", "Liddell")
	assert.Equal(t, "Registration successful", env.Message)

	env, err := run(t, router, "", "register", "--username", "alice", "--password", "other")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Username already exists", env.Message)

	env = mustRun(t, router, "whoami")
	var user struct {
		Username string `json:"username"`
		FullName string `json:"fullName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Liddell", user.FullName)

	mustRun(t, router, "profile", "update", "--last-name", "Hargreaves")
	env = mustRun(t, router, "whoami")
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Alice Hargreaves", user.FullName)

	env, err = run(t, router, "", "password", "change", "--current", "wrong", "--new", "next")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Current password is incorrect", env.Message)
	mustRun(t, router, "password", "change", "--current", "secret", "--new", "next")

	mustRun(t, router, "logout")
	env, err = run(t, router, "", "login", "--username", "alice", "--password", "secret")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Invalid username or password", env.Message)
	mustRun(t, router, "login", "--username", "alice", "--password", "next")
}

func TestCLI_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "bob", "--password", "pw")

	env, err := run(t, router, "", "appointments", "add", "--date", "2099-01-01T10:00")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Validation failed", env.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	assert.Equal(t, "title is required", fields["title"])

	env, err = run(t, router, "", "medications", "add", "--name", "Ibuprofen", "--status", "paused")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	assert.Equal(t, "status must be one of: active, inactive", fields["status"])
}

func TestCLI_RecordLifecycle(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "carol", "--password", "pw")

	doctorID := dataID(t, mustRun(t, router, "doctors", "add", "--name", "Dr. House", "--specialty", "Diagnostics"))

	env := mustRun(t, router, "appointments", "add", "--title", "Checkup", "--doctor", doctorID,
		"--date", "2099-03-01T09:30", "--reminder")
	appointmentID := dataID(t, env)
	var appointment struct {
		DoctorName string `json:"doctorName"`
		Status     string `json:"status"`
		Reminder   bool   `json:"reminder"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &appointment))
	assert.Equal(t, "Dr. House", appointment.DoctorName)
	assert.Equal(t, "scheduled", appointment.Status)
	assert.True(t, appointment.Reminder)

	env = mustRun(t, router, "appointments", "upcoming")
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	env = mustRun(t, router, "appointments", "update", appointmentID, "--status", "completed")
	require.NoError(t, json.Unmarshal(env.Data, &appointment))
	assert.Equal(t, "completed", appointment.Status)
	assert.True(t, appointment.Reminder, "unset flags keep their value")

	env = mustRun(t, router, "appointments", "upcoming")
	assert.Equal(t, 0, env.Meta.Total)

	env = mustRun(t, router, "feedback", "add", "--appointment", appointmentID, "--notes", "All good")
	var feedback struct {
		AppointmentTitle string `json:"appointmentTitle"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &feedback))
	assert.Equal(t, "Checkup", feedback.AppointmentTitle)

	mustRun(t, router, "test-results", "add", "--name", "CBC", "--type", "blood", "--date", "2099-02-01")
	mustRun(t, router, "test-results", "add", "--name", "MRI", "--type", "imaging", "--date", "2099-02-02")
	env = mustRun(t, router, "test-results", "list", "--type", "blood")
	assert.Equal(t, 1, env.Meta.Total)
	env = mustRun(t, router, "test-results", "recent", "-n", "1")
	assert.Equal(t, 1, env.Meta.Total)

	mustRun(t, router, "diagnoses", "add", "--condition", "Asthma", "--doctor", doctorID, "--severity", "mild")
	env = mustRun(t, router, "diagnoses", "active")
	assert.Equal(t, 1, env.Meta.Total)

	mustRun(t, router, "appointments", "delete", appointmentID)
	env, err := run(t, router, "", "appointments", "get", appointmentID)
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Appointment not found", env.Message)
}

func TestCLI_ListFilters(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "dave", "--password", "pw")

	mustRun(t, router, "medications", "add", "--name", "Metformin", "--start-date", "2024-01-01")
	mustRun(t, router, "medications", "add", "--name", "Aspirin", "--start-date", "2024-03-01", "--status", "inactive")

	env := mustRun(t, router, "medications", "list", "--status", "active")
	assert.Equal(t, 1, env.Meta.Total)

	env = mustRun(t, router, "medications", "list", "--search", "ASPI")
	assert.Equal(t, 1, env.Meta.Total)

	env = mustRun(t, router, "medications", "list", "--sort", "name-asc")
	var medications []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &medications))
	require.Len(t, medications, 2)
	assert.Equal(t, "Aspirin", medications[0].Name)
	assert.Equal(t, "Metformin", medications[1].Name)

	env = mustRun(t, router, "medications", "active")
	assert.Equal(t, 1, env.Meta.Total)
}

func TestCLI_Dashboard(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "erin", "--password", "pw", "--first-name", "Erin")
	mustRun(t, router, "doctors", "add", "--name", "Dr. Who")
	mustRun(t, router, "medications", "add", "--name", "Vitamin D")

	env := mustRun(t, router, "dashboard")
	var summary struct {
		Counts struct {
			Doctors           int `json:"doctors"`
			ActiveMedications int `json:"activeMedications"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 1, summary.Counts.Doctors)
	assert.Equal(t, 1, summary.Counts.ActiveMedications)
}

func TestCLI_ExportImport(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "frank", "--password", "pw")
	mustRun(t, router, "doctors", "add", "--name", "Dr. Strange")

	file := filepath.Join(t.TempDir(), "export.json")
	env := mustRun(t, router, "data", "export", "--out", file)
	assert.Equal(t, "Data exported", env.Message)

	payload, err := os.ReadFile(file)
	require.NoError(t, err)

	// Import into a second account replaces its records
	mustRun(t, router, "register", "--username", "grace", "--password", "pw")
	env = mustRun(t, router, "doctors", "list")
	assert.Equal(t, 0, env.Meta.Total)

	env, err = run(t, router, string(payload), "data", "import", "-")
	require.NoError(t, err)
	assert.Equal(t, "Data imported", env.Message)

	env = mustRun(t, router, "doctors", "list")
	assert.Equal(t, 1, env.Meta.Total)

	env, err = run(t, router, "{not json", "data", "import", "-")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Invalid data format", env.Message)

	env, err = run(t, router, `{"doctors": []}`, "data", "import", "-")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Invalid data format", env.Message)
}

func TestCLI_Clear(t *testing.T) {
	router := newTestRouter(t)
	mustRun(t, router, "register", "--username", "heidi", "--password", "pw")

	env, err := run(t, router, "", "data", "clear")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.False(t, env.Success)

	mustRun(t, router, "data", "clear", "--confirm", "DELETE")

	env, err = run(t, router, "", "whoami")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Not logged in", env.Message)

	env, err = run(t, router, "", "login", "--username", "heidi", "--password", "pw")
	assert.ErrorIs(t, err, cli.ErrCommandFailed)
	assert.Equal(t, "Invalid username or password", env.Message)
}

func TestCLI_UnknownCommand(t *testing.T) {
	router := newTestRouter(t)

	_, err := run(t, router, "", "prescriptions", "list")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrCommandFailed)
}
