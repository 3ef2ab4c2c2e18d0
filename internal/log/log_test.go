package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLogSession(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	loggingEnabled = true

	err := StartSession("rename", []string{"/media/Show"})
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	if currentSession == nil {
		t.Fatal("StartSession() should have created a session")
	}

	meta := currentSession.Metadata
	if meta.CommandArgs[0] != "rename" {
		t.Errorf("Expected command 'rename', got %s", meta.CommandArgs[0])
	}

	if len(meta.CommandArgs) != 2 || meta.CommandArgs[1] != "/media/Show" {
		t.Errorf("Expected args ['rename', '/media/Show'], got %v", meta.CommandArgs)
	}
}

func TestLogOperations(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	loggingEnabled = true

	err := StartSession("rename", []string{})
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	LogRename("old.mkv", "new.mkv", true, nil)
	LogRenameDir("Season.2", "Show 2", true, nil)

	// Operation with error
	LogRename("error.mkv", "failed.mkv", false, os.ErrPermission)

	if len(currentSession.Operations) != 3 {
		t.Errorf("Expected 3 operations, got %d", len(currentSession.Operations))
	}

	expectedTypes := []OperationType{OpRename, OpRenameDir, OpRename}
	for i, op := range currentSession.Operations {
		if op.Type != expectedTypes[i] {
			t.Errorf("Operation %d: expected type %s, got %s", i, expectedTypes[i], op.Type)
		}
	}

	// Stats are normally saved at the end, but run them now so the unit test does
	// not save a file
	updateStats()

	if currentSession.Metadata.SuccessfulOps != 2 {
		t.Errorf("Expected 2 successful operations, got %d", currentSession.Metadata.SuccessfulOps)
	}

	if currentSession.Metadata.FailedOps != 1 {
		t.Errorf("Expected 1 failed operation, got %d", currentSession.Metadata.FailedOps)
	}

	errorOp := currentSession.Operations[2]
	if errorOp.Success {
		t.Error("Expected error operation to be marked as failed")
	}

	if errorOp.Error == "" {
		t.Error("Expected error operation to have error message")
	}
}

func TestSessionSerialization(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	tempDir := t.TempDir()

	session := &LogSession{
		Metadata: SessionMetadata{
			CommandArgs:   []string{"rename", "/media/Show"},
			WorkingDir:    tempDir,
			Timestamp:     time.Now(),
			SessionID:     "test_session_123",
			TotalOps:      2,
			SuccessfulOps: 1,
			FailedOps:     1,
		},
		Operations: []OperationLog{
			{
				ID:         "test_session_123_0",
				Timestamp:  time.Now(),
				Type:       OpRename,
				SourcePath: "old.mkv",
				DestPath:   "new.mkv",
				Success:    true,
			},
			{
				ID:         "test_session_123_1",
				Timestamp:  time.Now(),
				Type:       OpRenameDir,
				SourcePath: "Season.2",
				DestPath:   "Show 2",
				Success:    false,
				Error:      "destination already exists",
			},
		},
	}

	testFile := filepath.Join(tempDir, "test_session.json")
	err := WriteSessionToPath(session, testFile)
	if err != nil {
		t.Fatalf("WriteSessionToPath() failed: %v", err)
	}

	readSession, err := ReadSession(testFile)
	if err != nil {
		t.Fatalf("ReadSession() failed: %v", err)
	}

	if diff := cmp.Diff(session, readSession); diff != "" {
		t.Errorf("Session mismatch (-want +got):\n%s", diff)
	}
}

func TestLoggingDisabled(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	loggingEnabled = false

	err := StartSession("rename", []string{})
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	if currentSession != nil {
		t.Error("Session should not be created when logging is disabled")
	}

	// Operations should be no-ops
	LogRename("old.mkv", "new.mkv", true, nil)

	if currentSession != nil {
		t.Error("Operations should not create session when logging disabled")
	}
}

// Helper function to write session to specific path for testing
func WriteSessionToPath(session *LogSession, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func TestInitialize(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	Initialize(true, 30)

	if !loggingEnabled {
		t.Error("Logging should be enabled after Initialize(true, 30)")
	}

	Initialize(false, 30)

	if loggingEnabled {
		t.Error("Logging should be disabled after Initialize(false, 30)")
	}

	err := StartSession("rename", []string{})
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	if currentSession != nil {
		t.Error("Session should not be created when logging is disabled")
	}
}

func TestEndSessionWhenDisabled(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	Initialize(false, 30)

	err := EndSession()
	if err != nil {
		t.Errorf("EndSession() with logging disabled error = %v, want nil", err)
	}
}

func TestEndSessionWithNilSession(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	Initialize(true, 30)
	currentSession = nil

	err := EndSession()
	if err != nil {
		t.Errorf("EndSession() with nil session error = %v, want nil", err)
	}
}

func TestSessionRoundTripOnDisk(t *testing.T) {
	originalLoggingEnabled := loggingEnabled
	defer func() {
		loggingEnabled = originalLoggingEnabled
		currentSession = nil
	}()

	t.Setenv("HOME", t.TempDir())
	loggingEnabled = true

	if err := StartSession("rename", []string{"/media/Show"}); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	LogRename("a.mkv", "b.mkv", true, nil)
	if err := EndSession(); err != nil {
		t.Fatalf("EndSession() failed: %v", err)
	}

	sessions, err := ReadSessions(0)
	if err != nil {
		t.Fatalf("ReadSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ReadSessions() returned %d sessions, want 1", len(sessions))
	}
	if sessions[0].Metadata.TotalOps != 1 || sessions[0].Metadata.SuccessfulOps != 1 {
		t.Errorf("session stats = %d total, %d ok, want 1, 1",
			sessions[0].Metadata.TotalOps, sessions[0].Metadata.SuccessfulOps)
	}
}
