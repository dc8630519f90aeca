package usecase

import (
	"fmt"
	"time"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// mockFinder is a test double for domain.ArtifactFinder.
// Fields are ordered to minimize memory padding.
type mockFinder struct {
	files     map[string][]byte
	guides    []string
	workflows []string
	scripts   []string
	listErr   error
	readErr   error
}

func newMockFinder() *mockFinder {
	return &mockFinder{files: make(map[string][]byte)}
}

func (m *mockFinder) add(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *mockFinder) Guides(_ []string) ([]string, error) {
	return m.guides, m.listErr
}

func (m *mockFinder) Workflows(_ string) ([]string, error) {
	return m.workflows, m.listErr
}

func (m *mockFinder) Scripts(_ string) ([]string, error) {
	return m.scripts, m.listErr
}

func (m *mockFinder) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *mockFinder) Read(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: not found", path)
	}
	return content, nil
}

// mockDocParser is a test double for domain.DocumentParser.
type mockDocParser struct {
	docs map[string]domain.Document
	err  error
}

func (m *mockDocParser) Parse(path string, _ []byte) (domain.Document, error) {
	if m.err != nil {
		return domain.Document{}, m.err
	}
	return m.docs[path], nil
}

// mockWorkflowParser is a test double for domain.WorkflowParser.
type mockWorkflowParser struct {
	workflows map[string]domain.Workflow
	errPaths  map[string]error
}

func (m *mockWorkflowParser) Parse(path string, _ []byte) (domain.Workflow, error) {
	if err, ok := m.errPaths[path]; ok {
		return domain.Workflow{}, err
	}
	return m.workflows[path], nil
}

// mockScriptScanner is a test double for domain.ScriptScanner.
type mockScriptScanner struct {
	scripts map[string]domain.Script
	err     error
}

func (m *mockScriptScanner) Scan(path string, _ []byte) (domain.Script, error) {
	if m.err != nil {
		return domain.Script{}, m.err
	}
	return m.scripts[path], nil
}

// mockConfigLoader is a test double for domain.ConfigLoader.
type mockConfigLoader struct {
	cfg *domain.Config
	err error
}

func (m *mockConfigLoader) Load() (*domain.Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.cfg, nil
}

func (m *mockConfigLoader) LoadRepo() (*domain.Config, error) {
	return m.Load()
}

// mockConfigManager is a test double for domain.ConfigManager.
type mockConfigManager struct {
	path       string
	err        error
	initCalled bool
	global     bool
}

func (m *mockConfigManager) Init(global bool) (string, error) {
	m.initCalled = true
	m.global = global
	return m.path, m.err
}

// mockLogger is a test double for domain.Logger that records messages.
type mockLogger struct {
	entries []string
}

func (m *mockLogger) log(level, category, msg string) {
	m.entries = append(m.entries, fmt.Sprintf("%s/%s: %s", level, category, msg))
}

func (m *mockLogger) Debug(category, msg string) { m.log("debug", category, msg) }
func (m *mockLogger) Info(category, msg string)  { m.log("info", category, msg) }
func (m *mockLogger) Warn(category, msg string)  { m.log("warn", category, msg) }
func (m *mockLogger) Error(category, msg string) { m.log("error", category, msg) }

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}
