// Package testutil provides mock implementations of the domain ports for
// tests outside the usecase package.
package testutil

import (
	"fmt"
	"time"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// MockFinder is a mock implementation of domain.ArtifactFinder backed by an
// in-memory file map.
type MockFinder struct {
	Files         map[string][]byte
	GuidePaths    []string
	WorkflowPaths []string
	ScriptPaths   []string
	ListErr       error
}

// NewMockFinder creates an empty MockFinder.
func NewMockFinder() *MockFinder {
	return &MockFinder{Files: make(map[string][]byte)}
}

// Add registers a file with content.
func (m *MockFinder) Add(path, content string) {
	m.Files[path] = []byte(content)
}

func (m *MockFinder) Guides(_ []string) ([]string, error) {
	return m.GuidePaths, m.ListErr
}

func (m *MockFinder) Workflows(_ string) ([]string, error) {
	return m.WorkflowPaths, m.ListErr
}

func (m *MockFinder) Scripts(_ string) ([]string, error) {
	return m.ScriptPaths, m.ListErr
}

func (m *MockFinder) Exists(path string) bool {
	_, ok := m.Files[path]
	return ok
}

func (m *MockFinder) Read(path string) ([]byte, error) {
	content, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: not found", path)
	}
	return content, nil
}

// MockDocParser is a mock implementation of domain.DocumentParser.
type MockDocParser struct {
	Docs map[string]domain.Document
	Err  error
}

func (m *MockDocParser) Parse(path string, _ []byte) (domain.Document, error) {
	if m.Err != nil {
		return domain.Document{}, m.Err
	}
	return m.Docs[path], nil
}

// MockWorkflowParser is a mock implementation of domain.WorkflowParser.
type MockWorkflowParser struct {
	Workflows map[string]domain.Workflow
	Err       error
}

func (m *MockWorkflowParser) Parse(path string, _ []byte) (domain.Workflow, error) {
	if m.Err != nil {
		return domain.Workflow{}, m.Err
	}
	return m.Workflows[path], nil
}

// MockScriptScanner is a mock implementation of domain.ScriptScanner.
type MockScriptScanner struct {
	Scripts map[string]domain.Script
	Err     error
}

func (m *MockScriptScanner) Scan(path string, _ []byte) (domain.Script, error) {
	if m.Err != nil {
		return domain.Script{}, m.Err
	}
	return m.Scripts[path], nil
}

// MockConfigLoader is a mock implementation of domain.ConfigLoader.
// A nil Cfg yields the default configuration.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) LoadRepo() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a mock implementation of domain.ConfigManager.
type MockConfigManager struct {
	Path   string
	Err    error
	Global bool
	Called bool
}

func (m *MockConfigManager) Init(global bool) (string, error) {
	m.Called = true
	m.Global = global
	return m.Path, m.Err
}

// MockLogger is a mock implementation of domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) log(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s/%s: %s", level, category, msg))
}

func (m *MockLogger) Debug(category, msg string) { m.log("debug", category, msg) }
func (m *MockLogger) Info(category, msg string)  { m.log("info", category, msg) }
func (m *MockLogger) Warn(category, msg string)  { m.log("warn", category, msg) }
func (m *MockLogger) Error(category, msg string) { m.log("error", category, msg) }

// MockClock is a mock implementation of domain.Clock.
type MockClock struct {
	NowTime time.Time
}

func (m *MockClock) Now() time.Time {
	return m.NowTime
}
