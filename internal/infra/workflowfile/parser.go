// Package workflowfile parses GitHub Actions workflow YAML into the domain
// workflow model, preserving line positions for findings.
package workflowfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Parser implements domain.WorkflowParser.
var _ domain.WorkflowParser = (*Parser)(nil)

// Parser decodes workflow files via yaml.Node so that findings can point at
// the offending line.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds the workflow model for the given content.
func (p *Parser) Parse(path string, content []byte) (domain.Workflow, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return domain.Workflow{}, fmt.Errorf("parse workflow: %w", err)
	}
	w := domain.Workflow{Path: path}
	if len(root.Content) == 0 {
		return w, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return w, nil
	}

	for key, value := range mappingPairs(doc) {
		switch key.Value {
		case "name":
			w.Name = value.Value
		case "on", "true":
			// yaml 1.1 resolves the bare key "on" to a boolean.
			w.Triggers, w.DispatchInputs = parseTriggers(value)
		case "concurrency":
			w.Concurrency = parseConcurrency(value)
		case "jobs":
			w.Jobs = parseJobs(value)
		}
	}

	return w, nil
}

// mappingPairs iterates the key/value nodes of a mapping.
func mappingPairs(node *yaml.Node) func(func(*yaml.Node, *yaml.Node) bool) {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		if node == nil || node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if !yield(node.Content[i], node.Content[i+1]) {
				return
			}
		}
	}
}

// parseTriggers handles the three shapes of the on: block: a single event
// scalar, a sequence of events, or a mapping of event to options.
func parseTriggers(node *yaml.Node) (triggers, dispatchInputs []string) {
	switch node.Kind {
	case yaml.ScalarNode:
		triggers = append(triggers, node.Value)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			triggers = append(triggers, item.Value)
		}
	case yaml.MappingNode:
		for key, value := range mappingPairs(node) {
			triggers = append(triggers, key.Value)
			if key.Value == "workflow_dispatch" {
				dispatchInputs = parseDispatchInputs(value)
			}
		}
	}
	return triggers, dispatchInputs
}

func parseDispatchInputs(node *yaml.Node) []string {
	var inputs []string
	for key, value := range mappingPairs(node) {
		if key.Value != "inputs" {
			continue
		}
		for name := range mappingPairs(value) {
			inputs = append(inputs, name.Value)
		}
	}
	return inputs
}

// parseConcurrency handles both the scalar shorthand (group name only) and
// the mapping form with cancel-in-progress.
func parseConcurrency(node *yaml.Node) *domain.Concurrency {
	c := &domain.Concurrency{Line: node.Line}
	if node.Kind == yaml.ScalarNode {
		c.Group = node.Value
		return c
	}
	for key, value := range mappingPairs(node) {
		switch key.Value {
		case "group":
			c.Group = value.Value
		case "cancel-in-progress":
			c.CancelInProgress = value.Value == "true"
		}
	}
	return c
}

func parseJobs(node *yaml.Node) []domain.Job {
	var jobs []domain.Job
	for key, value := range mappingPairs(node) {
		job := domain.Job{ID: key.Value, Line: key.Line}
		for field, fieldValue := range mappingPairs(value) {
			switch field.Value {
			case "timeout-minutes":
				job.HasTimeout = true
			case "steps":
				job.Steps = parseSteps(fieldValue)
			}
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func parseSteps(node *yaml.Node) []domain.Step {
	if node.Kind != yaml.SequenceNode {
		return nil
	}
	var steps []domain.Step
	for _, item := range node.Content {
		step := domain.Step{Line: item.Line}
		for key, value := range mappingPairs(item) {
			switch key.Value {
			case "name":
				step.Name = value.Value
			case "uses":
				step.Uses = value.Value
			case "run":
				step.Run = value.Value
			case "env":
				step.Env = scalarMap(value)
			case "with":
				step.With = scalarMap(value)
			}
		}
		steps = append(steps, step)
	}
	return steps
}

func scalarMap(node *yaml.Node) map[string]string {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	m := make(map[string]string, len(node.Content)/2)
	for key, value := range mappingPairs(node) {
		m[key.Value] = value.Value
	}
	return m
}
