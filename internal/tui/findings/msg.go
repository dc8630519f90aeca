package findings

import "github.com/mizunashi/wfcheck/internal/domain"

// Msg is the interface for all findings TUI messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgFindingsLoaded is sent when a check run completes.
//
//nolint:govet // Logical field order preferred
type MsgFindingsLoaded struct {
	Findings []domain.Finding
	Summary  domain.Summary
	Checked  int
	Err      error
}

func (MsgFindingsLoaded) sealed() {}
