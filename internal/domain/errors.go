package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrUnknownRule      = errors.New("unknown rule")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNoChangelog      = errors.New("changelog file not found")
	ErrUnknownCheckKind = errors.New("unknown check kind")
)
