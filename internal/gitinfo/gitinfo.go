// Package gitinfo reads repository metadata from git for template rendering.
package gitinfo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
)

// logFormatEnv keeps pagers and colour out of git log output.
var logFormatEnv = []string{
	"GIT_PAGER=cat",
	"PAGER=cat",
	"LESS=-iXFR",
}

// RepositoryInfo describes the checked-out revision.
type RepositoryInfo struct {
	Revision string
	RevShort string
	Branch   string
	Tags     []string
}

// Options controls how metadata is collected.
type Options struct {
	// TagPattern is a glob passed to git tag -l. Empty lists all tags.
	TagPattern string

	// ShortLength is the abbreviated revision length. Zero uses git's default.
	ShortLength int
}

// Source queries git for repository metadata. Every method starts a fresh
// git process; nothing is cached.
type Source struct {
	runner Runner
}

// NewSource creates a Source backed by runner.
func NewSource(runner Runner) *Source {
	return &Source{runner: runner}
}

// Collect runs all four metadata queries. The first failure aborts the
// collection.
func (s *Source) Collect(ctx context.Context, opts Options) (RepositoryInfo, error) {
	rev, err := s.Revision(ctx)
	if err != nil {
		return RepositoryInfo{}, err
	}
	short, err := s.RevisionShort(ctx, opts.ShortLength)
	if err != nil {
		return RepositoryInfo{}, err
	}
	branch, err := s.Branch(ctx)
	if err != nil {
		return RepositoryInfo{}, err
	}
	tags, err := s.Tags(ctx, opts.TagPattern)
	if err != nil {
		return RepositoryInfo{}, err
	}

	output.Debug("collected repository info",
		"revision", rev,
		"branch", branch,
		"tags", len(tags),
	)

	return RepositoryInfo{
		Revision: rev,
		RevShort: short,
		Branch:   branch,
		Tags:     tags,
	}, nil
}

// Revision returns the full id of HEAD.
func (s *Source) Revision(ctx context.Context) (string, error) {
	return s.query(ctx, nil, "rev-parse", "HEAD")
}

// RevisionShort returns the abbreviated id of HEAD. A length of zero lets
// git pick the abbreviation.
func (s *Source) RevisionShort(ctx context.Context, length int) (string, error) {
	short := "--short"
	if length > 0 {
		short = fmt.Sprintf("--short=%d", length)
	}
	return s.query(ctx, nil, "rev-parse", short, "HEAD")
}

// Branch returns the symbolic name of HEAD, or "HEAD" when detached.
func (s *Source) Branch(ctx context.Context) (string, error) {
	return s.query(ctx, nil, "rev-parse", "--abbrev-ref", "HEAD")
}

// Tags returns the tags pointing at HEAD in git's order, optionally
// filtered by a glob.
func (s *Source) Tags(ctx context.Context, filter string) ([]string, error) {
	args := []string{"tag", "-l", "--points-at", "HEAD"}
	if filter != "" {
		args = append(args, filter)
	}
	out, err := s.query(ctx, nil, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// LogFormat runs git log for HEAD with the given --format specifier and
// returns the trimmed output.
func (s *Source) LogFormat(ctx context.Context, format string) (string, error) {
	return s.query(ctx, logFormatEnv, "--no-pager", "log", "-1", "--no-color", "--format="+format)
}

func (s *Source) query(ctx context.Context, env []string, args ...string) (string, error) {
	output.Debug("running git", "args", strings.Join(args, " "))

	out, err := s.runner.Run(ctx, env, args...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", &oerrors.CommandOutputError{Command: CommandLine("git", args...)}
	}
	return strings.TrimSpace(string(out)), nil
}

// splitLines returns the trimmed, non-empty lines of s.
func splitLines(s string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
