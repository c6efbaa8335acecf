// Package git keeps the template repositories in sync and initialises the
// repository of generated projects.
package git

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
)

// DefaultDepth is the clone depth of template repositories
const DefaultDepth = 1

// Gitignore is staged in freshly initialised projects
const Gitignore = ".gitignore"

// Status tells what Sync did
type Status string

const (
	StatusCloned   Status = "cloned"
	StatusUpdated  Status = "updated"
	StatusUpToDate Status = "up-to-date"
)

// Syncer clones or pulls template repositories
type Syncer struct {
	// Depth limits the history of clones, 0 means full history
	Depth int
	// Progress receives the remote's progress messages when set
	Progress io.Writer
}

// NewSyncer returns a syncer making shallow clones
func NewSyncer() *Syncer {
	return &Syncer{Depth: DefaultDepth}
}

// Sync clones url into dir, or fast-forwards dir when it already holds a
// clone.
func (s *Syncer) Sync(ctx context.Context, url, dir string) (Status, error) {
	logger := logging.GetLogger("git")

	if _, err := os.Stat(filepath.Join(dir, gogit.GitDirName)); err != nil {
		logger.Debug().Str("url", url).Str("dir", dir).Msg("Cloning repository")
		if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dir))
		}
		_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
			URL:          url,
			Depth:        s.Depth,
			SingleBranch: s.Depth > 0,
			Progress:     s.Progress,
		})
		if err != nil {
			_ = os.RemoveAll(dir)
			return "", errors.Wrapf(err, errors.ErrGitClone, "failed to clone %s", url).
				WithDetail("url", url)
		}
		return StatusCloned, nil
	}

	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrGitPull, "failed to open %s", dir).
			WithDetail("url", url)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrGitPull, "no worktree in %s", dir)
	}

	logger.Debug().Str("url", url).Str("dir", dir).Msg("Pulling repository")
	err = wt.PullContext(ctx, &gogit.PullOptions{
		RemoteName: gogit.DefaultRemoteName,
		Depth:      s.Depth,
		Progress:   s.Progress,
	})
	switch {
	case err == nil:
		return StatusUpdated, nil
	case stderrors.Is(err, gogit.NoErrAlreadyUpToDate):
		return StatusUpToDate, nil
	default:
		return "", errors.Wrapf(err, errors.ErrGitPull, "failed to pull %s", url).
			WithDetail("url", url)
	}
}

// Result is the outcome of syncing one repository
type Result struct {
	URL    string
	Dir    string
	Status Status
	Err    error
}

// SyncAll syncs every url into the directory dirFor returns for it. A
// failing repository is logged and does not stop the others.
func (s *Syncer) SyncAll(ctx context.Context, urls []string, dirFor func(url string) string) []Result {
	logger := logging.GetLogger("git")

	results := make([]Result, 0, len(urls))
	for _, url := range urls {
		if ctx.Err() != nil {
			break
		}
		dir := dirFor(url)
		status, err := s.Sync(ctx, url, dir)
		if err != nil {
			logger.Warn().Err(err).Str("url", url).Msg("Failed to update repository")
		} else {
			logger.Info().Str("url", url).Str("status", string(status)).Msg("Repository synced")
		}
		results = append(results, Result{URL: url, Dir: dir, Status: status, Err: err})
	}
	return results
}

// InitProject creates a repository in dir and stages its .gitignore when
// there is one.
func InitProject(dir string) error {
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGitInit, "failed to init repository in %s", dir).
			WithDetail("dir", dir)
	}

	if _, err := os.Stat(filepath.Join(dir, Gitignore)); err != nil {
		return nil
	}

	wt, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, errors.ErrGitInit, "no worktree")
	}
	if _, err := wt.Add(Gitignore); err != nil {
		return errors.Wrapf(err, errors.ErrGitInit, "failed to stage %s", Gitignore).
			WithDetail("dir", dir)
	}
	return nil
}
