package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/fs"
	"github.com/NielsdaWheelz/scaffoldkit/internal/tmpl"
)

// GitignorePath is the ignore file written at the output root.
const GitignorePath = ".gitignore"

// GitignoreResult indicates what happens to .gitignore when the plan is written.
type GitignoreResult string

const (
	GitignoreCreated   GitignoreResult = "created"
	GitignoreUpdated   GitignoreResult = "updated"
	GitignoreUnchanged GitignoreResult = "unchanged"
)

func gitignore(r *tmpl.Renderer) (artifact.Artifact, error) {
	return r.Artifact(GitignorePath, GitignoreTemplate, nil)
}

// KeepExistingGitignore folds a .gitignore already present at root into the
// plan, so writing into a non-empty directory never drops the user's
// entries. The plan is left alone when there is no file on disk.
func KeepExistingGitignore(fsys fs.FS, root string, plan *artifact.Plan) (GitignoreResult, error) {
	generated, ok := plan.Find(GitignorePath)
	if !ok {
		return GitignoreUnchanged, nil
	}

	path := filepath.Join(root, GitignorePath)
	existing, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return GitignoreCreated, nil
		}
		return "", errors.WrapWithDetails(errors.EIO, "failed to read "+path, err,
			map[string]string{"path": path})
	}

	merged, added := MergeGitignore(existing, generated.Content)
	generated.Content = merged
	plan.Replace(generated)
	if !added {
		return GitignoreUnchanged, nil
	}
	return GitignoreUpdated, nil
}

// MergeGitignore returns existing with every entry of generated that it
// lacks appended, and whether anything was appended. Existing lines keep
// their order. "dir" and "dir/" count as the same entry.
func MergeGitignore(existing, generated []byte) ([]byte, bool) {
	have := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		if key := entryKey(line); key != "" {
			have[key] = true
		}
	}

	out := string(existing)
	added := false
	for _, line := range strings.Split(string(generated), "\n") {
		key := entryKey(line)
		if key == "" || have[key] {
			continue
		}
		// Ensure content ends with newline before appending
		if len(out) > 0 && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += strings.TrimSpace(line) + "\n"
		have[key] = true
		added = true
	}

	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), added
}

// entryKey is the comparison form of an ignore line; blank lines and
// comments have none.
func entryKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	return strings.TrimSuffix(trimmed, "/")
}
