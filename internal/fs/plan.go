package fs

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/logging"
)

// WritePlan persists a plan under root: the root itself, then the directory
// skeleton in plan order, then every artifact (atomically).
// The first failure aborts the run with E_IO naming the failing path;
// anything written before it stays on disk.
func WritePlan(ctx context.Context, fsys FS, root string, plan artifact.Plan) error {
	logger := logging.FromContext(ctx)

	if err := fsys.MkdirAll(root, artifact.DirMode); err != nil {
		return ioError("failed to create output root", root, err)
	}

	for _, dir := range plan.Dirs {
		abs := filepath.Join(root, filepath.FromSlash(dir))
		if err := fsys.MkdirAll(abs, artifact.DirMode); err != nil {
			return ioError("failed to create directory", abs, err)
		}
		logger.DebugContext(ctx, "created directory", slog.String("path", dir))
	}

	for _, a := range plan.Artifacts {
		abs := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := fsys.MkdirAll(filepath.Dir(abs), artifact.DirMode); err != nil {
			return ioError("failed to create directory", filepath.Dir(abs), err)
		}
		mode := a.Mode
		if mode == 0 {
			mode = artifact.FileMode
		}
		if err := WriteFileAtomic(fsys, abs, a.Content, mode); err != nil {
			return ioError("failed to write file", abs, err)
		}
		logger.DebugContext(ctx, "wrote artifact",
			slog.String("path", a.Path),
			slog.Int("bytes", len(a.Content)),
		)
	}

	return nil
}

func ioError(msg, path string, err error) error {
	return errors.WrapWithDetails(errors.EIO, msg+": "+path, err, map[string]string{"path": path})
}
