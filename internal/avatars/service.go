// Package avatars stores avatar images picked by the user in a managed
// directory and hands out opaque refs for the profile record.
package avatars

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/avetrov/profilekeeper/internal/filex"
)

type Service struct {
	dir string
}

// NewService makes sure baseDir exists and returns a service rooted
// there.
func NewService(baseDir string) (*Service, error) {
	dir, err := filex.EnsureDir(baseDir)
	if err != nil {
		return nil, err
	}
	return &Service{dir: dir}, nil
}

// Import copies the image at srcPath into the avatar directory under a
// fresh opaque ref, preserving the file extension. The source file is
// left untouched. The returned ref is what belongs in the profile
// record's avatar field.
func (s *Service) Import(srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open avatar source: %w", err)
	}
	defer src.Close()

	ref := uuid.NewString() + strings.ToLower(filepath.Ext(srcPath))
	dst, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("copy avatar: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close avatar file: %w", err)
	}

	return ref, nil
}

// Path resolves a ref previously returned by Import to a filesystem
// path for display.
func (s *Service) Path(ref string) string {
	return filepath.Join(s.dir, ref)
}
