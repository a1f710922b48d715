package uniqueName

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
)

// MaxRenameAttempts is the number of candidate names tried before giving up.
const MaxRenameAttempts = 20

type UniqueNameService struct {
	fileRepository file.Repository
}

func NewUniqueNameService(fileRepository file.Repository) *UniqueNameService {
	return &UniqueNameService{
		fileRepository: fileRepository,
	}
}

// Ensure returns path unchanged if no file exists there. Otherwise it
// appends a counter to the first dot-separated part of the base name
// (merged.pdf -> merged1.pdf, merged2.pdf, ...) until a free name is found.
func (s *UniqueNameService) Ensure(path string) (string, error) {
	if !s.fileRepository.Exists(path) {
		return path, nil
	}

	dir, base := filepath.Split(path)
	parts := strings.Split(base, ".")

	for attempt := 1; attempt <= MaxRenameAttempts; attempt++ {
		renamedParts := append([]string{parts[0] + strconv.Itoa(attempt)}, parts[1:]...)
		candidate := filepath.Join(dir, strings.Join(renamedParts, "."))

		if !s.fileRepository.Exists(candidate) {
			return candidate, nil
		}
	}

	return "", eris.Errorf("maximum number of renaming attempts (%d) for '%s' has been exceeded", MaxRenameAttempts, path)
}
