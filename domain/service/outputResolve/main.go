package outputResolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
)

// ResolvedOutput is the result of output path resolution.
// Dir is the directory component and may be empty, meaning the current
// working directory. FileName is never empty.
type ResolvedOutput struct {
	Dir      string
	FileName string
}

func (r ResolvedOutput) FullPath() string {
	return filepath.Join(r.Dir, r.FileName)
}

type OutputResolveService struct {
	fileRepository file.Repository
}

func NewOutputResolveService(fileRepository file.Repository) *OutputResolveService {
	return &OutputResolveService{
		fileRepository: fileRepository,
	}
}

// Resolve determines the output path from the raw --outfile value.
// It performs no I/O.
//
// rawOutfileが空の場合はカレントディレクトリのdefaultNameに解決されます。
// rawOutfileがパス区切り文字で終わる場合はディレクトリ指定とみなし、
// そのディレクトリとdefaultNameを結合します。
// それ以外の場合はファイルパスとして扱います。
func (s *OutputResolveService) Resolve(rawOutfile string, defaultName string) ResolvedOutput {
	if rawOutfile == "" {
		return ResolvedOutput{
			Dir:      "",
			FileName: defaultName,
		}
	}

	if strings.HasSuffix(rawOutfile, "/") || strings.HasSuffix(rawOutfile, string(os.PathSeparator)) {
		return ResolvedOutput{
			Dir:      rawOutfile,
			FileName: defaultName,
		}
	}

	dir, fileName := filepath.Split(rawOutfile)
	return ResolvedOutput{
		Dir:      dir,
		FileName: fileName,
	}
}

// EnsureDir creates the directory component of the resolved output if needed.
// An empty directory component means the current working directory, which
// always exists, so no creation is attempted in that case.
func (s *OutputResolveService) EnsureDir(resolved ResolvedOutput) error {
	if resolved.Dir == "" {
		return nil
	}

	err := s.fileRepository.MkdirAll(resolved.Dir)
	if err != nil {
		return eris.Wrapf(err, "failed to create output directory: %s", resolved.Dir)
	}

	return nil
}
