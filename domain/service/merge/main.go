package merge

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/pdfmerge/domain/external/pdf"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
)

var (
	ErrInputNotFound = eris.New("input file not found")
	ErrInputInvalid  = eris.New("input file is not a valid PDF")
	ErrOutputWrite   = eris.New("failed to write output file")
)

type MergeService struct {
	engine         pdf.Engine
	fileRepository file.Repository
}

func NewMergeService(engine pdf.Engine, fileRepository file.Repository) *MergeService {
	return &MergeService{
		engine:         engine,
		fileRepository: fileRepository,
	}
}

// Merge concatenates the pages of inputPaths, in order, into outputPath.
// All inputs are checked for existence and validated before anything is
// written, so a failing input never leaves a partial output file behind.
func (s *MergeService) Merge(inputPaths []string, outputPath string) error {
	for _, inputPath := range inputPaths {
		if !s.fileRepository.Exists(inputPath) {
			return eris.Wrapf(ErrInputNotFound, "%s", inputPath)
		}
	}

	for _, inputPath := range inputPaths {
		if err := s.engine.Validate(inputPath); err != nil {
			return eris.Wrapf(ErrInputInvalid, "%s: %s", inputPath, err.Error())
		}
	}

	if err := s.engine.MergeCreate(inputPaths, outputPath); err != nil {
		return eris.Wrapf(ErrOutputWrite, "%s: %s", outputPath, err.Error())
	}

	return nil
}
