package inputFetch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
	"github.com/t-kuni/pdfmerge/domain/system/ksuid"
)

type InputFetchService struct {
	fileRepository file.Repository
	ksuidGenerator ksuid.IKsuid
}

func NewInputFetchService(fileRepository file.Repository, ksuidGenerator ksuid.IKsuid) *InputFetchService {
	return &InputFetchService{
		fileRepository: fileRepository,
		ksuidGenerator: ksuidGenerator,
	}
}

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FetchAll downloads every remote input to a temporary directory and returns
// the input list with remote entries replaced by local copies. The order of
// the returned list matches the order of inputPaths. The returned cleanup
// function removes the downloaded copies and is safe to call even when no
// input was remote.
func (s *InputFetchService) FetchAll(inputPaths []string) ([]string, func(), error) {
	localPaths := make([]string, len(inputPaths))
	var downloaded []string
	var tempDir string

	cleanup := func() {
		for _, path := range downloaded {
			s.fileRepository.Delete(path)
		}
		if tempDir != "" {
			os.Remove(tempDir)
		}
	}

	for i, inputPath := range inputPaths {
		if !IsRemote(inputPath) {
			localPaths[i] = inputPath
			continue
		}

		if tempDir == "" {
			var err error
			tempDir, err = os.MkdirTemp("", "pdfmerge")
			if err != nil {
				return nil, cleanup, eris.Wrap(err, "failed to create temporary directory")
			}
		}

		localPath := filepath.Join(tempDir, s.ksuidGenerator.New()+".pdf")

		err := s.fetch(inputPath, localPath)
		if err != nil {
			return nil, cleanup, err
		}

		downloaded = append(downloaded, localPath)
		localPaths[i] = localPath
	}

	return localPaths, cleanup, nil
}

func (s *InputFetchService) fetch(url string, localPath string) error {
	client := resty.New()

	resp, err := client.R().Get(url)
	if err != nil {
		return eris.Wrapf(err, "failed to download: %s", url)
	}

	if resp.StatusCode() != 200 {
		return eris.Errorf("failed to download: %s (status code: %d)", url, resp.StatusCode())
	}

	err = s.fileRepository.Write(localPath, resp.Body())
	if err != nil {
		return eris.Wrapf(err, "failed to save downloaded file: %s", localPath)
	}

	return nil
}
