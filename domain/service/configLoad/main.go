package configLoad

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/pdfmerge/domain/repository/config"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
)

const ConfigFileName = "pdfmerge.yml"

type ConfigLoadService struct {
	configRepository config.Repository
	fileRepository   file.Repository
}

func NewConfigLoadService(configRepository config.Repository, fileRepository file.Repository) *ConfigLoadService {
	return &ConfigLoadService{
		configRepository: configRepository,
		fileRepository:   fileRepository,
	}
}

// Load reads pdfmerge.yml from the current working directory. When the file
// does not exist, the default configuration is returned.
func (s *ConfigLoadService) Load() (*config.Config, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return nil, eris.Wrap(err, "failed to get current directory")
	}

	configPath := filepath.Join(currentDir, ConfigFileName)
	if !s.fileRepository.Exists(configPath) {
		return config.NewDefaultConfig(), nil
	}

	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read config file: %s", configPath)
	}

	if cfg.Output.DefaultName == "" {
		cfg.Output.DefaultName = config.DefaultOutputFileName
	}

	return cfg, nil
}
