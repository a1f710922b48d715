package initCommand

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/t-kuni/pdfmerge/domain/repository/config"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
	"github.com/t-kuni/pdfmerge/domain/service/configLoad"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default pdfmerge.yml",
		Long:  `Create a pdfmerge.yml configuration file with default values in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, configLoad.ConfigFileName)
			if fileRepository.Exists(configPath) {
				return fmt.Errorf("%s already exists in the current directory", configLoad.ConfigFileName)
			}

			err = configRepository.Write(configPath, config.NewDefaultConfig())
			if err != nil {
				return err
			}

			fmt.Printf("Created %s in the current directory.\n", configLoad.ConfigFileName)
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
