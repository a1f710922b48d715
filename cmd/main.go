package cmd

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/pdfmerge/cmd/initCommand"
	"github.com/t-kuni/pdfmerge/cmd/versionCommand"
	"github.com/t-kuni/pdfmerge/domain/service/configLoad"
	"github.com/t-kuni/pdfmerge/domain/service/inputFetch"
	"github.com/t-kuni/pdfmerge/domain/service/merge"
	"github.com/t-kuni/pdfmerge/domain/service/outputResolve"
	"github.com/t-kuni/pdfmerge/domain/service/uniqueName"
	"github.com/t-kuni/pdfmerge/infrastructure/external/pdfcpu"
	configRepo "github.com/t-kuni/pdfmerge/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/pdfmerge/infrastructure/repository/file"
	ksuidGen "github.com/t-kuni/pdfmerge/infrastructure/system/ksuid"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var outfile string

	cmd := &cobra.Command{
		Use:   "pdfmerge [flags] inputfile...",
		Short: "Merge PDF files into one",
		Long: `Pdfmerge concatenates the pages of the given PDF files, in argument order,
into a single output PDF. Input files may also be http(s) URLs, which are
downloaded before merging.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args, outfile)
		},
	}

	cmd.Flags().StringVarP(&outfile, "outfile", "o", "",
		"output file of PDF merge; a trailing path separator means a directory, default='merged.pdf'")

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

func runMerge(inputfiles []string, outfile string) error {
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	ksuidGenerator := ksuidGen.NewKsuidGenerator()
	engine := pdfcpu.NewPdfcpuEngine()

	configLoadSrv := configLoad.NewConfigLoadService(configRepository, fileRepository)
	inputFetchSrv := inputFetch.NewInputFetchService(fileRepository, ksuidGenerator)
	outputResolveSrv := outputResolve.NewOutputResolveService(fileRepository)
	uniqueNameSrv := uniqueName.NewUniqueNameService(fileRepository)
	mergeSrv := merge.NewMergeService(engine, fileRepository)

	printArgumentDetails(inputfiles, outfile)

	cfg, err := configLoadSrv.Load()
	if err != nil {
		return eris.Wrap(err, "failed to load config")
	}

	localInputs, cleanup, err := inputFetchSrv.FetchAll(inputfiles)
	defer cleanup()
	if err != nil {
		return eris.Wrap(err, "failed to fetch remote inputs")
	}

	resolved := outputResolveSrv.Resolve(outfile, cfg.Output.DefaultName)

	err = outputResolveSrv.EnsureDir(resolved)
	if err != nil {
		return err
	}

	outputPath := resolved.FullPath()

	if cfg.Output.RenameIfExists {
		outputPath, err = uniqueNameSrv.Ensure(outputPath)
		if err != nil {
			return err
		}
	}

	err = mergeSrv.Merge(localInputs, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Merged %d files into %s\n", len(inputfiles), outputPath)
	return nil
}

func printArgumentDetails(inputfiles []string, outfile string) {
	fmt.Println("inputfiles:")
	for _, inputfile := range inputfiles {
		fmt.Printf("\t%s\n", inputfile)
	}

	fmt.Printf("outfile: %s\n", outfile)
}
