package pdfcpu

import (
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PdfcpuEngine struct {
	conf *model.Configuration
}

func NewPdfcpuEngine() *PdfcpuEngine {
	return &PdfcpuEngine{
		conf: model.NewDefaultConfiguration(),
	}
}

func (e *PdfcpuEngine) MergeCreate(inFiles []string, outFile string) error {
	return pdfapi.MergeCreateFile(inFiles, outFile, false, e.conf)
}

func (e *PdfcpuEngine) Validate(inFile string) error {
	return pdfapi.ValidateFile(inFile, e.conf)
}

func (e *PdfcpuEngine) PageCount(inFile string) (int, error) {
	return pdfapi.PageCountFile(inFile)
}
