package testUtil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	assert.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	assert.NoError(t, err)

	os.Chdir(tempDir)

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

// WritePDF creates a valid PDF file with the given number of blank pages.
func (s Space) WritePDF(path string, pages int) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	pdf := gofpdf.New("P", "mm", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
	}

	err = pdf.OutputFileAndClose(path)
	assert.NoError(s.t, err)
}

// PDFBytes returns the content of a valid PDF with the given number of blank pages.
func PDFBytes(t *testing.T, pages int) []byte {
	t.Helper()

	tempFile, err := os.CreateTemp("", "*.pdf")
	assert.NoError(t, err)
	tempFile.Close()
	defer os.Remove(tempFile.Name())

	pdf := gofpdf.New("P", "mm", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
	}

	err = pdf.OutputFileAndClose(tempFile.Name())
	assert.NoError(t, err)

	content, err := os.ReadFile(tempFile.Name())
	assert.NoError(t, err)

	return content
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(path)
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.NoError(s.t, err)
}

func (s Space) AssertNotExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.True(s.t, os.IsNotExist(err))
}
