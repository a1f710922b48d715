package outputResolve

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/pdfmerge/domain/repository/file"
	infraFile "github.com/t-kuni/pdfmerge/infrastructure/repository/file"
	"github.com/t-kuni/pdfmerge/testUtil"
	"go.uber.org/mock/gomock"
)

func TestResolve(t *testing.T) {
	testee := NewOutputResolveService(nil)

	t.Run("outfile未指定の場合、カレントディレクトリのデフォルトファイル名に解決されること", func(t *testing.T) {
		resolved := testee.Resolve("", "merged.pdf")

		assert.Equal(t, "", resolved.Dir)
		assert.Equal(t, "merged.pdf", resolved.FileName)
		assert.Equal(t, "merged.pdf", resolved.FullPath())
	})

	t.Run("パス区切り文字で終わる場合、ディレクトリとデフォルトファイル名に解決されること", func(t *testing.T) {
		resolved := testee.Resolve("out/", "merged.pdf")

		assert.Equal(t, "out/", resolved.Dir)
		assert.Equal(t, "merged.pdf", resolved.FileName)
		assert.Equal(t, filepath.Join("out", "merged.pdf"), resolved.FullPath())
	})

	t.Run("ネストしたディレクトリ指定が解決されること", func(t *testing.T) {
		resolved := testee.Resolve("aaa/bbb/", "merged.pdf")

		assert.Equal(t, "aaa/bbb/", resolved.Dir)
		assert.Equal(t, "merged.pdf", resolved.FileName)
	})

	t.Run("ファイルパス指定の場合、ディレクトリとファイル名に分割されること", func(t *testing.T) {
		resolved := testee.Resolve("out/result.pdf", "merged.pdf")

		assert.Equal(t, "out/", resolved.Dir)
		assert.Equal(t, "result.pdf", resolved.FileName)
		assert.Equal(t, filepath.Join("out", "result.pdf"), resolved.FullPath())
	})

	t.Run("ファイル名のみ指定の場合、ディレクトリ部分が空になること", func(t *testing.T) {
		resolved := testee.Resolve("result.pdf", "merged.pdf")

		assert.Equal(t, "", resolved.Dir)
		assert.Equal(t, "result.pdf", resolved.FileName)
		assert.Equal(t, "result.pdf", resolved.FullPath())
	})
}

func TestEnsureDir(t *testing.T) {
	t.Run("ディレクトリ部分が空の場合、ディレクトリ作成が行われないこと", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		// MkdirAll must not be called for an empty directory component

		testee := NewOutputResolveService(mockFileRepo)

		err := testee.EnsureDir(ResolvedOutput{Dir: "", FileName: "merged.pdf"})
		assert.NoError(t, err)
	})

	t.Run("存在しないディレクトリが作成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := NewOutputResolveService(infraFile.NewFileRepository())

		err := testee.EnsureDir(ResolvedOutput{Dir: "out/", FileName: "merged.pdf"})
		assert.NoError(t, err)

		space.AssertExistPath("out")
	})

	t.Run("ネストしたディレクトリが作成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := NewOutputResolveService(infraFile.NewFileRepository())

		err := testee.EnsureDir(ResolvedOutput{Dir: "aaa/bbb/", FileName: "merged.pdf"})
		assert.NoError(t, err)

		space.AssertExistPath(filepath.Join("aaa", "bbb"))
	})

	t.Run("ディレクトリが既に存在する場合、エラーにならず内容も変更されないこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("out/existing.txt", []byte("keep me"))

		testee := NewOutputResolveService(infraFile.NewFileRepository())

		err := testee.EnsureDir(ResolvedOutput{Dir: "out/", FileName: "merged.pdf"})
		assert.NoError(t, err)

		space.AssertFile("out/existing.txt", func(actual []byte) {
			assert.Equal(t, "keep me", string(actual))
		})
	})

	t.Run("ディレクトリ作成に失敗した場合、エラーが返ること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		// a regular file blocks directory creation with the same name
		space.WriteFile("out", []byte("not a directory"))

		testee := NewOutputResolveService(infraFile.NewFileRepository())

		err := testee.EnsureDir(ResolvedOutput{Dir: "out/", FileName: "merged.pdf"})
		assert.Error(t, err)
	})
}
