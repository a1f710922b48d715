package configLoad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	infraConfig "github.com/t-kuni/pdfmerge/infrastructure/repository/config"
	infraFile "github.com/t-kuni/pdfmerge/infrastructure/repository/file"
	"github.com/t-kuni/pdfmerge/testUtil"
)

func TestLoad(t *testing.T) {
	t.Run("pdfmerge.ymlが存在しない場合、デフォルト設定が返ること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := NewConfigLoadService(infraConfig.NewConfigRepository(), infraFile.NewFileRepository())

		cfg, err := testee.Load()
		assert.NoError(t, err)

		assert.Equal(t, "merged.pdf", cfg.Output.DefaultName)
		assert.False(t, cfg.Output.RenameIfExists)
	})

	t.Run("pdfmerge.ymlが存在する場合、その内容が読み込まれること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("pdfmerge.yml", []byte(`
output:
  default-name: result.pdf
  rename-if-exists: true
`))

		testee := NewConfigLoadService(infraConfig.NewConfigRepository(), infraFile.NewFileRepository())

		cfg, err := testee.Load()
		assert.NoError(t, err)

		assert.Equal(t, "result.pdf", cfg.Output.DefaultName)
		assert.True(t, cfg.Output.RenameIfExists)
	})

	t.Run("default-nameが未設定の場合、デフォルトファイル名が補われること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("pdfmerge.yml", []byte(`
output:
  rename-if-exists: true
`))

		testee := NewConfigLoadService(infraConfig.NewConfigRepository(), infraFile.NewFileRepository())

		cfg, err := testee.Load()
		assert.NoError(t, err)

		assert.Equal(t, "merged.pdf", cfg.Output.DefaultName)
		assert.True(t, cfg.Output.RenameIfExists)
	})
}
