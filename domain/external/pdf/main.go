//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package pdf

// Engine はPDF操作の実装を抽象化するインターフェースです。
type Engine interface {
	// MergeCreate は入力ファイルの全ページを入力順に連結し、
	// outFile に新しいPDFとして書き出します。既存ファイルは上書きされます。
	MergeCreate(inFiles []string, outFile string) error

	// Validate は入力ファイルがPDFとして解析可能であることを検証します。
	Validate(inFile string) error

	// PageCount は入力ファイルのページ数を返します。
	PageCount(inFile string) (int, error)
}
