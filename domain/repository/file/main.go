//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Getwd() (string, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) bool
	Delete(path string) error
	MkdirAll(path string) error
}
