package config

const (
	// DefaultOutputFileName is used when no outfile is given or the outfile
	// denotes a directory.
	DefaultOutputFileName = "merged.pdf"
)

type Config struct {
	Output Output `yaml:"output"`
}

type Output struct {
	DefaultName    string `yaml:"default-name"`
	RenameIfExists bool   `yaml:"rename-if-exists"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

// NewDefaultConfig returns the configuration used when no pdfmerge.yml exists.
func NewDefaultConfig() *Config {
	return &Config{
		Output: Output{
			DefaultName:    DefaultOutputFileName,
			RenameIfExists: false,
		},
	}
}
