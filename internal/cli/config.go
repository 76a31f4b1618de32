package cli

// Config stores CLI options for a single generation run.
type Config struct {
	PkgPath       string
	Filename      string
	OptionalChain bool
	ShowVersion   bool
}

// OutputFilename returns destination file path for the generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}
