package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var noOptionalChain bool

	fs := pflag.NewFlagSet("structpath", pflag.ContinueOnError)
	fs.StringVarP(&cfg.PkgPath, "pkg", "p", ".", "target package path or pattern")
	fs.StringVarP(&cfg.Filename, "out", "o", "", "output file name")
	fs.BoolVar(&noOptionalChain, "no-optional-chain", false, "reject the '~' field-join operator")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.OptionalChain = !noOptionalChain
	if cfg.ShowVersion {
		return cfg, nil
	}

	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--out is required")
	}
	return cfg, nil
}
