package main

import (
	"fmt"
	"log"
	"os"

	"github.com/abdolence/struct-path-go/internal/cli"
	"github.com/abdolence/struct-path-go/internal/emit"
	"github.com/abdolence/struct-path-go/internal/source"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	l := source.New()
	f := emit.NewGoimportsFormatter()
	w := emit.NewFileWriter()
	g := emit.New(f, w)

	runner := cli.NewRunner(l, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
