package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/viant/sumuuid"
	"github.com/viant/sumuuid/internal/cli"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	os.Exit(cli.Run(sumuuid.New(), os.Args[1:], os.Stdout, logger))
}
