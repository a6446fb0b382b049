// Command log_parser prints per-URL visit counts for a web-server access log.
//
// Usage:
//
//	log_parser log_file.log           # all visits
//	log_parser --unique log_file.log  # unique views
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitfield/logparser"
	"github.com/sirupsen/logrus"
)

const usage = `To get all visits:
  log_parser log_file.log
To get unique views:
  log_parser --unique log_file.log
`

// command describes one accepted shape of the command line: an optional
// leading flag followed by exactly one file path.
type command struct {
	flag   string
	stats  func(path string) ([]logparser.Count, error)
	format func([]logparser.Count) string
}

var commands = []command{
	{
		stats:  logparser.VisitsStatistics,
		format: logparser.FormatVisitsReport,
	},
	{
		flag:   "--unique",
		stats:  logparser.UniqueViewsStatistics,
		format: logparser.FormatUniqueViewsReport,
	},
}

// match returns the command whose shape args fit, and the file path argument.
func match(args []string) (command, string, bool) {
	for _, c := range commands {
		switch {
		case c.flag == "" && len(args) == 1 && !isFlag(args[0]):
			return c, args[0], true
		case c.flag != "" && len(args) == 2 && args[0] == c.flag:
			return c, args[1], true
		}
	}
	return command{}, "", false
}

// isFlag reports whether arg is one of the recognised flags.
func isFlag(arg string) bool {
	for _, c := range commands {
		if c.flag != "" && c.flag == arg {
			return true
		}
	}
	return false
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log
}

func run(args []string, stdout, stderr io.Writer) int {
	c, path, ok := match(args)
	if !ok {
		fmt.Fprint(stderr, usage)
		return 1
	}
	counts, err := c.stats(path)
	if err != nil {
		newLogger(stderr).WithError(err).WithField("path", path).Error("cannot produce report")
		return 1
	}
	if _, err := fmt.Fprint(stdout, c.format(counts)); err != nil {
		newLogger(stderr).WithError(err).Error("writing report")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
