// Command vectrace drives a simplevector Vector through small workloads
// and prints how its capacity evolves.
//
//	vectrace trace --pushes 100 --reserve 10 --format table
//	vectrace scenario
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Trace the growth policy of a simplevector Vector.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	configFile := app.Flag("config.file", "YAML configuration file.").String()
	logLevel := app.Flag("log.level", "Log level: debug, info, warn, error.").Default("").String()

	traceCmd := app.Command("trace", "Push integers and print every capacity transition.")
	var o overrides
	traceCmd.Flag("pushes", "Number of elements to push.").Default("-1").IntVar(&o.pushes)
	traceCmd.Flag("reserve", "Slots to reserve before the first push.").Default("-1").IntVar(&o.reserve)
	traceCmd.Flag("max-capacity", "Allocation ceiling in slots.").Default("-1").IntVar(&o.maxCapacity)
	traceCmd.Flag("format", "Output format: table or yaml.").Default("").EnumVar(&o.format, "", formatTable, formatYAML)

	scenarioCmd := app.Command("scenario", "Run the push/insert/erase walkthrough.")

	parsed := kingpin.MustParse(app.Parse(os.Args[1:]))
	o.logLevel = *logLevel

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		os.Exit(checkError(err))
	}
	cfg.apply(o)
	if err := cfg.Validate(); err != nil {
		os.Exit(checkError(err))
	}
	filter, _ := cfg.levelFilter() // validated above
	logger := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), filter)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	switch parsed {
	case traceCmd.FullCommand():
		report, err := runTrace(cfg, logger)
		if err != nil {
			os.Exit(checkError(err))
		}
		os.Exit(checkError(render(os.Stdout, cfg.Format, report)))
	case scenarioCmd.FullCommand():
		os.Exit(checkError(runScenario(os.Stdout)))
	}
}

func checkError(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
