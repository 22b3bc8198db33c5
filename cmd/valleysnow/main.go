package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/valleysnow/valleysnow/internal/constants"
	"github.com/valleysnow/valleysnow/internal/engine"
	"github.com/valleysnow/valleysnow/internal/log"
)

func main() {
	inputFile := flag.String("input", "", "Path to the JSON input record ('-' reads stdin)")
	jsonOut := flag.Bool("json", false, "Emit the result record as JSON instead of a report")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("valleysnow %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *inputFile == "" {
		log.Errorf("No input record. Pass -input file.json (or '-' for stdin). Run with -h for help.")
		os.Exit(1)
	}

	in, err := loadInput(*inputFile)
	if err != nil {
		log.Errorf("Failed to load input record: %v", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	log.Debugf("analysis run %s starting", runID)

	result, err := engine.AnalyzeWithLogger(*in, log.GetSugaredLogger())
	if err != nil {
		log.Errorf("Analysis failed: %v", err)
		os.Exit(1)
	}
	log.Debugf("analysis run %s complete: %s", runID, result.Status)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Errorf("Failed to encode result: %v", err)
			os.Exit(1)
		}
		return
	}

	printReport(os.Stdout, result)
}

func loadInput(path string) (*engine.Input, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var in engine.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding input record: %w", err)
	}
	return &in, nil
}
