// Command gridfit reads a puzzle document from a JSON file, searches for
// placements, and either prints solutions as JSON lines or hands the
// search off to one of the optional presentation layers.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tessforge/gridfit/inspect"
	"github.com/tessforge/gridfit/solver"
	"github.com/tessforge/gridfit/vizreport"
	"github.com/tessforge/gridfit/wire"
)

func main() {
	inputPath := flag.String("in", "", "path to a puzzle JSON file")
	reportPath := flag.String("report", "", "write an HTML report of the first solution to this path instead of printing JSON")
	interactive := flag.Bool("inspect", false, "browse solutions interactively in the terminal instead of printing JSON")
	limit := flag.Int("limit", 0, "stop after this many solutions (0 means no limit)")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("gridfit: -in is required")
	}

	if err := run(*inputPath, *reportPath, *interactive, *limit); err != nil {
		log.Fatalf("gridfit: %v", err)
	}
}

func run(inputPath, reportPath string, interactive bool, limit int) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	var puzzle wire.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	parts, requirements, settings, spinnable, err := wire.FromWire(puzzle)
	if err != nil {
		return fmt.Errorf("validating puzzle: %w", err)
	}

	log.Printf("gridfit: loaded %d parts, %d requirements, %dx%d grid", len(parts), len(requirements), settings.Width, settings.Height)

	start := time.Now()
	cursor := solver.Solve(parts, requirements, settings, spinnable)

	if interactive {
		return inspect.Run(cursor, parts, requirements, settings)
	}

	if reportPath != "" {
		solution, ok := cursor.Next()
		if !ok {
			return fmt.Errorf("no solutions found")
		}

		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", reportPath, err)
		}
		defer f.Close()

		if err := vizreport.Write(f, parts, requirements, settings, solution); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		log.Printf("gridfit: wrote report to %s", reportPath)
		return nil
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	count := 0
	for {
		solution, ok := cursor.Next()
		if !ok {
			break
		}
		count++

		line, err := json.Marshal(wire.ToWire(solution))
		if err != nil {
			return fmt.Errorf("encoding solution %d: %w", count, err)
		}
		if _, err := out.Write(line); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}

		if limit > 0 && count >= limit {
			break
		}
	}

	log.Printf("gridfit: found %d solution(s) in %s", count, time.Since(start))

	return nil
}
