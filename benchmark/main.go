// Package main provides a performance benchmarking tool for the dashviz CLI.
// It generates dashboard pages of increasing size, runs the plan and render
// commands against each page several times, treats the first successful run
// as cold and averages the rest as warm, and writes the timings as CSV.
//
// Prerequisites:
// - dashviz binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where generated pages are written
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Page     string
	Command  string
	ColdTime string
	WarmTime string
}

// PageSize describes one generated page.
type PageSize struct {
	Name     string
	Roles    int
	Keywords int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   []PageSize
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 30 * time.Second,
		Runs:    5,
		Sizes: []PageSize{
			{Name: "small", Roles: 8, Keywords: 20},
			{Name: "medium", Roles: 200, Keywords: 1000},
			{Name: "large", Roles: 5000, Keywords: 50000},
		},
	}

	if _, err := exec.LookPath("dashviz"); err != nil {
		fmt.Printf("Prerequisites check failed: dashviz binary not found in PATH\n")
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks generates each page and times the plan and render commands on it.
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d pages, %v timeout, %d runs\n", len(config.Sizes), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		pagePath, err := writePage(config.WorkDir, size)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Benchmarking %s (%d roles, %d keywords)\n", size.Name, size.Roles, size.Keywords)

		results = append(results,
			runBenchmarkSuite(config, size.Name, "plan", "plan", pagePath, "--output", "json"),
			runBenchmarkSuite(config, size.Name, "render", "render", pagePath),
		)
	}
	return results, nil
}

// writePage generates a dashboard page with the requested number of roles and keywords.
func writePage(dir string, size PageSize) (string, error) {
	scores := make(map[string]int, size.Roles)
	for i := range size.Roles {
		scores[fmt.Sprintf("role_%d_analyst", i)] = i % 101
	}
	keywords := make([]string, size.Keywords)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("keyword%d", i)
	}

	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return "", err
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<!doctype html><html><head>`)
	b.WriteString(`<script src="/static/chart.umd.min.js"></script><script src="/static/wordcloud2.js"></script>`)
	b.WriteString(`</head><body>`)
	fmt.Fprintf(&b, `<canvas id="radarChart" data-role-scores='%s'></canvas>`, scoresJSON)
	fmt.Fprintf(&b, `<div id="wordcloud" data-keywords='%s'></div>`, keywordsJSON)
	b.WriteString(`</body></html>`)

	path := filepath.Join(dir, fmt.Sprintf("dashviz_bench_%s.html", size.Name))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write page %s: %w", path, err)
	}
	return path, nil
}

// runBenchmarkSuite times one command against one page.
func runBenchmarkSuite(config BenchmarkConfig, page, label string, args ...string) BenchmarkResult {
	fmt.Printf("  %s (%d runs)\n", label, config.Runs)
	cold, warm := runBenchmark(config, args)

	coldTimeStr := "TIMEOUT"
	if cold > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", cold)
	}
	warmAvg := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)
	return BenchmarkResult{Page: page, Command: label, ColdTime: coldTimeStr, WarmTime: warmAvg}
}

// runBenchmark executes a dashviz command multiple times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for range config.Runs {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		cmd := exec.CommandContext(ctx, "dashviz", args...)
		err := cmd.Run()
		elapsed := time.Since(start).Seconds()
		cancel()
		if err == nil {
			times = append(times, elapsed)
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/dashviz_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"page", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Page, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"plan", "render"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Page, result.ColdTime, result.WarmTime)
			}
		}
	}
}
