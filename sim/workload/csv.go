package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/sched-sim/sim"
)

// CSV column headers for process files.
var processColumns = []string{"pid", "arrival_time", "burst_time", "priority"}

// LoadProcessesCSV parses rows of pid,arrival_time,burst_time[,priority].
// A first row whose first cell is not an integer is treated as a header.
// Missing priority defaults to 0. Blank lines are skipped.
func LoadProcessesCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading process CSV: %w", err)
	}

	procs := make([]sim.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if i == 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
				continue // header
			}
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("process CSV row %d: expected 3 or 4 columns, got %d", i+1, len(row))
		}
		vals := make([]int64, 4)
		for j, cell := range row {
			v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("process CSV row %d column %s: %w", i+1, processColumns[j], err)
			}
			vals[j] = v
		}
		procs = append(procs, sim.Process{
			PID:         int(vals[0]),
			ArrivalTime: vals[1],
			BurstTime:   vals[2],
			Priority:    int(vals[3]),
		})
	}
	if err := sim.ValidateProcesses(procs); err != nil {
		return nil, fmt.Errorf("process CSV: %w", err)
	}
	return procs, nil
}

// LoadProcessesFile opens path and parses it with LoadProcessesCSV.
func LoadProcessesFile(path string) ([]sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadProcessesCSV(f)
}

// WriteProcessesCSV writes procs with a header row, readable by LoadProcessesCSV.
func WriteProcessesCSV(w io.Writer, procs []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(processColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range procs {
		row := []string{
			strconv.Itoa(p.PID),
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.FormatInt(p.BurstTime, 10),
			strconv.Itoa(p.Priority),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row pid=%d: %w", p.PID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
