package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/julianstephens/dailydash/internal/constants"
)

// HistoryRow is one closed-out day in the history log.
type HistoryRow struct {
	Date           string
	WaterML        int
	CaffeineMG     int
	TasksCompleted int
	Note           string
}

// HistoryLog upserts one CSV row per calendar date. Column order is fixed by
// constants.HistoryHeader.
type HistoryLog struct {
	path string
}

// NewHistoryLog returns a history log rooted at the given config directory.
func NewHistoryLog(configDir string) *HistoryLog {
	return &HistoryLog{path: filepath.Join(configDir, constants.HistoryFileName)}
}

// Path returns the history file location.
func (h *HistoryLog) Path() string { return h.path }

// Rows reads all logged days in file order. A missing file is an empty log.
func (h *HistoryLog) Rows() ([]HistoryRow, error) {
	f, err := os.Open(h.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(constants.HistoryHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse history log: %w", err)
	}

	var rows []HistoryRow
	for i, rec := range records {
		if i == 0 && rec[0] == constants.HistoryHeader[0] {
			continue // header
		}
		water, _ := strconv.Atoi(rec[1])
		caffeine, _ := strconv.Atoi(rec[2])
		done, _ := strconv.Atoi(rec[3])
		rows = append(rows, HistoryRow{
			Date:           rec[0],
			WaterML:        water,
			CaffeineMG:     caffeine,
			TasksCompleted: done,
			Note:           rec[4],
		})
	}
	return rows, nil
}

// UpsertDay records the totals for one date. An existing row for the date is
// updated in place; its note is preserved when the new note is empty. A new
// date is appended.
func (h *HistoryLog) UpsertDay(row HistoryRow) error {
	rows, err := h.Rows()
	if err != nil {
		return err
	}

	updated := false
	for i := range rows {
		if rows[i].Date == row.Date {
			if row.Note == "" {
				row.Note = rows[i].Note
			}
			rows[i] = row
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, row)
	}

	return h.write(rows)
}

func (h *HistoryLog) write(rows []HistoryRow) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, constants.HistoryFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(constants.HistoryHeader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Date,
			strconv.Itoa(r.WaterML),
			strconv.Itoa(r.CaffeineMG),
			strconv.Itoa(r.TasksCompleted),
			r.Note,
		}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush history log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp history file: %w", err)
	}

	if err := os.Rename(tmpName, h.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history log: %w", err)
	}
	return nil
}
