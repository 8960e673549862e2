package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/models"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := New(t.TempDir())

	agg := s.Load()

	if agg.SetupComplete {
		t.Error("fresh aggregate should not be setup complete")
	}
	if len(agg.DailyState.Tasks) != constants.TaskSlotCount {
		t.Errorf("expected %d task slots, got %d", constants.TaskSlotCount, len(agg.DailyState.Tasks))
	}
	if s.Recovered {
		t.Error("missing file is not a recovery case")
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	agg := s.Load()

	if agg == nil {
		t.Fatal("Load returned nil for corrupt file")
	}
	if !s.Recovered {
		t.Error("corrupt file should set Recovered")
	}
	if agg.UserProfile.ContainerSize != constants.DefaultContainerML {
		t.Errorf("expected default container size, got %d", agg.UserProfile.ContainerSize)
	}
	if _, err := os.Stat(s.Path() + ".corrupt"); err != nil {
		t.Errorf("corrupt file should be preserved with .corrupt suffix: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	agg := models.DefaultAggregate()
	agg.UserProfile.Name = "Sam"
	agg.UserProfile.City = "Lisbon"
	agg.DailyState.WaterIntake = 750
	agg.DailyState.Tasks[0] = models.TaskSlot{ID: 1, Text: "write report", Done: true, Budget: "45m"}
	agg.PersistentData.Habits = []string{"code", "no_sugar"}
	agg.DailyState.HabitStatus = map[string]bool{"code": true, "no_sugar": false}
	agg.SetupComplete = true

	if err := s.Save(agg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := New(dir).Load()
	if !reflect.DeepEqual(agg, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", agg, loaded)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.Save(models.DefaultAggregate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != constants.StateFileName {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	first := models.DefaultAggregate()
	first.UserProfile.Name = "first"
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}

	second := models.DefaultAggregate()
	second.UserProfile.Name = "second"
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("state file is not valid JSON after overwrite: %v", err)
	}
}

func TestLoadCopiesLegacyFileForward(t *testing.T) {
	dir := t.TempDir()

	// The legacy path is relative to the working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	workDir := t.TempDir()
	if err := os.Chdir(workDir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	legacy := map[string]interface{}{
		"user_profile": map[string]interface{}{
			"name": "legacy-user",
			"city": "Berlin",
		},
		"setup_complete": true,
	}
	data, _ := json.Marshal(legacy)
	if err := os.WriteFile(filepath.Join(workDir, constants.LegacyStateFile), data, 0600); err != nil {
		t.Fatal(err)
	}

	agg := New(dir).Load()

	if agg.UserProfile.Name != "legacy-user" {
		t.Errorf("legacy profile not carried forward, got %q", agg.UserProfile.Name)
	}
	if !agg.SetupComplete {
		t.Error("legacy setup_complete not carried forward")
	}
}
