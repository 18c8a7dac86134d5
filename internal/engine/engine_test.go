package engine

import (
	"errors"
	"path/filepath"
	"testing"

	"taskmaster/models"
	"taskmaster/store"
	"taskmaster/types"
)

// fakeStore keeps tasks in memory and can be told to fail saves.
type fakeStore struct {
	tasks    []models.Task
	failSave bool
	saves    int
}

func (f *fakeStore) Load() error { return nil }

func (f *fakeStore) Save() error {
	if f.failSave {
		return &types.PersistenceError{Op: "save", Path: "fake", Err: errors.New("disk full")}
	}
	f.saves++
	return nil
}

func (f *fakeStore) Tasks() []models.Task {
	out := make([]models.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

func (f *fakeStore) Len() int { return len(f.tasks) }

func (f *fakeStore) Append(task models.Task) { f.tasks = append(f.tasks, task) }

func (f *fakeStore) At(index int) (models.Task, error) {
	if index < 1 || index > len(f.tasks) {
		return models.Task{}, &types.IndexError{Index: index, Len: len(f.tasks)}
	}
	return f.tasks[index-1], nil
}

func (f *fakeStore) Mutate(index int, fn func(*models.Task)) (models.Task, error) {
	if index < 1 || index > len(f.tasks) {
		return models.Task{}, &types.IndexError{Index: index, Len: len(f.tasks)}
	}
	fn(&f.tasks[index-1])
	return f.tasks[index-1], nil
}

func (f *fakeStore) Remove(index int) (models.Task, error) {
	if index < 1 || index > len(f.tasks) {
		return models.Task{}, &types.IndexError{Index: index, Len: len(f.tasks)}
	}
	removed := f.tasks[index-1]
	f.tasks = append(f.tasks[:index-1], f.tasks[index:]...)
	return removed, nil
}

func (f *fakeStore) ClearCompleted() int {
	kept := f.tasks[:0]
	for _, t := range f.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	cleared := len(f.tasks) - len(kept)
	f.tasks = kept
	return cleared
}

func (f *fakeStore) Close() error { return nil }

func newTestEngine() (*Engine, *fakeStore) {
	fs := &fakeStore{}
	return New(fs), fs
}

func TestAddAppendsPendingMediumTask(t *testing.T) {
	eng, fs := newTestEngine()

	res, err := eng.Add("  Buy groceries  ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if fs.Len() != 1 {
		t.Fatalf("list length = %d, want 1", fs.Len())
	}
	task := fs.tasks[0]
	if task.Description != "Buy groceries" {
		t.Errorf("Description = %q, want trimmed %q", task.Description, "Buy groceries")
	}
	if task.Completed || task.Priority != models.PriorityMedium {
		t.Errorf("new task = %+v, want pending medium", task)
	}
	if res.Message == "" || res.Warning != "" {
		t.Errorf("unexpected result: %+v", res)
	}
	if fs.saves != 1 {
		t.Errorf("saves = %d, want 1 (save after every mutation)", fs.saves)
	}
}

func TestAddEmptyDescription(t *testing.T) {
	eng, fs := newTestEngine()

	for _, desc := range []string{"", "   ", "\t"} {
		_, err := eng.Add(desc)
		var verr *types.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Add(%q) error = %v, want *types.ValidationError", desc, err)
		}
	}
	if fs.Len() != 0 || fs.saves != 0 {
		t.Error("failed Add must not mutate or save")
	}
}

func TestCompleteMarksExactlyOne(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("one")
	_, _ = eng.Add("two")
	_, _ = eng.Add("three")

	if _, err := eng.Complete(2); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	for i, task := range fs.tasks {
		want := i == 1
		if task.Completed != want {
			t.Errorf("task %d completed = %v, want %v", i+1, task.Completed, want)
		}
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("one")
	_, _ = eng.Add("two")
	_, _ = eng.Add("three")

	if _, err := eng.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fs.Len() != 2 {
		t.Fatalf("length = %d, want 2", fs.Len())
	}
	if fs.tasks[0].Description != "one" || fs.tasks[1].Description != "three" {
		t.Errorf("tasks after delete = %+v", fs.tasks)
	}
}

func TestChange(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("old text")

	res, err := eng.Change(1, "new text")
	if err != nil {
		t.Fatalf("Change failed: %v", err)
	}
	if fs.tasks[0].Description != "new text" {
		t.Errorf("Description = %q, want %q", fs.tasks[0].Description, "new text")
	}
	if res.Message == "" {
		t.Error("Change should report old and new description")
	}

	if _, err := eng.Change(1, "   "); err == nil {
		t.Error("empty new description should fail")
	}
	if _, err := eng.Change(5, "x"); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func TestUpDownSaturationAndRoundTrip(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("task")

	// Medium round-trips through up then down.
	_, _ = eng.Up(1)
	_, _ = eng.Down(1)
	if got := fs.tasks[0].Priority; got != models.PriorityMedium {
		t.Errorf("up then down = %s, want medium", got)
	}

	// Up is a no-op at the ceiling, not an error.
	_, _ = eng.Up(1)
	if _, err := eng.Up(1); err != nil {
		t.Errorf("Up at high should be a no-op, got error %v", err)
	}
	if got := fs.tasks[0].Priority; got != models.PriorityHigh {
		t.Errorf("priority = %s, want high", got)
	}

	// Down is a no-op at the floor.
	_, _ = eng.Down(1)
	_, _ = eng.Down(1)
	if _, err := eng.Down(1); err != nil {
		t.Errorf("Down at low should be a no-op, got error %v", err)
	}
	if got := fs.tasks[0].Priority; got != models.PriorityLow {
		t.Errorf("priority = %s, want low", got)
	}
}

func TestClearRemovesOnlyCompleted(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("one")
	_, _ = eng.Add("two")
	_, _ = eng.Add("three")
	_, _ = eng.Complete(1)
	_, _ = eng.Complete(3)

	res, err := eng.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if fs.Len() != 1 || fs.tasks[0].Description != "two" {
		t.Errorf("tasks after clear = %+v, want only 'two'", fs.tasks)
	}
	if res.Message == "" {
		t.Error("Clear should report how many tasks were removed")
	}

	// Second clear is a no-op.
	if _, err := eng.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	if fs.Len() != 1 {
		t.Error("second Clear removed tasks")
	}
}

func TestIndexErrorsLeaveListUnmodified(t *testing.T) {
	eng, fs := newTestEngine()
	_, _ = eng.Add("only")
	before := fs.Tasks()

	for _, index := range []int{0, 2, -3} {
		for name, op := range map[string]func(int) (Result, error){
			"Complete": eng.Complete,
			"Delete":   eng.Delete,
			"Up":       eng.Up,
			"Down":     eng.Down,
		} {
			_, err := op(index)
			var ierr *types.IndexError
			if !errors.As(err, &ierr) {
				t.Errorf("%s(%d) error = %v, want *types.IndexError", name, index, err)
			}
		}
	}

	after := fs.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("list modified by failed commands: %+v", after)
	}
}

func TestSaveFailureWarnsButKeepsMutation(t *testing.T) {
	eng, fs := newTestEngine()
	fs.failSave = true

	res, err := eng.Add("still added")
	if err != nil {
		t.Fatalf("Add should succeed in memory: %v", err)
	}
	if res.Warning == "" {
		t.Error("failed save should surface a warning")
	}
	if fs.Len() != 1 {
		t.Error("mutation must not be rolled back on save failure")
	}
}

// TestScenarioAgainstFileStore runs the end-to-end transcript against the
// real file backend: add, prioritize, complete, clear.
func TestScenarioAgainstFileStore(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "tasks.json")
	s, err := store.NewFileTaskStore(filePath, store.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	eng := New(s)

	if _, err := eng.Add("Buy groceries"); err != nil {
		t.Fatal(err)
	}
	task := eng.Tasks()[0]
	if task.Priority.Glyph() != "◆" || task.StatusGlyph() != "[·]" {
		t.Errorf("fresh task glyphs = %s %s, want ◆ [·]", task.Priority.Glyph(), task.StatusGlyph())
	}

	if _, err := eng.Up(1); err != nil {
		t.Fatal(err)
	}
	if glyph := eng.Tasks()[0].Priority.Glyph(); glyph != "▲" {
		t.Errorf("after up, glyph = %s, want ▲", glyph)
	}

	if _, err := eng.Complete(1); err != nil {
		t.Fatal(err)
	}
	if glyph := eng.Tasks()[0].StatusGlyph(); glyph != "[✓]" {
		t.Errorf("after complete, glyph = %s, want [✓]", glyph)
	}

	if _, err := eng.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(eng.Tasks()) != 0 {
		t.Errorf("after clear, %d tasks remain", len(eng.Tasks()))
	}

	// Each mutation saved; a reopened store sees the final state.
	reopened, err := store.NewFileTaskStore(filePath, store.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 0 {
		t.Errorf("persisted list has %d tasks, want 0", reopened.Len())
	}
}
