// Package snapshot provides snapshot assertions: a value is compared
// against the copy stored on disk next to the test file, and mismatches
// fail the test. Running with VERITY_UPDATE_SNAPSHOTS=1 rewrites the
// stored copies instead.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
)

const (
	// Dir is the directory name snapshots are stored under.
	Dir = ".snapshots"
	// Ext is the file extension for snapshot files.
	Ext = ".snap.json"
	// UpdateEnv enables update mode when set to a non-empty value.
	UpdateEnv = "VERITY_UPDATE_SNAPSHOTS"
)

// TestingT is the testing interface snapshot assertions need. The test
// name keys the snapshot within its file.
type TestingT interface {
	failure.TestingT
	Name() string
}

type tHelper interface{ Helper() }

// Manager handles snapshot storage and comparison.
type Manager struct {
	updateMode bool
	cache      map[string]map[string]any // snapshot file -> {key -> value}
}

// NewManager creates a snapshot manager.
func NewManager(updateMode bool) *Manager {
	return &Manager{
		updateMode: updateMode,
		cache:      make(map[string]map[string]any),
	}
}

// Result is the outcome of one snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   any
	Actual     any
	IsNew      bool
	WasUpdated bool
}

// Matches asserts value equals the stored snapshot for the calling
// test. name distinguishes multiple snapshots within one test and may
// be empty for a single anonymous snapshot.
func Matches(t TestingT, name string, value any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	_, file, _, ok := runtime.Caller(1)
	if !ok {
		failure.Report(t, failure.New("snapshot: could not determine caller file"))
		return
	}

	res := defaultManager().Compare(file, t.Name(), name, value)
	if !res.Passed {
		f := failure.New("snapshot mismatch: %s", res.Message)
		if res.Expected != nil {
			f.WithDetail("stored: %v", res.Expected)
			f.WithDetail("actual: %v", res.Actual)
		}
		f.WithDetail("run with %s=1 to update", UpdateEnv)
		failure.Report(t, f)
	}
}

var global *Manager

func defaultManager() *Manager {
	if global == nil {
		global = NewManager(os.Getenv(UpdateEnv) != "")
	}
	return global
}

// SetManager replaces the package-level manager (useful for tests).
func SetManager(m *Manager) {
	global = m
}

// Compare compares value against the snapshot stored for testFile, and
// in update mode rewrites the snapshot on mismatch.
func (m *Manager) Compare(testFile, testName, snapshotName string, value any) *Result {
	result := &Result{Actual: value}

	file := m.snapshotFilePath(testFile)
	key := snapshotKey(testName, snapshotName, value)

	snapshots, err := m.load(file)
	if err != nil {
		result.Message = fmt.Sprintf("failed to load snapshots: %v", err)
		return result
	}

	stored, exists := snapshots[key]
	if !exists {
		if m.updateMode {
			snapshots[key] = value
			if err := m.save(file, snapshots); err != nil {
				result.Message = fmt.Sprintf("failed to save snapshot: %v", err)
				return result
			}
			result.Passed = true
			result.IsNew = true
			result.Expected = value
			return result
		}
		result.Message = "no stored snapshot for " + key
		return result
	}

	result.Expected = stored
	if jsonEqual(stored, value) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		snapshots[key] = value
		if err := m.save(file, snapshots); err != nil {
			result.Message = fmt.Sprintf("failed to update snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		return result
	}

	result.Message = "stored value differs"
	return result
}

// snapshotFilePath maps a test source file to its snapshot file:
// foo_test.go -> .snapshots/foo_test.snap.json.
func (m *Manager) snapshotFilePath(testFile string) string {
	dir := filepath.Dir(testFile)
	base := filepath.Base(testFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, Dir, name+Ext)
}

func snapshotKey(testName, snapshotName string, value any) string {
	if snapshotName != "" {
		return testName + "::" + snapshotName
	}
	if testName != "" {
		return testName
	}
	hash := sha256.Sum256([]byte(fmt.Sprintf("%v", value)))
	return "anon_" + hex.EncodeToString(hash[:8])
}

func (m *Manager) load(path string) (map[string]any, error) {
	if cached, ok := m.cache[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			snapshots := make(map[string]any)
			m.cache[path] = snapshots
			return snapshots, nil
		}
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}

	m.cache[path] = snapshots
	return snapshots, nil
}

func (m *Manager) save(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	m.cache[path] = snapshots
	return os.WriteFile(path, data, 0o644)
}

// jsonEqual compares values after a JSON round trip so stored numbers
// (always float64) match live ints and structs match their decoded map
// form.
func jsonEqual(a, b any) bool {
	aJSON, errA := json.Marshal(a)
	bJSON, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}

	var aVal, bVal any
	if err := json.Unmarshal(aJSON, &aVal); err != nil {
		return false
	}
	if err := json.Unmarshal(bJSON, &bVal); err != nil {
		return false
	}
	return reflect.DeepEqual(aVal, bVal)
}
