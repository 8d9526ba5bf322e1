// Package snapshot compares values against JSON files recorded under testdata
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	calls   = make(map[string]int)
	callsMu sync.Mutex
)

// ValidateSnapshot performs snapshot testing
// The first call for a test records obj as testdata/<test name>-<n>.json, later runs must match it
// Delete the file to record a new snapshot
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := filename(t.Name())
	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, actual)
			return true
		}

		panic(err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func filename(testName string) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)

	callsMu.Lock()
	call := calls[name]
	calls[name] = call + 1
	callsMu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func create(filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		panic(err)
	}
}
