package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed packs/*.json
var builtinPacks embed.FS

// Library is an in-memory activity collection loaded from pack files.
type Library struct {
	activities []*Activity
	byID       map[string]*Activity
}

// Issue is one problem found while checking a pack file.
type Issue struct {
	File       string
	ActivityID string
	Message    string
}

func (i Issue) String() string {
	if i.ActivityID == "" {
		return fmt.Sprintf("%s: %s", i.File, i.Message)
	}
	return fmt.Sprintf("%s: activity %q: %s", i.File, i.ActivityID, i.Message)
}

// LoadBuiltin loads the packs compiled into the binary.
func LoadBuiltin() (*Library, error) {
	lib := newLibrary()
	if err := lib.loadFS(builtinPacks, "packs"); err != nil {
		return nil, err
	}
	return lib, nil
}

// LoadDir loads every *.json pack under dir on top of the builtin
// packs. Activities sharing an id override earlier ones, so a local
// pack can patch builtin content.
func LoadDir(dir string) (*Library, error) {
	lib, err := LoadBuiltin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return lib, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return lib, nil
	}
	if err := lib.loadFS(os.DirFS(dir), "."); err != nil {
		return nil, err
	}
	return lib, nil
}

func newLibrary() *Library {
	return &Library{byID: make(map[string]*Activity)}
}

func (l *Library) loadFS(fsys fs.FS, root string) error {
	files, err := packFiles(fsys, root)
	if err != nil {
		return err
	}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read pack %s: %w", name, err)
		}
		activities, err := decodePack(data)
		if err != nil {
			return fmt.Errorf("pack %s: %w", name, err)
		}
		for _, a := range activities {
			l.add(a)
		}
	}
	return nil
}

func packFiles(fsys fs.FS, root string) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// decodePack validates each entry against the activity schema before
// decoding. The whole file is rejected on the first invalid entry.
func decodePack(data []byte) ([]Activity, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("pack must be a JSON array: %w", err)
	}
	activities := make([]Activity, 0, len(raws))
	for i, raw := range raws {
		if err := validateActivityJSON(raw); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		var a Activity
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// add inserts an activity, replacing any previous one with the same id.
func (l *Library) add(a Activity) {
	if prev, ok := l.byID[a.ID]; ok {
		*prev = a
		return
	}
	stored := &a
	l.activities = append(l.activities, stored)
	l.byID[a.ID] = stored
}

// Len is the number of distinct activities loaded.
func (l *Library) Len() int { return len(l.activities) }

// ByID returns the activity with the given id, or nil.
func (l *Library) ByID(id string) *Activity {
	return l.byID[id]
}

// ForBand returns the playable activities for an age band.
func (l *Library) ForBand(band AgeBand) []*Activity {
	var out []*Activity
	for _, a := range l.activities {
		if a.AgeBand == band && a.IsPlayable() {
			out = append(out, a)
		}
	}
	return out
}

// All returns every loaded activity, playable or not.
func (l *Library) All() []*Activity {
	out := make([]*Activity, 0, len(l.activities))
	out = append(out, l.activities...)
	return out
}

// CheckDir runs the pack checks over a content directory without
// loading it into a library: schema conformance plus playability. Used
// by the content validate command. A missing directory is not an error;
// it reports on whatever files exist.
func CheckDir(dir string) ([]Issue, error) {
	var issues []Issue
	fsys := os.DirFS(dir)
	files, err := packFiles(fsys, ".")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read pack %s: %w", name, err)
		}
		issues = append(issues, checkPack(filepath.Join(dir, name), data)...)
	}
	return issues, nil
}

// CheckBuiltin runs the same checks over the embedded packs.
func CheckBuiltin() ([]Issue, error) {
	var issues []Issue
	files, err := packFiles(builtinPacks, "packs")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		data, err := fs.ReadFile(builtinPacks, name)
		if err != nil {
			return nil, err
		}
		issues = append(issues, checkPack(name, data)...)
	}
	return issues, nil
}

func checkPack(file string, data []byte) []Issue {
	var issues []Issue
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return []Issue{{File: file, Message: fmt.Sprintf("pack must be a JSON array: %v", err)}}
	}
	for i, raw := range raws {
		var a Activity
		if err := validateActivityJSON(raw); err != nil {
			issues = append(issues, Issue{File: file, Message: fmt.Sprintf("entry %d: %v", i, err)})
			continue
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			issues = append(issues, Issue{File: file, Message: fmt.Sprintf("entry %d: %v", i, err)})
			continue
		}
		if !a.IsPlayable() {
			issues = append(issues, Issue{File: file, ActivityID: a.ID, Message: "not playable (placeholder choices, missing prompt, or bad correct index)"})
		}
	}
	return issues
}
