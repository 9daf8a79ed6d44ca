package theme

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

const configFileName = "theme_config.json"

// ErrThemeNotFound marks an operation against an unknown theme id.
var ErrThemeNotFound = errors.New("theme not found")

// InstallError wraps any failure of a theme install: malformed archive,
// unreadable entry, or schema validation.
type InstallError struct {
	Reason string
	Err    error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("install theme: %s: %v", e.Reason, e.Err)
	}
	return "install theme: " + e.Reason
}

func (e *InstallError) Unwrap() error { return e.Err }

func installErr(reason string, err error) error {
	return &InstallError{Reason: reason, Err: err}
}

// ActiveStore persists which theme is active across process restarts. The
// production implementation is backed by the settings store.
type ActiveStore interface {
	ActiveThemeID() (string, error)
	SetActiveThemeID(id string) error
}

// Repository owns the on-disk set of installed theme documents and the
// active-theme snapshot. It is the sole writer of the theme directory tree.
//
// The active theme is shared-read, single-writer: activation swaps an
// immutable document pointer under the lock, so a translation that already
// holds the previous snapshot keeps reading it untorn.
type Repository struct {
	dataDir string
	store   ActiveStore

	mu     sync.RWMutex
	active *HyperTheme

	images *cache.Cache
}

func NewRepository(dataDir string, store ActiveStore) *Repository {
	return &Repository{
		dataDir: dataDir,
		store:   store,
		images:  cache.New(30*time.Minute, 10*time.Minute),
	}
}

// Resync restores the persisted activation state on process start. A stored
// id whose theme no longer exists on disk is dropped.
func (r *Repository) Resync() {
	id, err := r.store.ActiveThemeID()
	if err != nil {
		log.Println("Failed to read active theme id, starting with system default:", err)
		return
	}
	if id == "" {
		return
	}
	if err := r.ActivateTheme(id); err != nil {
		log.Printf("Stored active theme %q is gone, resetting to system default: %v", id, err)
		if err := r.store.SetActiveThemeID(""); err != nil {
			log.Println("Failed to clear active theme id:", err)
		}
	}
}

// InstallTheme unpacks and validates a theme package. The document and its
// resource files are installed as one atomic unit: everything is staged in a
// temporary directory first and only renamed into place once complete, so a
// half-written theme never becomes visible. Returns the installed theme id.
func (r *Repository) InstallTheme(data []byte) (string, error) {
	if len(data) == 0 {
		return "", installErr("empty theme file", nil)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", installErr("cannot open zip archive", err)
	}

	var configFile *zip.File
	for _, f := range zr.File {
		if f.Name == configFileName {
			configFile = f
			break
		}
	}
	if configFile == nil {
		return "", installErr(configFileName+" is missing from the archive", nil)
	}

	doc, err := readZipTheme(configFile)
	if err != nil {
		return "", installErr("cannot parse "+configFileName, err)
	}
	if err := doc.Validate(); err != nil {
		return "", installErr("invalid theme config", err)
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return "", installErr("cannot create theme storage", err)
	}

	staging, err := os.MkdirTemp(r.dataDir, ".install-*")
	if err != nil {
		return "", installErr("cannot create staging directory", err)
	}
	rollback := func() { os.RemoveAll(staging) }

	for _, f := range zr.File {
		path := filepath.Join(staging, f.Name)

		// Guard against path traversal out of the staging directory.
		if !strings.HasPrefix(path, filepath.Clean(staging)+string(os.PathSeparator)) {
			continue
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(path, f.FileInfo().Mode())
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			rollback()
			return "", installErr("cannot create directory", err)
		}

		if err := extractZipFile(f, path); err != nil {
			rollback()
			return "", installErr("cannot extract "+f.Name, err)
		}
	}

	// Rewrite the document so the assigned id is durable.
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		rollback()
		return "", installErr("cannot encode theme config", err)
	}
	if err := os.WriteFile(filepath.Join(staging, configFileName), encoded, 0644); err != nil {
		rollback()
		return "", installErr("cannot write theme config", err)
	}

	final := filepath.Join(r.dataDir, doc.ID)
	if _, err := os.Stat(final); err == nil {
		// Reinstalling an existing id replaces it.
		if err := os.RemoveAll(final); err != nil {
			rollback()
			return "", installErr("cannot replace existing theme", err)
		}
	}
	if err := os.Rename(staging, final); err != nil {
		rollback()
		return "", installErr("cannot finalize install", err)
	}

	r.images.Flush()
	return doc.ID, nil
}

func readZipTheme(f *zip.File) (*HyperTheme, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var doc HyperTheme
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func extractZipFile(f *zip.File, path string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.FileInfo().Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

// AvailableThemes enumerates every installed theme. An entry whose document
// fails to parse is skipped with a log line; it never fails the listing.
func (r *Repository) AvailableThemes() []HyperTheme {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil
	}

	var themes []HyperTheme
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		doc, err := r.loadTheme(entry.Name())
		if err != nil {
			log.Printf("Skipping unreadable theme %q: %v", entry.Name(), err)
			continue
		}
		themes = append(themes, *doc)
	}
	return themes
}

func (r *Repository) loadTheme(id string) (*HyperTheme, error) {
	// The id doubles as the storage directory name; reject anything that
	// could point outside the theme tree.
	if !isValidThemeID(id) {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(r.dataDir, id, configFileName))
	if err != nil {
		return nil, err
	}
	var doc HyperTheme
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ActivateTheme marks a theme as active and persists the choice. An empty id
// deactivates theming entirely (system default rendering). Idempotent.
func (r *Repository) ActivateTheme(id string) error {
	if id == "" {
		r.mu.Lock()
		r.active = nil
		r.mu.Unlock()
		r.images.Flush()
		return r.store.SetActiveThemeID("")
	}

	doc, err := r.loadTheme(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}

	r.mu.Lock()
	r.active = doc
	r.mu.Unlock()
	r.images.Flush()
	return r.store.SetActiveThemeID(id)
}

// ActiveTheme returns the current active theme snapshot, or nil for system
// default. Callers must treat the document as immutable.
func (r *Repository) ActiveTheme() *HyperTheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// DeleteTheme removes a theme and its resources. Deleting the active theme
// deactivates it first so no translation can observe a half-removed theme.
func (r *Repository) DeleteTheme(id string) error {
	if !isValidThemeID(id) {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	dir := filepath.Join(r.dataDir, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}

	r.mu.Lock()
	if r.active != nil && r.active.ID == id {
		r.active = nil
		if err := r.store.SetActiveThemeID(""); err != nil {
			log.Println("Failed to clear active theme id:", err)
		}
	}
	r.mu.Unlock()

	r.images.Flush()
	return os.RemoveAll(dir)
}

// ExportTheme re-zips an installed theme into a shareable archive with the
// same structure the import format expects.
func (r *Repository) ExportTheme(id string) ([]byte, error) {
	if !isValidThemeID(id) {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	dir := filepath.Join(r.dataDir, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("export theme %s: %w", id, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export theme %s: %w", id, err)
	}
	return buf.Bytes(), nil
}

// ResourceImage resolves a ThemeResource to a decoded image per its type.
// Resolution never fails loudly: any miss or decode error yields nil and the
// caller falls back to its own default.
func (r *Repository) ResourceImage(res ThemeResource) image.Image {
	switch res.Type {
	case ResourcePresetDrawable:
		return PresetImage(res.Value)
	case ResourceLocalFile:
		return r.localFileImage(res.Value)
	case ResourceURIContent:
		// Content locators only resolve on the device; the bridge has no
		// access to them.
		return nil
	default:
		return nil
	}
}

// localFileImage reads a resource file from the active theme's private
// directory, memoizing decoded images.
func (r *Repository) localFileImage(value string) image.Image {
	active := r.ActiveTheme()
	if active == nil {
		return nil
	}

	cacheKey := active.ID + "/" + value
	if cached, ok := r.images.Get(cacheKey); ok {
		img, _ := cached.(image.Image)
		return img
	}

	dir := filepath.Join(r.dataDir, active.ID)
	path := filepath.Join(dir, filepath.FromSlash(value))
	if !strings.HasPrefix(path, filepath.Clean(dir)+string(os.PathSeparator)) {
		return nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil
	}
	r.images.SetDefault(cacheKey, img)
	return img
}
