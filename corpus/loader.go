package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
)

// Source file names inside the data directory.
const (
	ipcFile  = "ipc.json"
	crpcFile = "crpc.json"
)

// Loader reads the raw statutory JSON exports and produces the normalized corpus.
type Loader struct {
	dataDir string
	logger  *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a loader reading from the given data directory.
func NewLoader(dataDir string, opts ...Option) *Loader {
	l := &Loader{
		dataDir: dataDir,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads both statute files and returns the combined normalized corpus.
// A missing file contributes zero sections and is not an error; a file that
// exists but cannot be parsed is an error, since serving with a silently
// truncated corpus would be worse than failing startup.
func (l *Loader) Load() ([]core.LegalSection, error) {
	ipc, err := l.loadSource(ipcFile, normalizeIPC)
	if err != nil {
		return nil, err
	}

	crpc, err := l.loadSource(crpcFile, normalizeCrPC)
	if err != nil {
		return nil, err
	}

	sections := make([]core.LegalSection, 0, len(ipc)+len(crpc))
	sections = append(sections, ipc...)
	sections = append(sections, crpc...)

	l.logger.Info("loaded legal corpus", "ipc", len(ipc), "crpc", len(crpc))
	return sections, nil
}

// loadSource reads one raw JSON export and normalizes every record with fn.
func (l *Loader) loadSource(name string, fn func(map[string]any) core.LegalSection) ([]core.LegalSection, error) {
	path := filepath.Join(l.dataDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("statute file missing, skipping source", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	sections := make([]core.LegalSection, 0, len(raw))
	for _, record := range raw {
		sections = append(sections, fn(record))
	}
	return sections, nil
}
