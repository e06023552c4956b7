package annotator

import (
	_ "embed"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

//go:embed spacy_worker.py
var workerScript string

type implRegistry struct {
	python         string
	args           []string
	env            []string
	script         string
	startupTimeout time.Duration
	logger         logger.Logger

	// entries is fixed at construction; only the values load lazily.
	entries    map[lang.Language]*entry
	scriptOnce sync.Once
	scriptErr  error
	starts     atomic.Int32
}

// entry holds one language's worker. mu is held while the worker starts, so
// Close waits for a start in flight and nothing starts after Close.
type entry struct {
	model string

	mu     sync.Mutex
	loaded bool
	closed bool
	worker *worker
	err    error
}

// New creates a Registry that runs one spaCy worker process per language.
func New(cfg config.AnnotatorConfig, log logger.Logger) Registry {
	entries := make(map[lang.Language]*entry, len(cfg.Models))
	for code, model := range cfg.Models {
		l, err := lang.Parse(code)
		if err != nil || model == "" {
			continue
		}
		entries[l] = &entry{model: model}
	}

	return &implRegistry{
		python:         cfg.Python,
		script:         filepath.Join(cfg.ScriptDir, "spacy_worker.py"),
		startupTimeout: time.Duration(cfg.StartupTimeoutSeconds) * time.Second,
		logger:         log,
		entries:        entries,
	}
}
