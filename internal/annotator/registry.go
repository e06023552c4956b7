package annotator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// Annotate runs text through the model for language, starting it on first use.
func (r *implRegistry) Annotate(ctx context.Context, text string, language lang.Language) ([]Sentence, error) {
	e, ok := r.entries[language]
	if !ok {
		return nil, &Error{Language: language, Err: ErrUnsupportedLanguage}
	}

	w, err := r.load(ctx, language, e)
	if err != nil {
		return nil, &Error{Language: language, Err: err}
	}

	sentences, err := w.annotate(ctx, text)
	if err != nil {
		return nil, &Error{Language: language, Err: err}
	}

	r.logger.Debug(ctx, "Annotated %d chars of %s text into %d sentences", len(text), language, len(sentences))
	return sentences, nil
}

// load starts the worker on first use. A failed start is remembered and
// not retried.
func (r *implRegistry) load(ctx context.Context, language lang.Language, e *entry) (*worker, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	if !e.loaded {
		e.worker, e.err = r.start(ctx, language, e.model)
		e.loaded = true
	}
	return e.worker, e.err
}

// Close stops every worker that was started. Later calls to Annotate fail
// with ErrClosed.
func (r *implRegistry) Close() error {
	var errs []error
	for l, e := range r.entries {
		e.mu.Lock()
		w := e.worker
		e.worker = nil
		e.closed = true
		e.mu.Unlock()

		if w == nil {
			continue
		}
		if err := w.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s worker: %w", l, err))
		}
	}
	return errors.Join(errs...)
}

func (r *implRegistry) start(ctx context.Context, language lang.Language, model string) (*worker, error) {
	if err := r.extractScript(); err != nil {
		return nil, err
	}

	r.starts.Add(1)
	r.logger.Info(ctx, "Loading %s model %s (first use)", language, model)

	args := append(append([]string{}, r.args...), r.script)
	w, err := startWorker(r.python, args, r.env, model, r.startupTimeout)
	if err != nil {
		return nil, fmt.Errorf("start %s worker: %w", model, err)
	}

	r.logger.Info(ctx, "Model %s ready", model)
	return w, nil
}

// extractScript writes the embedded worker script next to the configured
// script dir, once per process.
func (r *implRegistry) extractScript() error {
	r.scriptOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(r.script), 0755); err != nil {
			r.scriptErr = fmt.Errorf("create script dir: %w", err)
			return
		}
		if err := os.WriteFile(r.script, []byte(workerScript), 0644); err != nil {
			r.scriptErr = fmt.Errorf("write worker script: %w", err)
		}
	})
	return r.scriptErr
}
