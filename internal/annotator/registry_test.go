package annotator

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

const helperEnv = "DIGEST_WANT_WORKER_PROCESS"

// TestWorkerProcess is not a real test: it stands in for the spaCy worker
// when the test binary re-executes itself.
func TestWorkerProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	defer os.Exit(0)

	in := bufio.NewReader(os.Stdin)
	line, _ := in.ReadBytes('\n')
	var cfg struct {
		Model string `json:"model"`
	}
	json.Unmarshal(line, &cfg)
	if cfg.Model == "missing_model" {
		fmt.Println(`{"status":"error","error":"can't find model 'missing_model'"}`)
		return
	}
	fmt.Println(`{"status":"ready"}`)

	for {
		line, err := in.ReadBytes('\n')
		if err != nil {
			return
		}
		var req workerRequest
		json.Unmarshal(line, &req)
		if req.Text == "explode" {
			fmt.Println(`{"error":"tokenizer failure"}`)
			continue
		}

		var resp workerResponse
		for _, s := range strings.Split(req.Text, ". ") {
			sent := Sentence{Text: s}
			for _, w := range strings.Fields(s) {
				sent.Tokens = append(sent.Tokens, Token{Text: w, POS: "X", Dep: cfg.Model})
			}
			resp.Sentences = append(resp.Sentences, sent)
		}
		out, _ := json.Marshal(resp)
		fmt.Println(string(out))
	}
}

func newTestRegistry(t *testing.T, models map[string]string) *implRegistry {
	t.Helper()

	r := New(config.AnnotatorConfig{
		Python:                os.Args[0],
		ScriptDir:             t.TempDir(),
		Models:                models,
		StartupTimeoutSeconds: 10,
	}, logger.Discard()).(*implRegistry)
	r.args = []string{"-test.run=^TestWorkerProcess$", "--"}
	r.env = append(os.Environ(), helperEnv+"=1")

	t.Cleanup(func() { r.Close() })
	return r
}

func TestAnnotate(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test", "fr": "fr_test"})
	ctx := context.Background()

	sentences, err := r.Annotate(ctx, "The cat sleeps. The dog barks", lang.English)
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t, 0, sentences[0].Index)
	assert.Equal(t, 1, sentences[1].Index)
	assert.Equal(t, "The dog barks", sentences[1].Text)
	require.Len(t, sentences[0].Tokens, 3)
	assert.Equal(t, Token{Text: "cat", POS: "X", Dep: "en_test"}, sentences[0].Tokens[1])

	fr, err := r.Annotate(ctx, "Le chat dort", lang.French)
	require.NoError(t, err)
	assert.Equal(t, "fr_test", fr[0].Tokens[0].Dep)

	_, err = os.Stat(r.script)
	assert.NoError(t, err, "worker script should be extracted")
}

func TestAnnotateLoadsModelOnce(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test"})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Annotate(context.Background(), "a b c", lang.English)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), r.starts.Load())
}

func TestAnnotateUnsupportedLanguage(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test"})

	_, err := r.Annotate(context.Background(), "Der Hund", lang.German)
	var annErr *Error
	require.ErrorAs(t, err, &annErr)
	assert.Equal(t, lang.German, annErr.Language)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	assert.Equal(t, int32(0), r.starts.Load())
}

func TestAnnotateMissingModel(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"es": "missing_model"})

	_, err := r.Annotate(context.Background(), "El perro", lang.Spanish)
	var annErr *Error
	require.ErrorAs(t, err, &annErr)
	assert.Contains(t, err.Error(), "missing_model")

	// The failed load is remembered, not retried.
	_, err = r.Annotate(context.Background(), "El perro", lang.Spanish)
	require.Error(t, err)
	assert.Equal(t, int32(1), r.starts.Load())
}

func TestAnnotateWorkerError(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test"})

	_, err := r.Annotate(context.Background(), "explode", lang.English)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenizer failure")

	// The worker keeps serving after a per-request error.
	sentences, err := r.Annotate(context.Background(), "still alive", lang.English)
	require.NoError(t, err)
	assert.Len(t, sentences, 1)
}

func TestAnnotateCanceledContext(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test"})
	ctx := context.Background()
	_, err := r.Annotate(ctx, "warm up", lang.English)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Annotate(canceled, "too late", lang.English)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCloseDuringFirstAnnotate(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"en": "en_test", "fr": "fr_test"})

	var wg sync.WaitGroup
	var annotateErr, closeErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, annotateErr = r.Annotate(context.Background(), "The cat sleeps", lang.English)
	}()
	go func() {
		defer wg.Done()
		closeErr = r.Close()
	}()
	wg.Wait()

	require.NoError(t, closeErr)
	if annotateErr != nil {
		assert.ErrorIs(t, annotateErr, ErrClosed)
	}

	_, err := r.Annotate(context.Background(), "Le chat dort", lang.French)
	assert.ErrorIs(t, err, ErrClosed)
	assert.LessOrEqual(t, r.starts.Load(), int32(1))

	assert.NoError(t, r.Close(), "second Close is a no-op")
}
