package annotator

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

type workerRequest struct {
	Text string `json:"text"`
}

type workerResponse struct {
	Sentences []Sentence `json:"sentences"`
	Error     string     `json:"error,omitempty"`
}

type readyMessage struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// worker owns one spaCy process. Calls are serialized: the process handles a
// single request line at a time.
type worker struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	mu     sync.Mutex
	closed bool
}

func startWorker(python string, args, env []string, model string, timeout time.Duration) (*worker, error) {
	cmd := exec.Command(python, args...)
	if env != nil {
		cmd.Env = env
	}
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start process: %w", err)
	}

	w := &worker{cmd: cmd, stdin: stdin, stdout: bufio.NewReader(stdout)}

	if err := w.send(map[string]string{"model": model}); err != nil {
		w.close()
		return nil, fmt.Errorf("send config: %w", err)
	}

	var ready readyMessage
	if err := w.receiveWithin(&ready, timeout); err != nil {
		w.close()
		return nil, fmt.Errorf("wait for ready: %w", err)
	}
	if ready.Status != "ready" {
		w.close()
		if ready.Error != "" {
			return nil, fmt.Errorf("load model %s: %s", model, ready.Error)
		}
		return nil, fmt.Errorf("unexpected startup status: %s", ready.Status)
	}

	return w, nil
}

func (w *worker) annotate(ctx context.Context, text string) ([]Sentence, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := w.send(workerRequest{Text: text}); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	var resp workerResponse
	if err := w.receive(&resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("spacy: %s", resp.Error)
	}

	for i := range resp.Sentences {
		resp.Sentences[i].Index = i
	}
	return resp.Sentences, nil
}

func (w *worker) send(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = w.stdin.Write(append(line, '\n'))
	return err
}

func (w *worker) receive(v any) error {
	line, err := w.stdout.ReadBytes('\n')
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("worker closed stdout")
		}
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(line, v); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

func (w *worker) receiveWithin(v any, timeout time.Duration) error {
	if timeout <= 0 {
		return w.receive(v)
	}

	done := make(chan error, 1)
	go func() { done <- w.receive(v) }()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		// Killing the process unblocks the pending read.
		w.cmd.Process.Kill()
		<-done
		return fmt.Errorf("timed out after %s", timeout)
	}
}

func (w *worker) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.stdin.Close()
	err := w.cmd.Wait()
	if _, ok := err.(*exec.ExitError); ok {
		// The worker exits on stdin EOF; a non-zero code after a kill is expected.
		return nil
	}
	return err
}
