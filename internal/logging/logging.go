// internal/logging/logging.go
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	logFile *os.File
	console = true

	warnLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// SetConsole controls whether the next Init mirrors log lines to stdout.
func SetConsole(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	console = enabled
}

// Init routes the standard logger to stdout and, when logPath is set, to an
// append-only log file as well.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// Warn logs a highlighted warning line.
func Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(warnLabel("WARN") + " " + msg)
}

// LogAssetEvent records the outcome of resolving a model asset.
func LogAssetEvent(kind, model, path, outcome string) {
	log.Println(buildAssetMessage(kind, model, path, outcome))
}

// LogRenderEvent records a rendering step together with an arbitrary payload.
func LogRenderEvent(stage, model string, payload any) {
	log.Println(buildRenderMessage(stage, model, payload))
}

func buildAssetMessage(kind, model, path, outcome string) string {
	k := strings.ToUpper(strings.TrimSpace(kind))
	if k == "" {
		k = "ASSET"
	}
	modelValue := strings.TrimSpace(model)
	if modelValue == "" {
		modelValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", k)}
	parts = append(parts, fmt.Sprintf("model=%s", modelValue))
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", path))
	}
	outcomeValue := strings.TrimSpace(outcome)
	if outcomeValue == "" {
		outcomeValue = "ok"
	}
	parts = append(parts, fmt.Sprintf("outcome=%s", outcomeValue))
	return strings.Join(parts, " ")
}

func buildRenderMessage(stage, model string, payload any) string {
	stageValue := strings.ToUpper(strings.TrimSpace(stage))
	if stageValue == "" {
		stageValue = "RENDER"
	}
	parts := []string{fmt.Sprintf("[%s]", stageValue)}
	if model = strings.TrimSpace(model); model != "" {
		parts = append(parts, fmt.Sprintf("model=%s", model))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
