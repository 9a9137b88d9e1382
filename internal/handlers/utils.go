package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adikol/docvoice/internal/adapter"
	"github.com/adikol/docvoice/internal/api"
	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func decodeAskRequest(w http.ResponseWriter, r *http.Request) (api.AskRequest, bool) {
	var requestData api.AskRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the Ask handler reader :", "error", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || strings.TrimSpace(requestData.Question) == "" {
		logRH.Warn("Bad Ask Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Please enter a question")
		return requestData, false
	}
	return requestData, true
}

func resolveLanguage(language string) string {
	if strings.TrimSpace(language) == "" {
		return config.DefaultLanguage
	}
	return language
}

// streamWords drips the answer out word by word. Newlines collapse away;
// the web client renders a single flowing paragraph.
func streamWords(w http.ResponseWriter, text string) {
	flusher, canFlush := w.(http.Flusher)

	words := strings.Fields(text)
	for i, word := range words {
		if i < len(words)-1 {
			word += " "
		}
		if _, err := io.WriteString(w, word); err != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
		time.Sleep(config.StreamWordDelay)
	}
}

func streamAudio(w http.ResponseWriter, audio io.Reader) {
	flusher, canFlush := w.(http.Flusher)

	buf := make([]byte, config.AudioChunkSize)
	for {
		n, err := audio.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if err != nil {
			if err != io.EOF {
				logRH.Error("audio stream read failed", "error", err)
			}
			return
		}
	}
}

func validateId(id string, traceId string) (result uploadModel.Job, progress []string, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return uploadModel.Job{}, nil, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, config.UploadTempDirName)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}
