package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adikol/docvoice/internal/adapter"
	"github.com/adikol/docvoice/internal/adapter/utils"
	"github.com/adikol/docvoice/internal/answer"
	"github.com/adikol/docvoice/internal/api"
	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/internal/inference"
	"github.com/adikol/docvoice/internal/translate"
	"github.com/adikol/docvoice/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id             string
	traceId        string
	documentName   string
	documentSource string
}

// AudioSynthesizer turns an answer into an audio byte stream. Nil means
// speech is not configured and the audio endpoint reports that.
type AudioSynthesizer interface {
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

// RequestHandlerDeps carries everything the question endpoints need.
// Provider and Registry are required; Translator and Synthesizer may be nil.
type RequestHandlerDeps struct {
	Provider    inference.Provider
	Registry    *conversation.Registry
	Translator  translate.Translator
	Synthesizer AudioSynthesizer
}

var deps RequestHandlerDeps

func InitRequestHandlers(d RequestHandlerDeps) {
	deps = d
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// IndexHandler godoc
// @Summary      Chat page
// @Description  Serves the built-in single page web client.
// @Tags         Web
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Router       / [get]
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

// AskHandler godoc
// @Summary      Ask a question
// @Description  Answers a question against the active document or clipboard context and returns the formatted answer.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest  true  "Question, optional context override and language"
// @Success      200      {object}  api.AskResponse
// @Failure      400      {object}  api.JobResponse "Missing question"
// @Router       /ask [post]
func AskHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	requestData, ok := decodeAskRequest(w, request)
	if !ok {
		return
	}

	raw, err := deps.Provider.Answer(request.Context(), requestData.Question,
		deps.Registry.Resolve(requestData.Context), resolveLanguage(requestData.Language))
	if err != nil {
		logRH.Error("inference failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", fmt.Sprintf("Failed to get response: %v", err))
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AskResponse{Answer: answer.Format(raw)})
}

// AskStreamHandler godoc
// @Summary      Ask a question, streamed
// @Description  Answers a question and streams the answer back word by word as plain text.
// @Tags         Questions
// @Accept       json
// @Produce      plain
// @Param        request  body  api.AskRequest  true  "Question, optional context override and language"
// @Success      200  {string}  string  "Answer text, chunked"
// @Failure      400  {string}  string  "Missing question"
// @Router       /ask-stream [post]
func AskStreamHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	requestData, ok := decodeAskRequest(w, request)
	if !ok {
		return
	}

	//answer first; once streaming headers go out a failure can no
	//longer change the status code
	raw, err := deps.Provider.Answer(request.Context(), requestData.Question,
		deps.Registry.Resolve(requestData.Context), resolveLanguage(requestData.Language))
	if err != nil {
		logRH.Error("inference failed", "error", err)
		http.Error(w, fmt.Sprintf("Failed to get response: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	streamWords(w, raw)
}

// AskAudioStreamHandler godoc
// @Summary      Ask a question, spoken
// @Description  Answers a question, synthesizes the answer to speech and streams the MP3 bytes back in chunks.
// @Tags         Questions
// @Accept       json
// @Produce      octet-stream
// @Param        request  body  api.AskRequest  true  "Question, optional context override and language"
// @Success      200  {string}  binary  "MP3 audio"
// @Failure      400  {string}  string  "Missing question"
// @Failure      503  {string}  string  "Speech not configured"
// @Router       /ask-audio-stream [post]
func AskAudioStreamHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	requestData, ok := decodeAskRequest(w, request)
	if !ok {
		return
	}

	if deps.Synthesizer == nil {
		http.Error(w, "Speech is not configured", http.StatusServiceUnavailable)
		return
	}

	//each request computes its own answer; nothing is shared between
	//concurrent askers
	raw, err := deps.Provider.Answer(request.Context(), requestData.Question,
		deps.Registry.Resolve(requestData.Context), resolveLanguage(requestData.Language))
	if err != nil {
		logRH.Error("inference failed", "error", err)
		http.Error(w, fmt.Sprintf("Failed to get response: %v", err), http.StatusInternalServerError)
		return
	}

	audio, err := deps.Synthesizer.Synthesize(request.Context(), strings.Join(strings.Fields(raw), " "))
	if err != nil {
		logRH.Error("speech synthesis failed", "error", err)
		http.Error(w, fmt.Sprintf("Speech synthesis failed: %v", err), http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := audio.Close(); err != nil {
			logRH.Error("Couldn't close the audio stream :", "error", err)
		}
	}()

	w.Header().Set("Content-Type", "audio/mpeg")
	streamAudio(w, audio)
}

// UploadHandler godoc
// @Summary      Upload a document
// @Description  Receives a file via multipart/form-data, saves it to a temporary directory, and queues a processing job.
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The document file to upload"
// @Success      202  {object}  api.InitJobResponse  "Accepted"
// @Failure      400  {object}  api.JobResponse  "Missing file or file too large"
// @Failure      500  {object}  api.JobResponse  "Storage or write error"
// @Router       /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	docName := filepath.Base(fileMetadata.Filename)
	tempFilePath := filepath.Join(targetDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), docName))
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
		return
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
		return
	}

	newJob := newJobData{
		id:             utils.GetNewUUID(),
		traceId:        r.Context().Value(config.TRACE_ID_KEY).(string),
		documentName:   docName,
		documentSource: tempFilePath,
	}
	CreateNewJob(newJob)
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status and progress log of an upload job.
// @Tags         Job Status
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse  "The current status of the job"
// @Failure      404  {object}  api.JobResponse  "Job not found"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	idString := utils.GetChiURLParam(r, "id")
	result, progress, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

	logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result, progress))
}

// TranslateHandler godoc
// @Summary      Translate text
// @Description  Translates captured text into the target language.
// @Tags         Translation
// @Accept       json
// @Produce      json
// @Param        request  body      api.TranslateRequest  true  "Text and target language"
// @Success      200      {object}  api.TranslateResponse
// @Failure      400      {object}  api.JobResponse  "Missing text"
// @Failure      503      {object}  api.JobResponse  "Translation not configured"
// @Router       /translate [post]
func TranslateHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var requestData api.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Text == "" {
		logRH.Warn("Bad Translate Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "text is required")
		return
	}
	defer r.Body.Close()

	if deps.Translator == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, "", "Translation is not configured")
		return
	}

	translated, err := deps.Translator.Translate(r.Context(), requestData.Text, resolveLanguage(requestData.Language))
	if err != nil {
		logRH.Error("translation failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Translation failed")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.TranslateResponse{Translated: translated})
}
