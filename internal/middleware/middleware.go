package middleware

import (
	"net/http"
	"strconv"

	"github.com/adikol/docvoice/internal/handlers"
	"github.com/adikol/docvoice/internal/metrics"
	"github.com/adikol/docvoice/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var IndexHandler = Wrap(handlers.IndexHandler)
var HealthHandler = Wrap(handlers.HealthHandler)

var AskHandler = Wrap(handlers.AskHandler)
var AskStreamHandler = Wrap(handlers.AskStreamHandler)
var AskAudioStreamHandler = Wrap(handlers.AskAudioStreamHandler)
var UploadHandler = Wrap(handlers.UploadHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)
var TranslateHandler = Wrap(handlers.TranslateHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	re = rateLimiter(re)
	if re.badRequest.isBadRequest {
		return re //stop here if rate limit fails
	}

	return re
}
