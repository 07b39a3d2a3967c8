package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	patientserrors "patientcleaner/internal/patients/errors"
	"patientcleaner/internal/patients/loader"
	"patientcleaner/internal/patients/reporter"
	"patientcleaner/internal/patients/service"
	apperrors "patientcleaner/pkg/errors"
	httputil "patientcleaner/pkg/http"
	"patientcleaner/pkg/logger"
	"patientcleaner/pkg/middleware"
)

type CleanerHandler struct {
	cleaner  service.PatientCleaner
	source   loader.Source
	reporter reporter.Reporter
	log      *logger.Logger
}

// NewCleanerHandler wires the cleaning endpoints. source and reporter may be
// nil: without a source GET answers 503, without a reporter results are only
// returned to the caller.
func NewCleanerHandler(
	cleaner service.PatientCleaner,
	source loader.Source,
	reporter reporter.Reporter,
	log *logger.Logger,
) *CleanerHandler {
	return &CleanerHandler{
		cleaner:  cleaner,
		source:   source,
		reporter: reporter,
		log:      log,
	}
}

func (h *CleanerHandler) CleanBody(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	records, err := loader.Decode(r.Body)
	if err != nil {
		message := "Invalid request body"
		if errors.Is(err, patientserrors.ErrNotArray) {
			message = err.Error()
		}
		h.log.Warn("Rejected clean request body",
			"request_id", middleware.RequestID(r),
			"error", err,
		)
		h.writeError(w, "CleanBody", apperrors.InvalidInput(message))
		return
	}

	h.respond(w, r, "CleanBody", h.cleaner.CleanWithReport(records))
}

func (h *CleanerHandler) CleanSource(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.source == nil {
		h.writeError(w, "CleanSource", apperrors.Unavailable("patient source"))
		return
	}

	records, err := h.source.Read(r.Context())
	if err != nil {
		h.log.Error("Failed to read patient source",
			"request_id", middleware.RequestID(r),
			"error", err,
		)
		h.writeError(w, "CleanSource", err)
		return
	}

	h.respond(w, r, "CleanSource", h.cleaner.CleanWithReport(records))
}

func (h *CleanerHandler) respond(w http.ResponseWriter, r *http.Request, handler string, result *service.Result) {
	if h.reporter != nil {
		if err := h.reporter.Report(r.Context(), result); err != nil {
			h.log.Error("Failed to report cleaned patients",
				"request_id", middleware.RequestID(r),
				"run_id", result.Report.RunID,
				"error", err,
			)
		}
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *CleanerHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
