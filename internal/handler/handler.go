package handler

import (
	"net/http"

	"github.com/avelasq/paycheck-planner/internal/service"
	"github.com/avelasq/paycheck-planner/internal/view"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Index serves the input form page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderIndex(w); err != nil {
		h.log.Errorf("Failed to render index: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Analyze handles the form submission and responds with an HTML fragment:
// an error list when validation fails, the results otherwise.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	input, decodeErrs := decodeFinanceInput(r.PostForm)
	if len(decodeErrs) > 0 {
		h.renderErrors(w, decodeErrs)
		return
	}

	report := h.svc.Report(input)
	if len(report.Errors) > 0 {
		h.renderErrors(w, report.Errors)
		return
	}

	rv := view.BuildResult(report.Result, input.PeriodMode, input.ShowAnnual, report.Advice, report.Chart)
	if err := view.RenderResult(w, rv); err != nil {
		h.log.Errorf("Failed to render result: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) renderErrors(w http.ResponseWriter, errs []string) {
	if err := view.RenderErrors(w, errs); err != nil {
		h.log.Errorf("Failed to render errors: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
