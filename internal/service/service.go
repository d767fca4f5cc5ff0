package service

import (
	"github.com/avelasq/paycheck-planner/internal/models"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	log *logrus.Logger
}

// NewService initializes a new service
func NewService(log *logrus.Logger) *Service {
	return &Service{log: log}
}

// Report holds the full outcome of one submission: either validation errors,
// or the analysis together with its advice and chart.
type Report struct {
	Errors []string
	Result models.AnalysisResult
	Advice []string
	Chart  models.ChartBreakdown
}

// Report runs the pipeline for one submission. When validation fails, only
// Errors is set and no computation happens, so an invalid input never
// produces a partial result.
func (s *Service) Report(input models.FinanceInput) Report {
	if errs := s.Validate(input); len(errs) > 0 {
		s.log.Infof("Submission rejected with %d validation errors", len(errs))
		return Report{Errors: errs}
	}

	result := s.Analyze(input)
	s.log.Infof("Analysis complete: total_debt=%s available_cash=%s can_save=%t",
		result.TotalDebt.StringFixed(2), result.AvailableCash.StringFixed(2), result.CanSave)

	return Report{
		Result: result,
		Advice: s.Advise(result),
		Chart:  s.BuildChart(result),
	}
}
