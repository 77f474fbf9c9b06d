package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/internal/notify"
)

// ReportPublisher is the queue side of the notification sink.
type ReportPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ReportService accepts match reports and hands them to the queue. With no
// publisher configured it degrades to the documented no-op: the report is
// acknowledged and logged, nothing is delivered.
type ReportService struct {
	Pub    ReportPublisher
	Logger *logrus.Logger
}

func NewReportService(pub ReportPublisher, logger *logrus.Logger) *ReportService {
	return &ReportService{Pub: pub, Logger: logger}
}

// Report enqueues the match report. The returned bool says whether the job
// was actually queued or just acknowledged.
func (s *ReportService) Report(ctx context.Context, matchID, reportedBy string) (bool, error) {
	job := notify.MatchReportJob{
		MatchID:    matchID,
		ReportedBy: reportedBy,
		ReportedAt: time.Now().UTC(),
	}
	if s.Pub == nil {
		if s.Logger != nil {
			s.Logger.WithField("match_id", matchID).Info("match report accepted (no queue configured)")
		}
		return false, nil
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("match_id", matchID).Error("publish match report failed")
		}
		return false, err
	}
	return true, nil
}
