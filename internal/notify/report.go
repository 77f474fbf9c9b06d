// Package notify models match-report delivery as a durable message-passing
// pipeline: the API publishes jobs to a queue, the bot process consumes them
// and delivers to the chat platform.
package notify

import (
	"fmt"
	"time"
)

// MatchReportJob is the queue payload for one reported match.
type MatchReportJob struct {
	MatchID    string    `json:"match_id"`
	ReportedBy string    `json:"reported_by,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

// Message renders the chat line for the report.
func (j MatchReportJob) Message() string {
	if j.ReportedBy != "" {
		return fmt.Sprintf("Match %s reported by %s", j.MatchID, j.ReportedBy)
	}
	return fmt.Sprintf("Match %s reported", j.MatchID)
}
