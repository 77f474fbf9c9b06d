package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proclubshub/backend/internal/notify"
)

type fakePublisher struct {
	published []any
	err       error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

func TestReportPublishesJob(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewReportService(pub, nil)

	queued, err := svc.Report(context.Background(), "match-42", "a@b.dev")
	require.NoError(t, err)
	assert.True(t, queued)

	require.Len(t, pub.published, 1)
	job, ok := pub.published[0].(notify.MatchReportJob)
	require.True(t, ok)
	assert.Equal(t, "match-42", job.MatchID)
	assert.Equal(t, "a@b.dev", job.ReportedBy)
	assert.False(t, job.ReportedAt.IsZero())
}

func TestReportWithoutQueueIsAcknowledgedNoOp(t *testing.T) {
	svc := NewReportService(nil, nil)

	queued, err := svc.Report(context.Background(), "match-42", "")
	require.NoError(t, err)
	assert.False(t, queued)
}

func TestReportPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewReportService(pub, nil)

	queued, err := svc.Report(context.Background(), "match-42", "")
	require.Error(t, err)
	assert.False(t, queued)
}
