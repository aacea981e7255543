package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

func newEventSvc(repos *portrepo.RepositoryProvider) portssvc.EventSvcFacade {
	return services.NewEventService(repos.EventRepo, services.NewAuditService(repos.AuditRepo))
}

func TestRollCallIgnoresAlreadyPresent(t *testing.T) {
	svc := newEventSvc(newTestRepos())
	ctx := context.Background()
	scope := domain.ScopeTenant("t1")

	event, err := svc.CreateEvent(ctx, "t1", "secretary", dto.CreateEventRequest{
		Title:    "Sunday Service",
		Type:     "SERVICE",
		StartsAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	resp, err := svc.MarkRollCall(ctx, scope, event.EventID, "secretary", []string{"m1", "m2"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, 2, resp.TotalPresent)

	resp, err = svc.MarkRollCall(ctx, scope, event.EventID, "secretary", []string{"m2", "m3"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Added)
	assert.Equal(t, 3, resp.TotalPresent)
}

func TestRollCallUnknownEvent(t *testing.T) {
	svc := newEventSvc(newTestRepos())

	_, err := svc.MarkRollCall(context.Background(), domain.ScopeTenant("t1"), "missing", "secretary", []string{"m1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEventUpdatePreservesAttendance(t *testing.T) {
	svc := newEventSvc(newTestRepos())
	ctx := context.Background()
	scope := domain.ScopeTenant("t1")

	event, err := svc.CreateEvent(ctx, "t1", "secretary", dto.CreateEventRequest{
		Title:    "Bible Study",
		Type:     "STUDY",
		StartsAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.MarkRollCall(ctx, scope, event.EventID, "secretary", []string{"m1"})
	require.NoError(t, err)

	newTitle := "Midweek Bible Study"
	updated, err := svc.UpdateEvent(ctx, scope, event.EventID, "secretary", dto.UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Midweek Bible Study", updated.Title)
	assert.Len(t, updated.Attendance, 1)
}
