package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

func TestSendCommunicationCountsTargetedRecipients(t *testing.T) {
	repos := newTestRepos()
	memberSvc := newMemberSvc(repos)
	ctx := context.Background()

	for _, m := range []struct {
		first  string
		groups []string
		status string
	}{
		{"Abena", []string{"choir"}, "ACTIVE"},
		{"Kwame", []string{"choir", "ushers"}, "ACTIVE"},
		{"Yaw", []string{"ushers"}, "ACTIVE"},
		{"Esi", []string{"choir"}, "ARCHIVED"},
	} {
		_, err := memberSvc.CreateMember(ctx, "t1", "admin", dto.CreateMemberRequest{
			FirstName: m.first, LastName: "Test", Groups: m.groups, Status: m.status,
		})
		require.NoError(t, err)
	}

	svc := services.NewCommunicationService(repos.CommunicationRepo, repos.MemberRepo, services.NewAuditService(repos.AuditRepo))

	entry, err := svc.SendCommunication(ctx, "t1", "pastor", dto.SendCommunicationRequest{
		Channel: "SMS", Body: "Choir practice moved to 6pm", TargetGroups: []string{"Choir"},
	})
	require.NoError(t, err)
	// Archived members never receive messages; group matching is
	// case-insensitive.
	assert.Equal(t, 2, entry.RecipientCount)

	entry, err = svc.SendCommunication(ctx, "t1", "pastor", dto.SendCommunicationRequest{
		Channel: "EMAIL", Subject: "Newsletter", Body: "Monthly update",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, entry.RecipientCount)

	logged, err := svc.ListCommunications(ctx, domain.ScopeTenant("t1"))
	require.NoError(t, err)
	assert.Len(t, logged, 2)
}

func TestSendCommunicationRejectsUnknownChannel(t *testing.T) {
	repos := newTestRepos()
	svc := services.NewCommunicationService(repos.CommunicationRepo, repos.MemberRepo, services.NewAuditService(repos.AuditRepo))

	_, err := svc.SendCommunication(context.Background(), "t1", "pastor", dto.SendCommunicationRequest{
		Channel: "PIGEON", Body: "hello",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
