package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/repositories/memory"
)

// newTestRepos builds an in-memory repository provider for service tests.
func newTestRepos() *portrepo.RepositoryProvider {
	return memory.NewRepositoryProvider(memory.NewStores())
}

func newMemberSvc(repos *portrepo.RepositoryProvider) portssvc.MemberSvcFacade {
	return services.NewMemberService(repos.MemberRepo, services.NewAuditService(repos.AuditRepo))
}

func TestCreateMemberDefaults(t *testing.T) {
	svc := newMemberSvc(newTestRepos())
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, "t1", "admin", dto.CreateMemberRequest{
		FirstName: "Abena",
		LastName:  "Mensah",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MemberActive, member.Status)
	assert.Equal(t, domain.MembershipRegular, member.MembershipType)
	assert.False(t, member.JoinDate.IsZero())
	assert.NotEmpty(t, member.MemberID)
}

func TestCreateMemberRejectsUnknownStatus(t *testing.T) {
	svc := newMemberSvc(newTestRepos())

	_, err := svc.CreateMember(context.Background(), "t1", "admin", dto.CreateMemberRequest{
		FirstName: "Kwame",
		LastName:  "Osei",
		Status:    "RETIRED",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMemberCSVRoundTrip(t *testing.T) {
	repos := newTestRepos()
	svc := newMemberSvc(repos)
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, "t1", "admin", dto.CreateMemberRequest{
		FirstName: "Abena", LastName: "Mensah", Groups: []string{"choir", "ushers"},
	})
	require.NoError(t, err)
	_, err = svc.CreateMember(ctx, "t1", "admin", dto.CreateMemberRequest{
		FirstName: "Kwame", LastName: "Osei", Location: "Accra",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportMembersCSV(ctx, domain.ScopeTenant("t1"), &buf))

	result, err := svc.ImportMembersCSV(ctx, "t2", "admin", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	imported, err := repos.MemberRepo.ListAllMembers(ctx, domain.ScopeTenant("t2"))
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, []string{"choir", "ushers"}, imported[0].Groups)
}

func TestImportMembersSkipsBadRows(t *testing.T) {
	svc := newMemberSvc(newTestRepos())

	csv := strings.Join([]string{
		"first_name,last_name,email,phone,location,groups,status,membership_type,join_date",
		"Ama,Boateng,,,Kumasi,,ACTIVE,REGULAR,2024-03-10",
		",,,,,,,,",
	}, "\n")

	result, err := svc.ImportMembersCSV(context.Background(), "t1", "admin", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3")
}
