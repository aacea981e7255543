package domain

// ViewID identifies one navigable screen in the product.
type ViewID string

const (
	ViewDashboard      ViewID = "dashboard"
	ViewMembers        ViewID = "members"
	ViewFinance        ViewID = "finance"
	ViewEvents         ViewID = "events"
	ViewAttendance     ViewID = "attendance"
	ViewCommunications ViewID = "communications"
	ViewSermons        ViewID = "sermons"
	ViewDailyVerse     ViewID = "daily-verse"
	ViewReports        ViewID = "reports"
	ViewTickets        ViewID = "tickets"
	ViewAuditLogs      ViewID = "audit-logs"
	ViewSettings       ViewID = "settings"

	ViewPlatformDashboard ViewID = "platform-dashboard"
	ViewPlatformTenants   ViewID = "platform-tenants"
	ViewPlatformBilling   ViewID = "platform-billing"
	ViewPlatformAnalytics ViewID = "platform-analytics"
	ViewPlatformTickets   ViewID = "platform-tickets"
	ViewPlatformAudit     ViewID = "platform-audit"

	ViewMyProfile ViewID = "my-profile"
	ViewMyGiving  ViewID = "my-giving"
	ViewMyEvents  ViewID = "my-events"
)

// KnownViews lists every view id the product understands.
var KnownViews = []ViewID{
	ViewDashboard, ViewMembers, ViewFinance, ViewEvents, ViewAttendance,
	ViewCommunications, ViewSermons, ViewDailyVerse, ViewReports, ViewTickets,
	ViewAuditLogs, ViewSettings,
	ViewPlatformDashboard, ViewPlatformTenants, ViewPlatformBilling,
	ViewPlatformAnalytics, ViewPlatformTickets, ViewPlatformAudit,
	ViewMyProfile, ViewMyGiving, ViewMyEvents,
}

// roleViews is the static permission table: each role maps to the ordered
// list of views it may see. There is no dynamic composition and no per-tenant
// override.
var roleViews = map[Role][]ViewID{
	RoleSystemOwner: {
		ViewPlatformDashboard, ViewPlatformTenants, ViewPlatformBilling,
		ViewPlatformAnalytics, ViewPlatformTickets, ViewPlatformAudit,
		ViewSettings,
	},
	RoleAdmin: {
		ViewDashboard, ViewMembers, ViewFinance, ViewEvents, ViewAttendance,
		ViewCommunications, ViewSermons, ViewReports, ViewTickets,
		ViewAuditLogs, ViewSettings,
	},
	RolePastor: {
		ViewDashboard, ViewMembers, ViewEvents, ViewAttendance,
		ViewCommunications, ViewSermons, ViewDailyVerse, ViewReports,
	},
	RoleTreasurer: {
		ViewDashboard, ViewFinance, ViewReports, ViewMembers,
	},
	RoleSecretary: {
		ViewDashboard, ViewMembers, ViewEvents, ViewAttendance,
		ViewCommunications,
	},
	RoleMember: {
		ViewMyProfile, ViewMyGiving, ViewMyEvents, ViewDailyVerse,
	},
}

// VisibleViews returns the ordered set of views a role may see. The result
// is a fresh copy so callers cannot mutate the table. Unknown roles see
// nothing.
func VisibleViews(role Role) []ViewID {
	views, ok := roleViews[role]
	if !ok {
		return nil
	}
	out := make([]ViewID, len(views))
	copy(out, views)
	return out
}

// CanSee reports whether a role's navigation includes the given view.
func CanSee(role Role, view ViewID) bool {
	for _, v := range roleViews[role] {
		if v == view {
			return true
		}
	}
	return false
}
