package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// memberHandler handles HTTP requests for the member roll.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/export", h.exportMembers)
		members.POST("/import", h.importMembers)
		members.GET("/:id", h.getMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// createMember godoc
// @Summary Add a member to the roll
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} domain.Member
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create member")
		return
	}

	logger.Info("Member created", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, member)
}

// listMembers godoc
// @Summary List members
// @Description Returns a page of the scoped roll, newest first, with optional status and group filters
// @Tags members
// @Produce json
// @Param status query string false "Member status filter"
// @Param group query string false "Group name filter"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListMembersResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	members, nextToken, err := h.memberService.ListMembers(c.Request.Context(), scope, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ListMembersResponse{Members: members, NextToken: nextToken})
}

// getMember godoc
// @Summary Get a member by id
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} map[string]string "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByID(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} domain.Member
// @Failure 404 {object} map[string]string "Member not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), scope, c.Param("id"), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// deleteMember godoc
// @Summary Remove a member
// @Tags members
// @Param id path string true "Member ID"
// @Success 204 "Member removed"
// @Failure 404 {object} map[string]string "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportMembers godoc
// @Summary Export the member roll as CSV
// @Tags members
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /members/export [get]
func (h *memberHandler) exportMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="members.csv"`)
	if err := h.memberService.ExportMembersCSV(c.Request.Context(), scope, c.Writer); err != nil {
		logger.Error("Member CSV export failed", slog.String("error", err.Error()))
	}
}

// importMembers godoc
// @Summary Import members from a CSV upload
// @Description Accepts the export template; rows with missing names or bad dates are skipped and reported
// @Tags members
// @Accept text/csv
// @Produce json
// @Success 200 {object} dto.ImportMembersResponse
// @Failure 400 {object} map[string]string "Malformed CSV"
// @Security BearerAuth
// @Router /members/import [post]
func (h *memberHandler) importMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.memberService.ImportMembersCSV(c.Request.Context(), tenantID, userID, c.Request.Body)
	if err != nil {
		respondError(c, logger, err, "Failed to import members")
		return
	}

	logger.Info("Member CSV import finished",
		slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}
