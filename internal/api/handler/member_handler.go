package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// MemberHandler handles mutations of a project's member ledger.
type MemberHandler struct {
	service ports.MembershipService
}

func NewMemberHandler(service ports.MembershipService) *MemberHandler {
	return &MemberHandler{service: service}
}

// Add handles POST /v1/projects/:project_id/members.
//
// @Summary      Add members to a project
// @Description  Identifiers are usernames or emails. Users already in the ledger are skipped.
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     RequesterID
// @Param        project_id  path      string             true  "Project id"
// @Param        body        body      addMembersRequest  true  "Members to add"
// @Success      201         {object}  addMembersResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /v1/projects/{project_id}/members [post]
func (h *MemberHandler) Add(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}
	var req addMembersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.AddMembers(c.Request().Context(), ports.AddMembersInput{
		RequesterID: requester,
		ProjectID:   c.Param("project_id"),
		Identifiers: req.Identifiers,
		Role:        req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, addMembersResponse{
		Message:      "members added",
		AddedMembers: res.AddedUsernames,
	})
}

// UpdateRole handles PUT /v1/projects/:project_id/members/role.
//
// @Summary      Change a member's role
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     RequesterID
// @Param        project_id  path      string             true  "Project id"
// @Param        body        body      updateRoleRequest  true  "Member and new role"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/projects/{project_id}/members/role [put]
func (h *MemberHandler) UpdateRole(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}
	var req updateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.UpdateRole(c.Request().Context(), ports.UpdateRoleInput{
		RequesterID: requester,
		ProjectID:   c.Param("project_id"),
		Identifier:  req.Identifier,
		Role:        req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "member role updated"})
}
