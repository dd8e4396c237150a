package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/usecase"
	"go-library-management/pkg/response"
	"go-library-management/pkg/validator"

	"github.com/gorilla/mux"
)

type RoleHandler struct {
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

func (h *RoleHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleUsecase.GetRoles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get roles")
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}

func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	role, err := h.roleUsecase.GetRole(r.Context(), roleID)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		default:
			response.InternalServerError(w, "Failed to get role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role retrieved successfully", role)
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, err := h.roleUsecase.CreateRole(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoleAlreadyExists:
			response.Error(w, http.StatusConflict, "Role already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create role")
		}
		return
	}

	response.Created(w, "Role created successfully", role)
}

func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	var req dto.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, err := h.roleUsecase.UpdateRole(r.Context(), roleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		case usecase.ErrRoleAlreadyExists:
			response.Error(w, http.StatusConflict, "Role already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role updated successfully", role)
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid role ID", nil)
		return
	}

	if err := h.roleUsecase.DeleteRole(r.Context(), roleID); err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		default:
			response.InternalServerError(w, "Failed to delete role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role deleted successfully", nil)
}
