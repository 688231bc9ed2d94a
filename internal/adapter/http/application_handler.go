package http

import (
	"errors"
	"net/http"

	domain "loanintake-backend/internal/domain/application"
	appuc "loanintake-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	uc *appuc.Usecase
	cv *CustomValidator
}

func NewApplicationHandler(uc *appuc.Usecase, cv *CustomValidator) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, cv: cv}
}

type submitReq struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Tel         string  `json:"tel" validate:"required,tel"`
	Occupation  string  `json:"occupation" validate:"required"`
	Salary      float64 `json:"salary" validate:"required,gt=0,dec2"`
	PaysheetURI *string `json:"paysheetUri"`
}

type updateReq struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Tel         *string  `json:"tel" validate:"omitempty,tel"`
	Occupation  *string  `json:"occupation" validate:"omitempty,min=1"`
	Salary      *float64 `json:"salary" validate:"omitempty,gt=0,dec2"`
	PaysheetURI *string  `json:"paysheetUri"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Submit(c.Request().Context(), appuc.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Tel:         req.Tel,
		Occupation:  req.Occupation,
		Salary:      req.Salary,
		PaysheetURI: req.PaysheetURI,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save application"})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load applications"})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load application"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) SearchByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing email"})
	}
	dto, err := h.uc.SearchByEmail(c.Request().Context(), email)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no application found with this email address"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to search application"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, appuc.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Tel:         req.Tel,
		Occupation:  req.Occupation,
		Salary:      req.Salary,
		PaysheetURI: req.PaysheetURI,
		Status:      req.Status,
	})
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update application"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Approve(c echo.Context) error { return h.review(c, true) }
func (h *ApplicationHandler) Reject(c echo.Context) error  { return h.review(c, false) }

func (h *ApplicationHandler) review(c echo.Context, approve bool) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var dto *appuc.ApplicationDTO
	if approve {
		dto, err = h.uc.Approve(c.Request().Context(), id)
	} else {
		dto, err = h.uc.Reject(c.Request().Context(), id)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update status"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete application"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ApplicationHandler) RemovePaysheet(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.RemovePaysheet(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to remove paysheet"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ApplicationHandler) DeleteAll(c echo.Context) error {
	if err := h.uc.DeleteAll(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear applications"})
	}
	return c.NoContent(http.StatusNoContent)
}
