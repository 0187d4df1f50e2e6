package history

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/models"
	internalHistory "github.com/hanjaplatform/hanja-api/internal/services/history"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// now is replaced in tests
var now = time.Now

// listOptions reads the all and inputOnly query parameters.
func listOptions(c *gin.Context) (internalHistory.ListOptions, error) {
	var opts internalHistory.ListOptions
	if v := c.Query("all"); v != "" {
		all, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apperrors.ValidationError("all", "all must be true or false")
		}
		opts.All = all
	}
	if v := c.Query("inputOnly"); v != "" {
		inputOnly, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apperrors.ValidationError("inputOnly", "inputOnly must be true or false")
		}
		opts.InputOnly = &inputOnly
	}
	return opts, nil
}

// List returns the caller's history
// @Summary List history
// @Description List the caller's history records, newest first. Administrators may pass all=true to see every user's records.
// @Tags history
// @Produce json
// @Param all query bool false "Every owner's records (admins only)"
// @Param inputOnly query bool false "Filter on input-only records"
// @Success 200 {object} types.HistoryListResponse
// @Failure 401 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := listOptions(c)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		records, err := deps.History.List(c.Request.Context(), types.SessionFrom(c), opts)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		items := make([]types.HistoryRecord, 0, len(records))
		for i := range records {
			items = append(items, types.NewHistoryRecord(&records[i]))
		}
		c.JSON(http.StatusOK, types.HistoryListResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Items:        items,
			Count:        len(items),
		})
	}
}

// Get returns one record
// @Summary Get a history record
// @Tags history
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} types.HistoryRecordResponse
// @Failure 403 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := deps.History.Get(c.Request.Context(), types.SessionFrom(c), c.Param("id"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		sendRecord(c, http.StatusOK, record)
	}
}

// Create stores a full record
// @Summary Save a history record
// @Description Store the current state of a workspace. Details must match the record shape of the action.
// @Tags history
// @Accept json
// @Produce json
// @Param request body types.SaveHistoryRequest true "Action and details"
// @Success 201 {object} types.HistoryRecordResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 401 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SaveHistoryRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		record, err := deps.Workspace.Save(c.Request.Context(), types.SessionFrom(c), req.Action, req.Details)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		sendRecord(c, http.StatusCreated, record)
	}
}

// Update replaces the details of a record
// @Summary Update a history record
// @Description Replace the details of a record the caller owns. The action must match the stored record.
// @Tags history
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body types.SaveHistoryRequest true "Action and details"
// @Success 200 {object} types.HistoryRecordResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 403 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SaveHistoryRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if !req.Action.Valid() {
			types.SendAppError(c, internalHistory.ErrInvalidAction)
			return
		}

		record, err := deps.History.Resave(c.Request.Context(), types.SessionFrom(c), c.Param("id"), req.Action, req.Details)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		sendRecord(c, http.StatusOK, record)
	}
}

// Delete removes a record
// @Summary Delete a history record
// @Tags history
// @Param id path string true "Record ID"
// @Success 204
// @Failure 403 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.History.Delete(c.Request.Context(), types.SessionFrom(c), c.Param("id")); err != nil {
			types.SendAppError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ExportJSON downloads the caller's history as JSON
// @Summary Export history as JSON
// @Tags history
// @Produce json
// @Param all query bool false "Every owner's records (admins only)"
// @Param inputOnly query bool false "Filter on input-only records"
// @Success 200 {array} internalHistory.ExportRecord
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history/export/json [get]
func ExportJSON(deps *types.Dependencies) gin.HandlerFunc {
	return export(deps, "json", contentTypeJSON, internalHistory.ExportJSON)
}

// ExportXLSX downloads the caller's history as a spreadsheet
// @Summary Export history as a spreadsheet
// @Description One row per record with the detail fields flattened into columns.
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param all query bool false "Every owner's records (admins only)"
// @Param inputOnly query bool false "Filter on input-only records"
// @Success 200 {file} file
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/history/export/xlsx [get]
func ExportXLSX(deps *types.Dependencies) gin.HandlerFunc {
	return export(deps, "xlsx", contentTypeXLSX, internalHistory.ExportXLSX)
}

func export(deps *types.Dependencies, ext, contentType string, encode func([]models.History) ([]byte, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := listOptions(c)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		data, err := exportRecords(c, deps, opts, encode)
		if err != nil {
			if errors.Is(err, internalHistory.ErrNothingToExport) {
				types.SendNotFound(c, "No history to export")
				return
			}
			types.SendAppError(c, err)
			return
		}

		filename := internalHistory.ExportFilename(now(), ext)
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, contentType, data)
	}
}

func exportRecords(c *gin.Context, deps *types.Dependencies, opts internalHistory.ListOptions, encode func([]models.History) ([]byte, error)) ([]byte, error) {
	records, err := deps.History.List(c.Request.Context(), types.SessionFrom(c), opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, internalHistory.ErrNothingToExport
	}
	return encode(records)
}

func sendRecord(c *gin.Context, status int, record *models.History) {
	c.JSON(status, types.HistoryRecordResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Record:       types.NewHistoryRecord(record),
	})
}
