package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/repositories"
	"github.com/UndyingTomb/CSCE-548/internal/responses"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

// parseID reads the :id path parameter. On failure the response is already
// written.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id")
		return 0, false
	}
	return id, true
}

// bindFields decodes a PATCH body into the allow-listed field set. An empty
// body yields no fields. Nulls are kept only for nullable columns.
func bindFields(c *gin.Context, allowed []string) (models.Fields, bool) {
	var fields models.Fields
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		responses.Fail(c, http.StatusBadRequest, errTrailingData, "Invalid request body")
		return nil, false
	}
	return fields.Allowed(allowed).DropNulls(models.NullableColumns), true
}

var errTrailingData = errors.New("unexpected data after JSON body")

// fail maps a service error to a status: rejected input and storage
// constraint violations are the client's fault, anything else is ours.
func fail(c *gin.Context, l logrus.FieldLogger, err error, message string) {
	switch {
	case services.IsValidationError(err):
		responses.Fail(c, http.StatusBadRequest, err, message)
	case repositories.IsConstraintViolation(err):
		responses.Fail(c, http.StatusBadRequest, err, message)
	default:
		l.WithError(err).WithField("path", c.FullPath()).Error(message)
		responses.Fail(c, http.StatusInternalServerError, err, message)
	}
}
