package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/domain"
	"tasklist/pkg/apierrors"
)

// messages names the translation keys used for one endpoint's failures.
type messages struct {
	invalid string
	fail    string
}

// respondError maps service errors onto status codes. Anything unknown is
// logged and reported as a 500.
func respondError(c *gin.Context, err error, msgs messages) {
	lang := middleware.GetLang(c)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, msgs.invalid, fieldMessageKeys(verr), lang),
		)
	case errors.Is(err, validation.ErrInvalidPayload):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgs.invalid, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrListNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgListNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	default:
		zap.L().Error(msgs.fail,
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, msgs.fail, lang),
		)
	}
}

// fieldMessageKeys maps each field's validation reason to its translation key.
func fieldMessageKeys(verr *domain.ValidationError) map[string]string {
	keys := make(map[string]string, len(verr.Fields))
	for field, reason := range verr.Fields {
		keys[field] = fieldMessageKey(reason)
	}
	return keys
}

func fieldMessageKey(reason string) string {
	switch reason {
	case domain.ReasonRequired:
		return apierrors.MsgFieldRequired
	case domain.ReasonTooLong:
		return apierrors.MsgFieldTooLong
	case domain.ReasonInvalidChoice:
		return apierrors.MsgFieldInvalidChoice
	case domain.ReasonInvalidDate:
		return apierrors.MsgFieldInvalidDate
	default:
		return apierrors.MsgFieldInvalid
	}
}

// bindBody decodes the JSON body. An empty body decodes as {} so optional
// fields fall back to their defaults.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return validation.FromBindError(err)
	}
	return nil
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}

func parsePage(c *gin.Context, size int) (domain.PageRequest, bool) {
	number, ok := validation.ParsePageNumber(c.Query("page"))
	if !ok {
		respondInvalidPage(c)
		return domain.PageRequest{}, false
	}
	req := domain.PageRequest{Number: number, Size: size}.Normalize()
	if !req.InRange() {
		respondInvalidPage(c)
		return domain.PageRequest{}, false
	}
	return req, true
}

func respondInvalidPage(c *gin.Context) {
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgInvalidPage, middleware.GetLang(c)),
	)
}

// writePage renders one page of results with absolute next/previous links.
// Asking for a page past the end answers 404, except for the first page of
// an empty collection.
func writePage[T any](c *gin.Context, req domain.PageRequest, total int, results []T) {
	if req.Number > 1 && req.Offset() >= total {
		respondInvalidPage(c)
		return
	}

	page := dto.Page[T]{Count: total, Results: results}
	if req.Offset()+len(results) < total {
		page.Next = pageURL(c, req.Number+1)
	}
	if req.Number > 1 {
		page.Previous = pageURL(c, req.Number-1)
	}
	c.JSON(http.StatusOK, page)
}

func pageURL(c *gin.Context, number int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	query := c.Request.URL.Query()
	if number <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(number))
	}

	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path, RawQuery: query.Encode()}
	link := u.String()
	return &link
}
