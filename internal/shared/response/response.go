package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the single response shape for every endpoint. Exactly one
// of Data or Error is set.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Rejection  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Rejection pairs a stable machine-readable kind with the human-readable
// reason every rejected operation carries. Lifecycle rejections put their
// domain code (ORDnnn and friends) in Kind.
type Rejection struct {
	Kind    string      `json:"kind"`
	Reason  string      `json:"reason"`
	Details interface{} `json:"details,omitempty"`
}

// Meta carries pagination for list endpoints.
type Meta struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

// NewMeta derives the page count from the total so handlers never do it
// by hand.
func NewMeta(page, limit, total int) *Meta {
	m := &Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		m.TotalPages = (total + limit - 1) / limit
	}
	return m
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Envelope{Success: true, Data: data, Meta: meta})
}

// ErrorResponse rejects with a kind and reason.
func ErrorResponse(c *gin.Context, statusCode int, kind, reason string) {
	c.JSON(statusCode, Envelope{Success: false, Error: &Rejection{Kind: kind, Reason: reason}})
}

// ErrorWithDetails attaches structured details, typically field-level
// validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, kind, reason string, details interface{}) {
	c.JSON(statusCode, Envelope{Success: false, Error: &Rejection{Kind: kind, Reason: reason, Details: details}})
}

// Shorthands for the generic kinds; domain rejections with their own
// codes go through ErrorResponse directly.

func BadRequest(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", reason)
}

func Unauthorized(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", reason)
}

func Forbidden(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", reason)
}

func NotFound(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", reason)
}

func Conflict(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", reason)
}

func UnprocessableEntity(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", reason)
}

func InternalServerError(c *gin.Context, reason string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", reason)
}
