package documents

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"vitae-backend/internal/extract"
	"vitae-backend/internal/shared/server/respond"
)

// Handler exposes text extraction over HTTP.
type Handler struct {
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(maxUploadBytes int64) *Handler {
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

// ExtractResponse is returned by POST /extract.
type ExtractResponse struct {
	Text     string `json:"text"`
	MimeType string `json:"mimeType"`
	FileName string `json:"fileName"`
	Chars    int    `json:"chars"`
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

func (h *Handler) extract(c *gin.Context) {
	doc, err := ReadUpload(c, h.MaxUploadBytes)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Set("documentKind", documentKind(doc.MimeType))

	text, err := extract.Extract(c.Request.Context(), doc)
	if err != nil {
		WriteError(c, err)
		return
	}

	respond.OK(c, ExtractResponse{
		Text:     text,
		MimeType: doc.MimeType,
		FileName: doc.FileName,
		Chars:    utf8.RuneCountInString(text),
	})
}

// WriteError writes upload and extraction failures; anything else is an internal error.
func WriteError(c *gin.Context, err error) {
	if status, code, ok := ExtractionStatus(err); ok {
		respond.Error(c, status, code, err.Error())
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error")
}

func documentKind(mimeType string) string {
	kind, err := extract.ParseKind(mimeType)
	if err != nil {
		return "unsupported"
	}
	return kind.String()
}
