package documents

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"vitae-backend/internal/extract/extracttest"
)

func newRouter(maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(maxBytes).RegisterRoutes(r.Group("/api"))
	return r
}

func uploadRequest(t *testing.T, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return payload
}

func TestExtractPlainText(t *testing.T) {
	router := newRouter(0)
	req := uploadRequest(t, "cv.txt", "text/plain; charset=utf-8", []byte("Jane Doe\nGo developer"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decode(t, resp)
	if payload["text"] != "Jane Doe\nGo developer" {
		t.Fatalf("unexpected text %v", payload["text"])
	}
	if payload["fileName"] != "cv.txt" || payload["chars"] != float64(21) {
		t.Fatalf("unexpected metadata %v", payload)
	}
}

func TestExtractSniffsGenericDocx(t *testing.T) {
	router := newRouter(0)
	data := extracttest.DOCXParagraphs(t, "Alpha", "Beta")
	req := uploadRequest(t, "cv.docx", "application/octet-stream", data)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decode(t, resp)
	if payload["text"] != "Alpha\n\nBeta" {
		t.Fatalf("unexpected text %q", payload["text"])
	}
	if !strings.Contains(payload["mimeType"].(string), "wordprocessingml") {
		t.Fatalf("expected sniffed docx mime type, got %v", payload["mimeType"])
	}
}

func TestExtractPDF(t *testing.T) {
	router := newRouter(0)
	data := extracttest.PDF(t, []string{"Experience", "Education"})
	req := uploadRequest(t, "cv.pdf", "application/pdf", data)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	text := decode(t, resp)["text"].(string)
	if strings.Count(text, "\n") != 1 || !strings.Contains(text, "Experience") || !strings.Contains(text, "Education") {
		t.Fatalf("unexpected pdf text %q", text)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name        string
		maxBytes    int64
		contentType string
		data        []byte
		wantStatus  int
		wantCode    string
	}{
		{
			name:        "unsupported type",
			contentType: "image/png",
			data:        []byte("\x89PNG\r\n\x1a\n"),
			wantStatus:  http.StatusUnsupportedMediaType,
			wantCode:    "unsupported_file_type",
		},
		{
			name:        "corrupt pdf",
			contentType: "application/pdf",
			data:        []byte("%PDF-1.4 this is not really a pdf"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "unsupported_content",
		},
		{
			name:        "too large",
			maxBytes:    8,
			contentType: "text/plain",
			data:        []byte("this body is longer than eight bytes"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "file_too_large",
		},
		{
			name:        "empty file",
			contentType: "text/plain",
			data:        []byte{},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_error",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(tt.maxBytes)
			req := uploadRequest(t, "upload.bin", tt.contentType, tt.data)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
			payload := decode(t, resp)
			if payload["code"] != tt.wantCode {
				t.Fatalf("expected code %s, got %v", tt.wantCode, payload["code"])
			}
			if msg, ok := payload["error"].(string); !ok || msg == "" {
				t.Fatalf("expected error message, got %v", payload["error"])
			}
		})
	}
}

func TestExtractRequiresFile(t *testing.T) {
	router := newRouter(0)
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if decode(t, resp)["code"] != "validation_error" {
		t.Fatalf("expected validation_error")
	}
}
