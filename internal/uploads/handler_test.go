package uploads_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/extract"
	"jobhunter-backend/internal/profile"
	"jobhunter-backend/internal/uploads"
)

type fakeParser struct {
	profile profile.Profile
	err     error
	gotText string
}

func (f *fakeParser) ParseResume(ctx context.Context, text string) (profile.Profile, error) {
	f.gotText = text
	return f.profile, f.err
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, fileName, mimeType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", mimeType)
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
	req := httptest.NewRequest(http.MethodPost, "/parse-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newUploadsRouter(p *fakeParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uploads.NewHandler(p).RegisterRoutes(r)
	return r
}

func TestParseResume(t *testing.T) {
	parsed := profile.Profile{
		Name:   "Ada Lovelace",
		Skills: []string{"Python", "python", "SQL"},
	}
	fake := &fakeParser{profile: parsed}
	router := newUploadsRouter(fake)

	doc := `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>Ada Lovelace - Engineer</w:t></w:r></w:p></w:body></w:document>`
	req := uploadRequest(t, "resume.docx", extract.MimeDOCX, buildDocx(t, doc))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(fake.gotText, "Ada Lovelace - Engineer") {
		t.Fatalf("parser received text %q", fake.gotText)
	}

	var body struct {
		Success bool            `json:"success"`
		Data    profile.Profile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	// The handler returns the normalized profile: skills lowercased, deduped.
	want := []string{"python", "sql"}
	if len(body.Data.Skills) != len(want) {
		t.Fatalf("skills = %v, want %v", body.Data.Skills, want)
	}
	for i := range want {
		if body.Data.Skills[i] != want[i] {
			t.Fatalf("skills = %v, want %v", body.Data.Skills, want)
		}
	}
}

func TestParseResumeRejectsUnsupportedType(t *testing.T) {
	router := newUploadsRouter(&fakeParser{})

	req := uploadRequest(t, "resume.txt", "text/plain", []byte("plain text resume"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestParseResumeMissingFile(t *testing.T) {
	router := newUploadsRouter(&fakeParser{})

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestParseResumeParserFailure(t *testing.T) {
	fake := &fakeParser{err: errors.New("upstream down")}
	router := newUploadsRouter(fake)

	doc := `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>text</w:t></w:r></w:p></w:body></w:document>`
	req := uploadRequest(t, "resume.docx", extract.MimeDOCX, buildDocx(t, doc))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.Code)
	}
}

func TestParseResumeEmptyProfile(t *testing.T) {
	fake := &fakeParser{profile: profile.Profile{Name: "Nobody"}}
	router := newUploadsRouter(fake)

	doc := `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>text</w:t></w:r></w:p></w:body></w:document>`
	req := uploadRequest(t, "resume.docx", extract.MimeDOCX, buildDocx(t, doc))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.Code)
	}
}
