package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/soniclabs/callscribe/ai/mock"
	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/ingestion"
	"github.com/soniclabs/callscribe/storage"
	"github.com/soniclabs/callscribe/storage/badger"
	"github.com/soniclabs/callscribe/stt"
	sttmock "github.com/soniclabs/callscribe/stt/mock"
)

func newTestServer(t *testing.T, transcriber stt.Client) (*Server, storage.CallRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	pipeline, err := ingestion.NewPipeline(repo, transcriber, aimock.NewMockAnalyst())
	require.NoError(t, err)

	server, err := NewServer("127.0.0.1:0", repo, pipeline)
	require.NoError(t, err)
	t.Cleanup(func() {
		server.uploadPool.Release()
	})

	return server, repo
}

func multipartBody(t *testing.T, fieldName, filename string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func doRequest(server *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	rec := doRequest(server, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Good Request."}`, rec.Body.String())
}

func TestUpload(t *testing.T) {
	server, repo := newTestServer(t, sttmock.NewMockClient())

	body, contentType := multipartBody(t, "file", "call.mp3", []byte("fake audio"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(server, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp callResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.CallID)
	assert.Equal(t, "call.mp3", resp.Filename)
	assert.Equal(t, "Hello, this is a test call.", resp.Transcription)
	require.Len(t, resp.FormattedTranscript, 1)
	assert.Equal(t, "speaker_0", resp.FormattedTranscript[0].Speaker)
	assert.Equal(t, []string{"speaker_0"}, resp.Speakers)
	require.NotNil(t, resp.Insights)
	assert.NotEmpty(t, resp.UploadedAt)

	// Record is retrievable afterwards
	_, err := repo.GetCall(context.Background(), resp.CallID)
	assert.NoError(t, err)
}

func TestUpload_NoFile(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")

	rec := doRequest(server, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No file provided", resp.Error)
}

func TestUpload_WrongFieldName(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	body, contentType := multipartBody(t, "audio", "call.mp3", []byte("fake audio"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(server, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_InvalidFileType(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	body, contentType := multipartBody(t, "file", "notes.txt", []byte("text"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(server, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Invalid file type")
	assert.Contains(t, resp.Error, ".mp3")
	assert.Contains(t, resp.Error, ".wav")
}

func TestUpload_TranscriptionFailure(t *testing.T) {
	transcriber := sttmock.NewMockClient().WithConvertFunc(
		func(ctx context.Context, audio []byte, filename string) (*stt.Result, error) {
			return nil, errors.New("provider down")
		})
	server, repo := newTestServer(t, transcriber)

	body, contentType := multipartBody(t, "file", "call.mp3", []byte("fake audio"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(server, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)

	// No record stored
	calls, err := repo.ListCalls(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestGetCall(t *testing.T) {
	server, repo := newTestServer(t, sttmock.NewMockClient())

	created, err := repo.CreateCall(context.Background(), &core.CallRecord{
		Filename:      "call.wav",
		Transcription: "Hello.",
		Transcript:    []core.SpeakerTurn{{Speaker: "speaker_0", Text: "Hello.", Start: 0}},
		Speakers:      []string{"speaker_0"},
	})
	require.NoError(t, err)

	rec := doRequest(server, httptest.NewRequest(http.MethodGet, "/call/"+created.Id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp callResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, created.Id, resp.CallID)
	assert.Nil(t, resp.Insights, "insights stay null until enrichment")
}

func TestGetCall_NotFound(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	rec := doRequest(server, httptest.NewRequest(http.MethodGet, "/call/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Call not found", resp.Error)
}

func TestListCalls(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	// Empty store yields an empty list, not null
	rec := doRequest(server, httptest.NewRequest(http.MethodGet, "/calls", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp callListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Calls)
	assert.Empty(t, resp.Calls)

	// Upload two files and list again
	for _, name := range []string{"a.mp3", "b.mp3"} {
		body, contentType := multipartBody(t, "file", name, []byte("fake audio"))
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		uploadRec := doRequest(server, req)
		require.Equal(t, http.StatusOK, uploadRec.Code)
	}

	rec = doRequest(server, httptest.NewRequest(http.MethodGet, "/calls", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Calls, 2)
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t, sttmock.NewMockClient())

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	rec := doRequest(server, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
