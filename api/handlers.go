package api

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/ingestion"
	"github.com/soniclabs/callscribe/storage"
)

// handleStatus answers the liveness probe.
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Good Request."})
}

// handleListCalls returns all stored calls, most recent first.
func (s *Server) handleListCalls(c *gin.Context) {
	records, err := s.repository.ListCalls(c.Request.Context(), 0)
	if err != nil {
		s.logger.Error("failed to list calls", "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to fetch calls",
			Details: err.Error(),
		})
		return
	}

	calls := make([]callResponse, len(records))
	for i, record := range records {
		calls[i] = toCallResponse(record)
	}

	c.JSON(http.StatusOK, callListResponse{Success: true, Calls: calls})
}

// handleGetCall returns a single call by ID.
func (s *Server) handleGetCall(c *gin.Context) {
	id := c.Param("id")

	record, err := s.repository.GetCall(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Call not found"})
			return
		}
		s.logger.Error("failed to fetch call", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to fetch call",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toCallResponse(record))
}

// handleUpload accepts a multipart audio upload and runs the full
// ingestion pipeline. Pipeline execution is submitted to the upload
// pool so concurrent uploads are bounded.
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No file provided"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No file selected"})
		return
	}

	audioData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Failed to read file", Details: err.Error()})
		return
	}

	type outcome struct {
		result *ingestion.Result
		err    error
	}
	done := make(chan outcome, 1)

	submitErr := s.uploadPool.Submit(func() {
		result, err := s.pipeline.Ingest(c.Request.Context(), audioData, header.Filename)
		done <- outcome{result: result, err: err}
	})
	if submitErr != nil {
		s.logger.Error("upload pool rejected task", "err", submitErr)
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Server busy, try again later"})
		return
	}

	out := <-done
	if out.err != nil {
		s.respondIngestError(c, out.err)
		return
	}

	if out.result.Degraded() {
		s.logger.Warn("upload stored without insights",
			"id", out.result.Record.Id, "err", out.result.EnrichmentErr)
	}

	c.JSON(http.StatusOK, toCallResponse(out.result.Record))
}

// respondIngestError maps pipeline errors to HTTP statuses: the
// caller's input gets 400, everything else 500.
func (s *Server) respondIngestError(c *gin.Context, err error) {
	var validationErr *ingestion.ValidationError
	if errors.As(err, &validationErr) {
		if errors.Is(err, core.ErrFileTypeNotAllowed) {
			allowed := make([]string, 0, len(core.AllowedExtensions))
			for ext := range core.AllowedExtensions {
				allowed = append(allowed, ext)
			}
			sort.Strings(allowed)
			c.JSON(http.StatusBadRequest, errorResponse{
				Error: "Invalid file type. Allowed types: " + strings.Join(allowed, ", "),
			})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
		return
	}

	s.logger.Error("upload failed", "err", err)
	c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
