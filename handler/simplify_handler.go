package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitesh0303/union-coders/service"
	"github.com/hitesh0303/union-coders/types"
)

type SimplifyHandler struct {
	simplifyService *service.SimplifyService
	maxUploadBytes  int64
}

func NewSimplifyHandler(simplifyService *service.SimplifyService, maxUploadBytes int64) *SimplifyHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &SimplifyHandler{
		simplifyService: simplifyService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// HandleSimplify accepts a multipart upload and responds with the extracted
// text and its plain-language rewrite in one JSON payload.
func (h *SimplifyHandler) HandleSimplify(c *gin.Context) {
	content, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	doc, err := h.simplifyService.SimplifyDocument(c.Request.Context(), content, filename, nil)
	if err != nil {
		c.JSON(statusForError(err), types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.SimplifyResponse{
			Original:   doc.Original,
			Simplified: doc.Simplified,
		},
	})
}

// HandleSimplifyStream runs the same pipeline but streams per-chunk progress
// as SSE, ending with a result (or error) event.
func (h *SimplifyHandler) HandleSimplifyStream(c *gin.Context) {
	content, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	statusChan := make(chan types.ProcessingDocumentStatus)
	errChan := make(chan error, 1)
	resultChan := make(chan *types.Document, 1)
	go func() {
		doc, err := h.simplifyService.SimplifyDocument(ctx, content, filename, statusChan)
		if err != nil {
			errChan <- err
			return
		}
		resultChan <- doc
	}()

	// Create a channel to detect client disconnect
	clientGone := c.Writer.CloseNotify()
	for {
		select {
		case <-clientGone:
			return // Client disconnected
		case status := <-statusChan:
			jsonStatus, err := json.Marshal(status)
			if err != nil {
				continue
			}
			c.SSEvent("message", string(jsonStatus))
			c.Writer.Flush()
		case err := <-errChan:
			body, _ := json.Marshal(types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			c.SSEvent("error", string(body))
			c.Writer.Flush()
			return
		case doc := <-resultChan:
			body, _ := json.Marshal(types.DataResponse{
				Status: true,
				Data: types.SimplifyResponse{
					Original:   doc.Original,
					Simplified: doc.Simplified,
				},
			})
			c.SSEvent("result", string(body))
			c.Writer.Flush()
			return
		}
	}
}

func (h *SimplifyHandler) readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return nil, "", false
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return nil, "", false
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Could not read uploaded file",
		})
		return nil, "", false
	}
	if int64(len(content)) > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return nil, "", false
	}

	return content, header.Filename, true
}

func statusForError(err error) int {
	if errors.Is(err, service.ErrUnsupportedType) || errors.Is(err, service.ErrEmptyDocument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
