package http

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

// processScheduleReq reads and decodes the schedule request body. The raw
// bytes are returned alongside so the handler can derive a cache key from
// exactly what the caller sent.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, []byte, error) {
	var req scheduleReq

	raw, err := c.GetRawData()
	if err != nil {
		return req, nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, raw, req.validate()
}

// processFreeWindowsReq binds the free-windows request body.
func (h *handler) processFreeWindowsReq(c *gin.Context) (freeWindowsReq, error) {
	var req freeWindowsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
