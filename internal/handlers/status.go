package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	reportTemplate = "index.html.tmpl"
)

// Centralized error logging and response. The decode/transport error
// message is surfaced verbatim so a truncated or garbled frame is
// diagnosable from the response alone.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, logKey string, err error) {
	if h.log != nil && err != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.JSON(httpCode, gin.H{"error": err.Error()})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current controller status
// @Description  Polls the controller and decodes one fresh status frame.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.Status
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	st, err := h.services.Status.Poll(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "status_poll_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// report renders the HTML status page. Same poll path as the JSON API;
// the template formats each quantity through its unit type, so all
// scaling already happened in the decoder.
func (h *Handler) report(c *gin.Context) {
	st, err := h.services.Status.Poll(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("report_poll_failed", "err", err)
		}
		c.String(http.StatusInternalServerError, "internal error: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, reportTemplate, st)
}
