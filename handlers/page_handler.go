// Controller for the catalog and intake pages
package handlers

import (
	"agent-portfolio-app/models"
	"agent-portfolio-app/services"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
)

const contentTypeHTML = "text/html; charset=utf-8"

type PageHandler struct {
	renderService *services.RenderService
	catalog       models.Catalog
}

func NewPageHandler(renderService *services.RenderService, catalog models.Catalog) *PageHandler {
	return &PageHandler{
		renderService: renderService,
		catalog:       catalog,
	}
}

// Catalog renders the agent grid
func (h *PageHandler) Catalog(c *gin.Context) {
	body, err := h.renderService.RenderCatalog(h.catalog)
	if err != nil {
		log.Printf("Error rendering catalog: %v", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	writePage(c, body)
}

// Intake renders the intake form
func (h *PageHandler) Intake(c *gin.Context) {
	body, err := h.renderService.RenderIntake()
	if err != nil {
		log.Printf("Error rendering intake form: %v", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	writePage(c, body)
}

// SubmitIntake handles the form when the page script did not run. Only the
// instruction field is read; the optional credential fields are ignored.
func (h *PageHandler) SubmitIntake(c *gin.Context) {
	instruction := c.PostForm(models.InstructionField.ID)

	target, err := h.renderService.IntakeTarget(instruction)
	if err != nil {
		log.Printf("Error building intake target: %v", err)
		c.String(http.StatusInternalServerError, "failed to build redirect")
		return
	}

	c.Redirect(http.StatusSeeOther, target)
}

// Health reports liveness and the size of the served catalog
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"agents": h.catalog.Len(),
	})
}

func writePage(c *gin.Context, body []byte) {
	etag := services.PageETag(body)
	c.Header(headers.ETag, etag)
	c.Header(headers.CacheControl, "no-cache")

	if etagMatches(c.GetHeader(headers.IfNoneMatch), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, contentTypeHTML, body)
}

// etagMatches implements the If-None-Match comparison for a strong tag
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
