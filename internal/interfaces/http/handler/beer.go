package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	beerapp "github.com/beerworks/backend/internal/application/beer"
	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/interfaces/http/middleware"
)

// BeerHandler handles beer-related API endpoints
type BeerHandler struct {
	BaseHandler
	beers         *beerapp.AsyncService
	aggregation   *beerapp.AggregationService
	audits        beer.AuditRepository
	bulkChunkSize int
}

// BeerHandlerOption is a functional option for BeerHandler configuration
type BeerHandlerOption func(*BeerHandler)

// WithBulkChunkSize sets the chunk size used when a bulk request omits one
func WithBulkChunkSize(size int) BeerHandlerOption {
	return func(h *BeerHandler) {
		h.bulkChunkSize = size
	}
}

// NewBeerHandler creates a new BeerHandler
func NewBeerHandler(beers *beerapp.AsyncService, aggregation *beerapp.AggregationService, audits beer.AuditRepository, opts ...BeerHandlerOption) *BeerHandler {
	h := &BeerHandler{
		beers:       beers,
		aggregation: aggregation,
		audits:      audits,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// BulkSaveRequest represents a request to import many beers at once
type BulkSaveRequest struct {
	Beers     []beerapp.CreateBeerRequest `json:"beers" binding:"required,min=1,dive"`
	ChunkSize int                         `json:"chunk_size" binding:"omitempty,min=1"`
}

// AuditResponse represents one audit trail entry in API responses
type AuditResponse struct {
	ID             uuid.UUID       `json:"id"`
	BeerID         uuid.UUID       `json:"beer_id"`
	Name           string          `json:"name"`
	Style          beer.Style      `json:"style"`
	UPC            string          `json:"upc"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand *int            `json:"quantity_on_hand,omitempty"`
	AuditEventType string          `json:"audit_event_type"`
	PrincipalName  *string         `json:"principal_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toAuditResponse(a beer.Audit) AuditResponse {
	return AuditResponse{
		ID:             a.ID,
		BeerID:         a.BeerID,
		Name:           a.Name,
		Style:          a.Style,
		UPC:            a.UPC,
		Price:          a.Price,
		QuantityOnHand: a.QuantityOnHand,
		AuditEventType: a.AuditEventType,
		PrincipalName:  a.PrincipalName,
		CreatedAt:      a.CreatedAt,
	}
}

// List returns a page of beers. When the featured query parameter carries a
// beer ID the page is joined with that beer's detail and both are returned
// under the "page" and "featured" keys.
func (h *BeerHandler) List(c *gin.Context) {
	var query beerapp.ListBeersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	if featured := c.Query("featured"); featured != "" {
		featuredID, err := uuid.Parse(featured)
		if err != nil {
			h.BadRequest(c, "featured must be a valid UUID")
			return
		}
		result, err := h.aggregation.ListAndFeatured(c.Request.Context(), query, featuredID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, result)
		return
	}

	page, err := h.beers.List(c.Request.Context(), query).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a single beer by ID
func (h *BeerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid beer ID")
		return
	}

	resp, err := h.beers.Get(c.Request.Context(), id).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp == nil {
		h.NotFound(c, "Beer not found")
		return
	}
	h.Success(c, resp)
}

// Create creates a new beer
func (h *BeerHandler) Create(c *gin.Context) {
	var req beerapp.CreateBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	resp, err := h.beers.Create(c.Request.Context(), req, principal).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update replaces all mutable fields of a beer
func (h *BeerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid beer ID")
		return
	}

	var req beerapp.UpdateBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	resp, err := h.beers.Update(c.Request.Context(), id, req, principal).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp == nil {
		h.NotFound(c, "Beer not found")
		return
	}
	h.Success(c, resp)
}

// Patch applies a partial update to a beer
func (h *BeerHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid beer ID")
		return
	}

	var req beerapp.PatchBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	resp, err := h.beers.Patch(c.Request.Context(), id, req, principal).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp == nil {
		h.NotFound(c, "Beer not found")
		return
	}
	h.Success(c, resp)
}

// Delete removes a beer
func (h *BeerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid beer ID")
		return
	}

	principal := middleware.CurrentPrincipal(c)
	deleted, err := h.beers.Delete(c.Request.Context(), id, principal).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "Beer not found")
		return
	}
	h.NoContent(c)
}

// BulkSave imports a batch of beers in transactional chunks
func (h *BeerHandler) BulkSave(c *gin.Context) {
	var req BulkSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	chunkSize := req.ChunkSize
	if chunkSize == 0 {
		chunkSize = h.bulkChunkSize
	}

	principal := middleware.CurrentPrincipal(c)
	saved, err := h.beers.SaveAllChunked(c.Request.Context(), principal, req.Beers, chunkSize).Wait(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, saved)
}

// Audits returns the audit trail for one beer, oldest first
func (h *BeerHandler) Audits(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid beer ID")
		return
	}

	trail, err := h.audits.FindByBeerID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]AuditResponse, 0, len(trail))
	for _, a := range trail {
		responses = append(responses, toAuditResponse(a))
	}
	h.Success(c, responses)
}

// RegisterRoutes registers all beer routes
func (h *BeerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	beers := rg.Group("/beers")
	{
		beers.GET("", h.List)
		beers.POST("", h.Create)
		beers.POST("/bulk", h.BulkSave)
		beers.GET("/:id", h.Get)
		beers.PUT("/:id", h.Update)
		beers.PATCH("/:id", h.Patch)
		beers.DELETE("/:id", h.Delete)
		beers.GET("/:id/audits", h.Audits)
	}
}
