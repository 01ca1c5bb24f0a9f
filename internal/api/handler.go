package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/service"
)

// Handler provides HTTP handlers for the crypto analytics endpoints.
//
// Responsibilities:
//   - Pull raw inputs out of the HTTP request (multipart file, path params)
//   - Delegate all validation and business logic to the service layer
//   - Map service error kinds to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.CryptoService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CryptoService) *Handler {
	return &Handler{svc: svc}
}

// respondError maps a service error to its HTTP status and writes the
// standardized error body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch service.KindOf(err) {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNoContent:
		status = http.StatusNotFound
	}
	c.JSON(status, dto.NewErrorResponse(service.MessageOf(err), nil))
}

// UploadBatch handles POST /api/v1/cryptos/upload requests.
//
// UploadBatch godoc
// @Summary      Upload a price batch
// @Description  Ingests a SYMBOL_values.csv batch of timestamp,symbol,price rows
// @Tags         cryptos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Batch file named SYMBOL_values.csv"
// @Success      200   {object}  dto.UploadResponse     "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/cryptos/upload [post]
func (h *Handler) UploadBatch(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("missing form file \"file\"", err))
		return
	}
	if fileHeader.Size == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("file is empty", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to open uploaded file", err))
		return
	}
	defer func() { _ = f.Close() }()

	symbol, rows, err := h.svc.ProcessUpload(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Symbol: symbol, Rows: rows})
}

// GetSortedSymbols handles GET /api/v1/cryptos/sorted/:sortingType requests.
//
// GetSortedSymbols godoc
// @Summary      List symbols by ranking metric
// @Description  Returns all ingested symbols ordered by the named sorting mode
// @Tags         cryptos
// @Produce      json
// @Param        sortingType  path      string  true  "Sorting mode (case-insensitive)" example(normalized_desc)
// @Success      200          {array}   string
// @Failure      400          {object}  dto.ErrorResponse  "Unknown sorting mode"
// @Failure      404          {object}  dto.ErrorResponse  "No symbols ingested"
// @Router       /api/v1/cryptos/sorted/{sortingType} [get]
func (h *Handler) GetSortedSymbols(c *gin.Context) {
	symbols, err := h.svc.SortedSymbols(c.Param("sortingType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, symbols)
}

// GetSummary handles GET /api/v1/cryptos/metadata/:symbol requests.
//
// GetSummary godoc
// @Summary      Get symbol summary
// @Description  Returns oldest, newest, min, and max prices for a symbol
// @Tags         cryptos
// @Produce      json
// @Param        symbol  path      string  true  "Symbol (case-insensitive)" example(btc)
// @Success      200     {object}  dto.SummaryResponse
// @Failure      404     {object}  dto.ErrorResponse  "Unknown symbol"
// @Router       /api/v1/cryptos/metadata/{symbol} [get]
func (h *Handler) GetSummary(c *gin.Context) {
	sum, err := h.svc.SummaryFor(c.Param("symbol"))
	if err != nil {
		respondError(c, err)
		return
	}

	// The response exposes the four price aggregates only; the normalized
	// range stays internal and drives the sorted ranking instead.
	c.JSON(http.StatusOK, dto.SummaryResponse{
		OldestPrice: sum.OldestPrice,
		NewestPrice: sum.NewestPrice,
		MinPrice:    sum.MinPrice,
		MaxPrice:    sum.MaxPrice,
	})
}

// GetBestMover handles GET /api/v1/cryptos/best-mover/:date requests.
//
// GetBestMover godoc
// @Summary      Get best mover for a date
// @Description  Returns the symbol with the highest normalized price range on a calendar day
// @Tags         cryptos
// @Produce      json
// @Param        date  path      string  true  "Calendar date" example(2022-01-01)
// @Success      200   {object}  dto.BestMoverResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad date format"
// @Failure      404   {object}  dto.ErrorResponse  "No data for date"
// @Router       /api/v1/cryptos/best-mover/{date} [get]
func (h *Handler) GetBestMover(c *gin.Context) {
	date := c.Param("date")
	symbol, err := h.svc.BestMover(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BestMoverResponse{Date: date, Symbol: symbol})
}
