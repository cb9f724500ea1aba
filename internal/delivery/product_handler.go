package delivery

import (
	"net/http"
	"strconv"

	"product_service/internal/domain"
	"product_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductService
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		writeError(c, h.log, &domain.RequestBodyError{Detail: err.Error()})
		return
	}

	created, err := h.useCase.Create(input)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetByID(id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	req, err := domain.ResolvePageRequest(c.Query("page"), c.Query("size"), c.Query("sort"))
	if err != nil {
		h.log.Warnf("Invalid listing parameters: %v", err)
		writeError(c, h.log, err)
		return
	}

	page, err := h.useCase.ListPage(req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		writeError(c, h.log, &domain.RequestBodyError{Detail: err.Error()})
		return
	}

	updated, err := h.useCase.Update(id, input)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// productID parses the id path parameter. Negative or zero ids are still
// integer-shaped and go through to the lookup, which reports them as not
// found; only non-numeric values are a parameter type mismatch.
func (h *ProductHandler) productID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		writeError(c, h.log, &domain.ParamError{Name: "id", Value: idStr, Type: "integer"})
		return 0, false
	}
	return id, true
}
