package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	useCase usecase.ProductUseCase
	auth    middleware.AdminChecker
	log     *logrus.Logger
}

func NewAdminHandler(uc usecase.ProductUseCase, auth middleware.AdminChecker, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		useCase: uc,
		auth:    auth,
		log:     logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin", middleware.RequireAdmin(h.auth, h.log))
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.useCase.Dashboard()
	if err != nil {
		h.log.Errorf("Failed to build dashboard: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to build dashboard: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", d)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.AddProduct(input)
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", input.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create product: "+err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

// UpdateProduct replaces the product wholesale; the id in the path wins over
// any id in the body.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product := &domain.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
		Stock:       input.Stock,
	}
	updated, ok, err := h.useCase.UpdateProduct(product)
	if err != nil {
		h.log.Warnf("Failed to update product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update product: "+err.Error())
		return
	}
	if !ok {
		ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("Product with id %s not found, nothing updated", id))
		return
	}

	h.log.Infof("Product updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

// DeleteProduct requires confirm=true in the query string.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if confirmed, _ := strconv.ParseBool(c.Query("confirm")); !confirmed {
		h.log.Warnf("Delete of product ID %s attempted without confirmation", id)
		err := fmt.Errorf("deleting product %s needs confirm=true: %w", id, domain.ErrConfirmationRequired)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	deleted, err := h.useCase.DeleteProduct(id)
	if err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete product: "+err.Error())
		return
	}
	if !deleted {
		ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("Product with id %s not found, nothing deleted", id))
		return
	}

	h.log.Infof("Product deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
