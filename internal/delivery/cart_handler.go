package delivery

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddToCart)
		cart.PATCH("/items/:product_id", h.UpdateQuantity)
		cart.DELETE("/items/:product_id", h.RemoveFromCart)
		cart.POST("/checkout", h.Checkout)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.useCase.Cart())
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for add to cart: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.useCase.AddToCart(req.ProductID)
	if err != nil {
		h.log.Warnf("Failed to add product %s to cart: %v", req.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to add to cart: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product added to cart", state)
}

// UpdateQuantity accepts any integer; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("product_id")
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for quantity update of %s: %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	state := h.useCase.UpdateQuantity(productID, *req.Quantity)
	SuccessResponse(c, http.StatusOK, "Cart updated", state)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	state := h.useCase.RemoveFromCart(c.Param("product_id"))
	SuccessResponse(c, http.StatusOK, "Product removed from cart", state)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart cleared", h.useCase.ClearCart())
}

func (h *CartHandler) Checkout(c *gin.Context) {
	order, err := h.useCase.Checkout(c.Request.Context())
	if err != nil {
		h.log.Warnf("Checkout failed: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Checkout failed: "+err.Error())
		return
	}

	h.log.Infof("Order placed: ID %s, total %s", order.ID, order.Total.StringFixed(2))
	SuccessResponse(c, http.StatusCreated, "Order placed successfully", order)
}
