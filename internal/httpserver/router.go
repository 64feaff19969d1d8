package httpserver

import (
	"context"
	"errors"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context, categoryKey string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	ListByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// SessionStore hands out per-shopper state keyed by session id.
type SessionStore interface {
	Issue() (string, *appstate.AppState, error)
	Lookup(id string) (*appstate.AppState, error)
	End(id string) error
}

// Deps holds the services used by the handlers.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
	Sessions    SessionStore
	// Ready reports catalog backend health for /readyz. Nil means always ready.
	Ready func(ctx context.Context) error
	// CORSOrigins lists allowed storefront origins; "*" or empty allows all.
	CORSOrigins []string
}

type handlers struct {
	products   ProductService
	categories CategoryService
	sessions   SessionStore
	sanitizer  *bluemonday.Policy
	logger     *zap.Logger
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.CategorySvc == nil || deps.Sessions == nil {
		return nil, errors.New("httpserver: product, category and session services are required")
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(logger), recovery(logger), cors.New(corsConfig(deps.CORSOrigins)))

	h := &handlers{
		products:   deps.ProductSvc,
		categories: deps.CategorySvc,
		sessions:   deps.Sessions,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Ready))

	router.POST("/sessions", h.createSession)

	router.GET("/products", h.listProducts)
	router.GET("/products/:id", h.getProduct)
	router.GET("/categories", h.listCategories)

	scoped := router.Group("/", sessionMiddleware(deps.Sessions))
	scoped.DELETE("/sessions/current", h.endSession)

	scoped.GET("/vouchers", h.listVouchers)
	scoped.GET("/vouchers/:slotId/products", h.voucherProducts)
	scoped.POST("/vouchers/:slotId/redeem", h.redeemVoucher)
	scoped.GET("/vouchers/copied", h.listCopiedCodes)
	scoped.POST("/vouchers/copied", h.copyCode)

	scoped.GET("/cart", h.getCart)
	scoped.POST("/cart/items", h.addCartItem)
	scoped.PATCH("/cart/items/:productId", h.updateCartItem)
	scoped.DELETE("/cart/items/:productId", h.removeCartItem)

	scoped.GET("/wishlist", h.getWishlist)
	scoped.POST("/wishlist/items", h.addWishlistItem)
	scoped.GET("/wishlist/items/:productId", h.wishlistContains)
	scoped.POST("/wishlist/items/:productId/toggle", h.toggleWishlistItem)
	scoped.DELETE("/wishlist/items/:productId", h.removeWishlistItem)

	scoped.POST("/checkout/quote", h.quote)
	scoped.POST("/checkout", h.checkout)

	scoped.POST("/auth/login", h.login)
	scoped.POST("/auth/register", h.register)
	scoped.POST("/auth/logout", h.logout)
	scoped.GET("/auth/me", h.me)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, sessionHeader)
	cfg.ExposeHeaders = []string{sessionHeader}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
