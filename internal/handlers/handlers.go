package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/components"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/models"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/styling"
	"github.com/Zachkp/folio/internal/util"
	"github.com/Zachkp/folio/web"
)

// Store is the persistence the handlers need.
type Store interface {
	Ping(ctx context.Context) error
	TrackVisit(ip, userAgent, path string)
	RecordMetric(ctx context.Context, m store.Metric) (store.Metric, error)
	Stats(ctx context.Context) (*store.Stats, error)
	Cleanup(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Handler holds the dependencies shared by all routes.
type Handler struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    Store
	mailer   Mailer
	styles   *styling.Config
	site     models.Site
	images   components.ImageResolver
	renderer *web.Renderer

	css  string
	etag string
}

// Deps are the constructor inputs of New.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    Store
	Mailer   Mailer
	Styles   *styling.Config
	Site     models.Site
	Renderer *web.Renderer
}

// New creates a Handler. The stylesheet is rendered once here since the
// tokens never change after startup.
func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	css := d.Styles.CSS()
	return &Handler{
		cfg:      d.Config,
		logger:   logger,
		store:    d.Store,
		mailer:   d.Mailer,
		styles:   d.Styles,
		site:     d.Site,
		images:   components.ImageResolver{Dir: d.Config.ImagesDir, URLPrefix: "/images"},
		renderer: d.Renderer,
		css:      css,
		etag:     styling.ETag(css),
	}
}

// Routes configures all routes and returns the engine
func (h *Handler) Routes() *gin.Engine {
	r := gin.New()
	r.HTMLRender = h.renderer

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.logger))
	r.Use(VisitorTracking(h.store))

	r.StaticFS("/static", http.FS(web.Static()))
	r.Static("/images", h.cfg.ImagesDir)
	r.GET("/site.css", h.Stylesheet)

	r.GET("/", h.Home)
	r.GET("/privacy", h.Privacy)
	r.GET("/projects/:slug/case-study", h.CaseStudy)
	r.POST("/contact", h.Contact)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/projects", h.ListProjects)
		api.GET("/projects/:slug", h.GetProject)
		api.POST("/metrics", h.RecordMetric)
	}

	if h.cfg.AdminToken != "" {
		admin := r.Group("/admin/api")
		admin.Use(AdminAuth(h.cfg.AdminToken))
		{
			admin.GET("/stats", h.AdminStats)
			admin.POST("/cleanup", h.AdminCleanup)
		}
	} else {
		h.logger.Info("admin api disabled: ADMIN_TOKEN not set")
	}

	return r
}

func (h *Handler) seoDefaults() util.SiteDefaults {
	return util.SiteDefaults{
		Name:        h.site.Name,
		URL:         h.cfg.SiteURL,
		Description: h.site.Description,
		Image:       h.site.Image,
		Twitter:     h.site.Twitter,
	}
}

// respondError writes an error JSON response
func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
