package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	planning "github.com/eucorp/planning"
	domainauth "github.com/eucorp/planning/internal/domain/auth"
	"github.com/eucorp/planning/internal/service"
	"github.com/eucorp/planning/internal/view"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Classifications *service.ClassificationService
	Departments     *service.DepartmentService
	Leads           *service.LeadService
	Goals           *service.GoalService
	Objectives      *service.ObjectiveService
	Opportunities   *service.OpportunityService
	Profiles        *service.ProfileService
	Ratings         *service.RatingService
	Monitoring      *service.MonitoringService
	Evaluation      *service.EvaluationService
	Auth            *service.AuthService
	CookieDomain    string
	IsDev           bool         // Development mode flag for hot reloading, etc.
	Logger          *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
	}

	registerEvaluateRoutes(mux, &EvaluateHandlers{Evaluator: services.Evaluation}, services.Auth)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	// UI routes with template renderer
	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Auth: services.Auth, CookieDomain: services.CookieDomain}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	// Apply browser detection middleware
	return BrowserDetection()(handler)
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/public")

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(planning.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, resolver := setupProdAssets(diskManifestPath)
	return templateFS, criticalCSSFS, resolver
}

// setupProdAssets configures critical CSS FS and asset resolver for production mode.
func setupProdAssets(diskManifestPath string) (fs.FS, *AssetResolver) {
	staticSub, err := fs.Sub(planning.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return nil, tryDiskManifest(diskManifestPath)
	}

	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("failed to load asset manifest from embedded FS: %v", err)
		return staticSub, tryDiskManifest(diskManifestPath)
	}

	return staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	// Choose template filesystem based on dev mode
	var templateFS fs.FS
	var criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")

	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}

	if resolver == nil {
		resolver = &AssetResolver{}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	var resolverSvc *view.Resolver
	if services.Profiles != nil {
		resolverSvc = view.NewResolver(view.ResolverOptions{
			Profiles: services.Profiles,
			Logger:   services.Logger,
		})
	}

	return &UIHandlers{
		T:                 tr,
		Resolver:          resolverSvc,
		ClassificationSvc: services.Classifications,
		DepartmentSvc:     services.Departments,
		LeadSvc:           services.Leads,
		GoalSvc:           services.Goals,
		ObjectiveSvc:      services.Objectives,
		OpportunitySvc:    services.Opportunities,
		ProfileSvc:        services.Profiles,
		RatingSvc:         services.Ratings,
		MonitoringSvc:     services.Monitoring,
		Evaluator:         services.Evaluation,
		IsDev:             services.IsDev,
		Logger:            services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk with fallback for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		// Dev mode: serve from disk with fallback for hot reloading
		mfs := multiFS{
			http.Dir("frontend/static"),
			http.Dir("frontend/public"),
			devCSSFS{},
		}
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(mfs)))
	}

	// Production mode: serve from embedded FS
	staticSub, err := fs.Sub(planning.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// multiFS provides fallback filesystem for dev mode.
type multiFS []http.FileSystem

func (m multiFS) Open(name string) (http.File, error) {
	for _, fsys := range m {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		// ignore not-exist and try next, but return early on other errors
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, os.ErrNotExist
}

// devCSSFS maps a single CSS path used during dev to the source stylesheet.
type devCSSFS struct{}

func (devCSSFS) Open(name string) (http.File, error) {
	if strings.TrimPrefix(name, "/") == "css/styles.css" || name == "css/styles.css" {
		return os.Open("frontend/styles/index.css")
	}
	return nil, os.ErrNotExist
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Regex to match content-hashed filenames including optional .map (e.g., app.abc123.js, styles.def456.css, app.abc123.js.map)
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a content-hashed asset
		if hashedFilePattern.MatchString(r.URL.Path) {
			// Hashed assets can be cached for a long time (1 year)
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			// Non-hashed assets (dev mode) should not be cached
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// registerEvaluateRoutes wires the goal evaluation API.
func registerEvaluateRoutes(mux *http.ServeMux, h *EvaluateHandlers, auth *service.AuthService) {
	wrap := func(hh http.Handler) http.Handler {
		if auth != nil {
			return RequireRole(auth, domainauth.RoleAdmin)(hh)
		}
		return hh
	}
	mux.Handle("POST /api/evaluate-goal", wrap(http.HandlerFunc(h.EvaluateGoal)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         *service.AuthService
	CookieDomain string
}

// authWrap returns a no-op wrapper when auth is nil, otherwise applies
// OptionalAuth. Page GETs always reach the handler; the page resolver renders
// the session failure message when no session is present.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return OptionalAuth(cfg.Auth)
}

// userWrap returns a no-op wrapper when auth is nil, otherwise applies
// RequireAuthBrowser with CSRF protection. Used for mutating routes available
// to every authenticated role.
func (cfg uiRouteConfig) userWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	authCheck := RequireAuthBrowser(cfg.Auth)
	return func(h http.Handler) http.Handler {
		return authCheck(csrf(h))
	}
}

// adminWrap returns a no-op wrapper when auth is nil, otherwise applies RequireRoleBrowser with CSRF protection.
func (cfg uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	// Chain CSRF protection with admin role requirement
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	roleCheck := RequireRoleBrowser(cfg.Auth, domainauth.RoleAdmin)
	return func(h http.Handler) http.Handler {
		return roleCheck(csrf(h))
	}
}

// registerUIRoutes delegates to per-domain UI route registration functions (≤3 params each).
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIHomeRoutes(mux, h, cfg)
	registerUIReferenceRoutes(mux, h, cfg)
	registerUIPlanRoutes(mux, h, cfg)
	registerUIOpportunityRoutes(mux, h, cfg)
	registerUIMonitoringRoutes(mux, h, cfg)
	registerUIRiskRoutes(mux, h, cfg)
	registerUIUserRoutes(mux, h, cfg)
	// Public auth-related UI routes (no auth wrapper)
	mux.Handle("GET /login", http.HandlerFunc(h.Login))
	mux.Handle("GET /auth/signed-out", http.HandlerFunc(h.SignedOut))
}

// registerUIHomeRoutes wires the dashboard and profile pages.
func registerUIHomeRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /", wrap(http.HandlerFunc(h.Home)))
	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.Profile)))
}

// registerUIReferenceRoutes wires classification, department, and lead pages.
func registerUIReferenceRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /classification", wrap(http.HandlerFunc(h.Classifications)))
	mux.Handle("GET /classification/new", wrapAdmin(http.HandlerFunc(h.ClassificationNew)))
	mux.Handle("GET /classification/{id}/edit", wrapAdmin(http.HandlerFunc(h.ClassificationEdit)))
	mux.Handle("POST /classification", wrapAdmin(http.HandlerFunc(h.ClassificationCreate)))
	mux.Handle("POST /classification/{id}", wrapAdmin(http.HandlerFunc(h.ClassificationUpdate)))
	mux.Handle("POST /classification/{id}/delete", wrapAdmin(http.HandlerFunc(h.ClassificationDelete)))

	mux.Handle("GET /departments", wrap(http.HandlerFunc(h.Departments)))
	mux.Handle("GET /departments/new", wrapAdmin(http.HandlerFunc(h.DepartmentNew)))
	mux.Handle("GET /departments/{id}/edit", wrapAdmin(http.HandlerFunc(h.DepartmentEdit)))
	mux.Handle("POST /departments", wrapAdmin(http.HandlerFunc(h.DepartmentCreate)))
	mux.Handle("POST /departments/{id}", wrapAdmin(http.HandlerFunc(h.DepartmentUpdate)))
	mux.Handle("POST /departments/{id}/delete", wrapAdmin(http.HandlerFunc(h.DepartmentDelete)))

	mux.Handle("GET /leads", wrap(http.HandlerFunc(h.Leads)))
	mux.Handle("GET /leads/new", wrapAdmin(http.HandlerFunc(h.LeadNew)))
	mux.Handle("GET /leads/{id}/edit", wrapAdmin(http.HandlerFunc(h.LeadEdit)))
	mux.Handle("POST /leads", wrapAdmin(http.HandlerFunc(h.LeadCreate)))
	mux.Handle("POST /leads/{id}", wrapAdmin(http.HandlerFunc(h.LeadUpdate)))
	mux.Handle("POST /leads/{id}/delete", wrapAdmin(http.HandlerFunc(h.LeadDelete)))
}

// registerUIPlanRoutes wires strategic and operational plan pages.
func registerUIPlanRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapUser := cfg.userWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /plans", wrap(http.HandlerFunc(h.Plans)))
	mux.Handle("GET /plans/strategicPlans", wrapAdmin(http.HandlerFunc(h.StrategicPlans)))
	mux.Handle("POST /plans/strategicPlans", wrapAdmin(http.HandlerFunc(h.StrategicPlansSubmit)))
	mux.Handle("GET /plans/operationalPlans", wrap(http.HandlerFunc(h.OperationalPlans)))
	mux.Handle("GET /plans/operationalPlans/{id}", wrap(http.HandlerFunc(h.OperationalPlans)))
	mux.Handle("POST /plans/operationalPlans", wrapUser(http.HandlerFunc(h.OperationalPlansSubmit)))
	mux.Handle("GET /plans/{id}", wrap(http.HandlerFunc(h.PlanView)))
	mux.Handle("GET /plans/export/{id}", wrap(http.HandlerFunc(h.PlanExport)))
	mux.Handle("POST /plans/{id}/delete", wrapAdmin(http.HandlerFunc(h.GoalDelete)))
	mux.Handle("POST /objectives/{id}/delete", wrapUser(http.HandlerFunc(h.ObjectiveDelete)))
}

// registerUIOpportunityRoutes wires opportunity pages.
func registerUIOpportunityRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapUser := cfg.userWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /opportunities", wrap(http.HandlerFunc(h.Opportunities)))
	mux.Handle("GET /opportunities/new", wrap(http.HandlerFunc(h.OpportunityNew)))
	mux.Handle("GET /opportunities/export.pdf", wrap(http.HandlerFunc(h.OpportunitiesExport)))
	mux.Handle("POST /opportunities", wrapUser(http.HandlerFunc(h.OpportunityCreate)))
	mux.Handle("POST /opportunities/{id}/approve", wrapAdmin(http.HandlerFunc(h.OpportunityApprove)))
	mux.Handle("POST /opportunities/{id}/delete", wrapAdmin(http.HandlerFunc(h.OpportunityDelete)))
}

// registerUIMonitoringRoutes wires plan monitoring pages.
func registerUIMonitoringRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /monitoring", wrap(http.HandlerFunc(h.Monitoring)))
	mux.Handle("GET /monitoring/mid-year", wrap(http.HandlerFunc(h.MonitoringMidYear)))
	mux.Handle("GET /monitoring/export.pdf", wrap(http.HandlerFunc(h.MonitoringExport)))
}

// registerUIRiskRoutes wires risk management pages.
func registerUIRiskRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /riskManagement", wrap(http.HandlerFunc(h.RiskManagement)))
	mux.Handle("GET /risks", wrap(http.HandlerFunc(h.Risks)))
	mux.Handle("GET /risks/riskAssessment", wrap(http.HandlerFunc(h.RiskAssessment)))
	mux.Handle("GET /risks/new", wrapAdmin(http.HandlerFunc(h.RatingNew)))
	mux.Handle("POST /risks", wrapAdmin(http.HandlerFunc(h.RatingCreate)))
	mux.Handle("POST /risks/{id}/delete", wrapAdmin(http.HandlerFunc(h.RatingDelete)))
}

// registerUIUserRoutes wires user administration pages (admin-only).
func registerUIUserRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /users", wrapAdmin(http.HandlerFunc(h.Users)))
	mux.Handle("POST /users/{id}/verify", wrapAdmin(http.HandlerFunc(h.UserVerify)))
	mux.Handle("POST /users/{id}/delete", wrapAdmin(http.HandlerFunc(h.UserDelete)))
}
