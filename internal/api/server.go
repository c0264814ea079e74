package api

import (
	"net/http"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/assets"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/config"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/db"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/livedata"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/presets"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/repository"
)

type Server struct {
	config     *config.Config
	db         *db.DB
	presets    *presets.Manager
	assetRepo  *repository.AssetRepository
	assetStore *assets.Store
	reconciler *assets.Reconciler
	live       *livedata.Source
	wsHub      *WSHub
	router     *http.ServeMux
}

func NewServer(cfg *config.Config, database *db.DB, live *livedata.Source) *Server {
	presetRepo := repository.NewPresetRepository(database.DB)
	assetRepo := repository.NewAssetRepository(database.DB)
	assetStore := assets.NewStore(cfg.AssetDir, "/assets", assetRepo)

	s := &Server{
		config:     cfg,
		db:         database,
		presets:    presets.NewManager(presetRepo),
		assetRepo:  assetRepo,
		assetStore: assetStore,
		reconciler: assets.NewReconciler(assetStore),
		live:       live,
		wsHub:      NewWSHub(),
		router:     http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) AssetRepo() *repository.AssetRepository {
	return s.assetRepo
}

func (s *Server) AssetStore() *assets.Store {
	return s.assetStore
}

func (s *Server) WSHub() *WSHub {
	return s.wsHub
}

func (s *Server) setupRoutes() {
	// Latest camera frame and persisted watermark images (no-cache so the
	// frame is always revalidated).
	frameFS := http.StripPrefix("/frames/", http.FileServer(http.Dir(s.config.FrameDir)))
	s.router.Handle("/frames/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")
		frameFS.ServeHTTP(w, r)
	}))
	s.router.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.config.AssetDir))))

	s.router.HandleFunc("GET /health", s.handleHealth)

	// Overlay catalog + rendering
	s.router.HandleFunc("GET /api/v1/overlays/positions", s.handleListPositions)
	s.router.HandleFunc("GET /api/v1/overlays/types", s.handleListTypes)
	s.router.HandleFunc("POST /api/v1/overlays/render", s.handleRenderOverlays)

	// Presets
	s.router.HandleFunc("GET /api/v1/presets", s.handleListPresets)
	s.router.HandleFunc("POST /api/v1/presets", s.handleCreatePreset)
	s.router.HandleFunc("GET /api/v1/presets/{id}", s.handleGetPreset)
	s.router.HandleFunc("PUT /api/v1/presets/{id}", s.handleUpdatePreset)
	s.router.HandleFunc("DELETE /api/v1/presets/{id}", s.handleDeletePreset)
	s.router.HandleFunc("GET /api/v1/presets/{id}/export", s.handleExportPreset)
	s.router.HandleFunc("POST /api/v1/presets/import", s.handleImportPreset)

	// Watermark assets
	s.router.HandleFunc("POST /api/v1/assets", s.handleUploadAsset)
	s.router.HandleFunc("DELETE /api/v1/assets/{id}", s.handleDeleteAsset)

	// Live preview push
	s.router.HandleFunc("GET /api/v1/ws", s.handleWebSocket)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.respondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"status": "ok"}})
}
