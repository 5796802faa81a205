package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	_ "lintang/randcoord/docs"
	"lintang/randcoord/pkg/sampler"
	"lintang/randcoord/pkg/server/rest"
	"lintang/randcoord/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	listenAddr = flag.String("listenaddr", "", "server listen address (default $LISTEN_ADDR or :5000)")
	seed       = flag.Uint64("seed", 0, "seed for reproducible coordinates, 0 uses crypto/rand")
)

//	@title			randcoord API
//	@version		1.0
//	@description	random coordinate generator. Distance uniform per luas (spherical cap) atau per jarak, diproyeksikan di WGS84 ellipsoid atau sphere
//
//	@contact.name	lintang birda saputra
//
// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found (using environment variables)")
	}

	addr := *listenAddr
	if addr == "" {
		addr = getEnv("LISTEN_ADDR", ":5000")
	}

	var rng sampler.Source = sampler.NewCryptoRand()
	if *seed != 0 {
		log.Printf("using seeded random source seed=%d", *seed)
		rng = sampler.NewSeededRand(*seed)
	}

	reg := prometheus.NewRegistry()
	r := newRouter(rng, reg)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Printf("server started at %s", addr)
	log.Fatal(srv.ListenAndServe())
}

func newRouter(rng sampler.Source, reg *prometheus.Registry) chi.Router {
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // relative so it follows LISTEN_ADDR
	))

	coordinateSvc := service.NewCoordinateService(rng)
	rest.CoordinateRouter(r, coordinateSvc, m)
	return r
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
