// Command pathviz serves hpath planning over HTTP for demos and debugging:
// POST an ASCII grid with two endpoints, get back the refined path and the
// per-query statistics block. Prometheus counters and a latency histogram
// are exposed on /metrics.
//
// Usage:
//
//	pathviz [-addr :8080] [-map world.grid.zst]
//
// When -map is given, requests may omit "rows" and query the preloaded grid.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/gridio"
	"github.com/katalvlaran/hpath/planner"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathviz_queries_total",
		Help: "Path queries by outcome.",
	}, []string{"status"})

	querySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathviz_query_seconds",
		Help:    "Path query latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// pathRequest is the JSON query surface. Rows use the grid.Parse legend
// ('.' walkable, '#' obstacle, 'S'/'G' markers); omit rows to query the
// preloaded -map grid.
type pathRequest struct {
	Rows          []string `json:"rows"`
	Start         [2]int   `json:"start"`
	Goal          [2]int   `json:"goal"`
	ClusterSize   int      `json:"clusterSize"`
	AllowDiagonal bool     `json:"allowDiagonal"`
	Smoothing     float64  `json:"smoothing"` // 0 disables the pass
}

type server struct {
	defaultGrid *grid.Grid // from -map; nil when not provided
}

func (s *server) handlePath(c *gin.Context) {
	timer := prometheus.NewTimer(querySeconds)
	defer timer.ObserveDuration()

	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		queriesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	g := s.defaultGrid
	if len(req.Rows) > 0 {
		parsed, err := grid.Parse(req.Rows)
		if err != nil {
			queriesTotal.WithLabelValues("bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
		g = parsed
	}
	if g == nil {
		queriesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "no rows in request and no -map preloaded"})

		return
	}

	// Validate tunables here: planner option constructors treat invalid
	// values as programming errors and panic.
	if req.ClusterSize != 0 && req.ClusterSize < 2 {
		queriesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "clusterSize must be at least 2"})

		return
	}
	if req.Smoothing < 0 || req.Smoothing > 1 {
		queriesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "smoothing must be within [0, 1]"})

		return
	}

	var opts []planner.Option
	if req.ClusterSize >= 2 {
		opts = append(opts, planner.WithClusterSize(req.ClusterSize))
	}
	if req.AllowDiagonal {
		opts = append(opts, planner.WithDiagonal())
	}
	if req.Smoothing > 0 {
		opts = append(opts, planner.WithSmoothing(req.Smoothing))
	}

	p, err := planner.New(opts...)
	if err != nil {
		queriesTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	res, err := p.FindPath(g,
		grid.Point{X: req.Start[0], Y: req.Start[1]},
		grid.Point{X: req.Goal[0], Y: req.Goal[1]},
	)
	switch {
	case err == nil:
		queriesTotal.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{
			"found": res.Found,
			"path":  res.Path,
			"cost":  res.Cost,
			"stats": res.Stats,
		})
	case errors.Is(err, planner.ErrNoAbstractPath), errors.Is(err, planner.ErrRefine):
		// Well-formed query, no realizable route.
		queriesTotal.WithLabelValues("no_route").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "stats": res.Stats})
	default:
		queriesTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "stats": res.Stats})
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	mapFile := flag.String("map", "", "optional .grid.zst map to preload")
	flag.Parse()

	srv := &server{}
	if *mapFile != "" {
		g, err := gridio.ReadFile(*mapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pathviz: load map: %v\n", err)
			os.Exit(1)
		}
		srv.defaultGrid = g
		fmt.Printf("pathviz: preloaded %d×%d map from %s\n", g.Width, g.Height, *mapFile)
	}

	r := gin.Default()
	r.POST("/path", srv.handlePath)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "pathviz: %v\n", err)
		os.Exit(1)
	}
}
