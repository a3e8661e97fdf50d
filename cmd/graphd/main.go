// Serves curve samples of a formula and its derivative for a graphing
// front end. The service is JSON only; drawing happens client side.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/derivelab/derive/encode"
	"github.com/derivelab/derive/eval"
	"github.com/derivelab/derive/namespace"
	"github.com/derivelab/derive/parse"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-yaml"
)

// flags
var (
	port       = flag.String("port", "", "HTTP service address (e.g., ':8000'); overrides the config file's addr")
	configPath = flag.String("config", "", "Optional YAML config file.")
)

type Config struct {
	Addr    string  `yaml:"addr"`
	Samples int     `yaml:"samples"`
	MinY    float64 `yaml:"min_y"`
	MaxY    float64 `yaml:"max_y"`
}

func defaultConfig() *Config {
	return &Config{
		Addr:    ":8000",
		Samples: 500,
		MinY:    -1000,
		MaxY:    1000,
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("bad config %s: %w", path, err)
	}
	return cfg, nil
}

type server struct {
	cfg *Config
}

type curveResponse struct {
	Formula    string `json:"formula"`
	Derivative string `json:"derivative"`

	Segments           [][]eval.Point `json:"segments"`
	DerivativeSegments [][]eval.Point `json:"derivative_segments"`
}

func (s *server) curveHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src := q.Get("formula")
	varName := q.Get("var")
	if src == "" || varName == "" {
		http.Error(w, "formula and var are required", http.StatusBadRequest)
		return
	}
	min, max, samples, err := s.window(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := parse.Parse([]byte(src))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ns := namespace.New()
	ie := ns.Intern(e).Reduce()
	vid := ns.ID(varName)
	d := ie.Derivative(vid).Simplify()

	xs := eval.Linspace(min, max, samples)
	ys, err := eval.Evaluate(ie, vid, xs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	dys, err := eval.Evaluate(d, vid, xs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	formula, err := ns.Resolve(ie)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	derivative, err := ns.Resolve(d)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	res := &curveResponse{
		Formula:            encode.MustString(formula),
		Derivative:         encode.MustString(derivative),
		Segments:           eval.Segments(xs, ys, s.cfg.MinY, s.cfg.MaxY),
		DerivativeSegments: eval.Segments(xs, dys, s.cfg.MinY, s.cfg.MaxY),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (s *server) window(q map[string][]string) (min, max float64, samples int, err error) {
	get := func(key string) string {
		vs := q[key]
		if len(vs) == 0 {
			return ""
		}
		return vs[0]
	}
	min, max, samples = -10, 10, s.cfg.Samples
	if v := get("min"); v != "" {
		if min, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, 0, fmt.Errorf("bad min %q", v)
		}
	}
	if v := get("max"); v != "" {
		if max, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, 0, fmt.Errorf("bad max %q", v)
		}
	}
	if v := get("samples"); v != "" {
		if samples, err = strconv.Atoi(v); err != nil || samples <= 0 {
			return 0, 0, 0, fmt.Errorf("bad samples %q", v)
		}
		if samples > 100000 {
			return 0, 0, 0, fmt.Errorf("samples %d too large", samples)
		}
	}
	if max <= min {
		return 0, 0, 0, fmt.Errorf("empty window [%g, %g]", min, max)
	}
	return min, max, samples, nil
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/curve", s.curveHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// resolveConfig loads the config file and applies the address flag on top.
// An unset flag leaves the file's addr (or the default) in place.
func resolveConfig(configPath, addr string) (*Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	return cfg, nil
}

func main() {
	flag.Parse()
	cfg, err := resolveConfig(*configPath, *port)
	if err != nil {
		log.Fatal(err)
	}
	s := &server{cfg: cfg}

	log.Printf("Ready to serve on %s.", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s.routes()))
}
