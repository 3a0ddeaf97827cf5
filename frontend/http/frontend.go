// Package http implements an HTTP frontend that serves samples from
// the registered generators and distributions.
package http

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/distribution"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/entropy"
	"github.com/randforge/randforge/pkg/log"
	"github.com/randforge/randforge/pkg/stop"
)

func init() {
	prometheus.MustRegister(promResponseDurationMilliseconds)
	recordResponseDuration("sample", nil, time.Second)
}

var promResponseDurationMilliseconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "randforge_http_response_duration_milliseconds",
		Help:    "The duration of time it takes to serve a sampling request",
		Buckets: prometheus.ExponentialBuckets(9.375, 2, 10),
	},
	[]string{"action", "error"},
)

// recordResponseDuration records the duration of time to respond to a
// request in milliseconds.
func recordResponseDuration(action string, err error, duration time.Duration) {
	var errString string
	if err != nil {
		errString = err.Error()
	}

	promResponseDurationMilliseconds.
		WithLabelValues(action, errString).
		Observe(float64(duration.Nanoseconds()) / float64(time.Millisecond))
}

// Config represents all of the configurable options for the HTTP
// frontend.
type Config struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxCount     int           `yaml:"max_count"`
}

// Default request limits.
const defaultMaxCount = 4096

// Frontend serves sampling requests over HTTP.
//
// Generators are sequential state machines, so each request constructs
// a fresh instance seeded from the frontend's entropy source; only the
// entropy draw itself is serialized.
type Frontend struct {
	srv *http.Server

	seederM sync.Mutex
	seeder  *entropy.Source

	Config
}

// NewFrontend builds a Frontend with its own entropy source.
func NewFrontend(cfg Config) *Frontend {
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = defaultMaxCount
	}
	return &Frontend{
		seeder: entropy.New(),
		Config: cfg,
	}
}

func (f *Frontend) handler() http.Handler {
	router := httprouter.New()
	router.GET("/generators", f.generatorsRoute)
	router.GET("/sample/:name", f.sampleRoute)
	router.GET("/sample/:name/float", f.sampleFloatRoute)
	return router
}

// ListenAndServe blocks serving requests until Stop is called or the
// listener fails.
func (f *Frontend) ListenAndServe() error {
	log.Info("http frontend listening", log.Fields{"addr": f.Addr})
	f.srv = &http.Server{
		Addr:         f.Addr,
		Handler:      f.handler(),
		ReadTimeout:  f.ReadTimeout,
		WriteTimeout: f.WriteTimeout,
	}

	if err := f.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts down the frontend.
func (f *Frontend) Stop() stop.Result {
	c := make(stop.Channel)
	go func() {
		c.Done(f.srv.Shutdown(context.Background()))
	}()

	return c.Result()
}

// newSampler builds a sampler over a freshly seeded instance of the
// named generator, or over one restored from an explicit seed.
func (f *Frontend) newSampler(name, seedHex string) (*distribution.Sampler, error) {
	size, err := generator.SeedSize(name)
	if err != nil {
		return nil, err
	}

	var seed []byte
	if seedHex != "" {
		seed, err = hex.DecodeString(seedHex)
		if err != nil {
			return nil, bitgen.ArgumentError("http: seed must be hex encoded")
		}
	} else {
		f.seederM.Lock()
		seed = f.seeder.SeedBytes(size)
		f.seederM.Unlock()
	}

	g, err := generator.New(name, seed)
	if err != nil {
		return nil, err
	}
	return distribution.New(g), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		pErr distribution.ParamError
		aErr bitgen.ArgumentError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, generator.ErrDriverDoesNotExist):
		status = http.StatusNotFound
	case errors.As(err, &pErr), errors.As(err, &aErr):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// generatorsRoute lists the registered generator names.
func (f *Frontend) generatorsRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := time.Now()
	writeJSON(w, http.StatusOK, map[string][]string{"generators": generator.Names()})
	recordResponseDuration("generators", nil, time.Since(start))
}

func (f *Frontend) count(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > f.MaxCount {
		return 0, distribution.ParamError("http: count outside [1, " + strconv.Itoa(f.MaxCount) + "]")
	}
	return count, nil
}

// sampleRoute serves uniform integers from the named generator. An
// optional bound query parameter switches to bias-free bounded
// sampling.
func (f *Frontend) sampleRoute(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	start := time.Now()
	err := f.serveSample(w, r, ps.ByName("name"))
	if err != nil {
		writeError(w, err)
	}
	recordResponseDuration("sample", err, time.Since(start))
}

func (f *Frontend) serveSample(w http.ResponseWriter, r *http.Request, name string) error {
	count, err := f.count(r)
	if err != nil {
		return err
	}
	s, err := f.newSampler(name, r.URL.Query().Get("seed"))
	if err != nil {
		return err
	}

	var bound uint64
	if raw := r.URL.Query().Get("bound"); raw != "" {
		bound, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return distribution.ParamError("http: bound must be an unsigned integer")
		}
	}

	values := make([]uint64, count)
	for i := range values {
		if bound != 0 {
			values[i], err = s.Uint64n(bound)
			if err != nil {
				return err
			}
		} else {
			values[i] = s.Uint64()
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"generator": name,
		"values":    values,
	})
	return nil
}

// sampleFloatRoute serves uniform floats in [0, 1) from the named
// generator.
func (f *Frontend) sampleFloatRoute(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	start := time.Now()
	err := f.serveFloats(w, r, ps.ByName("name"))
	if err != nil {
		writeError(w, err)
	}
	recordResponseDuration("sample_float", err, time.Since(start))
}

func (f *Frontend) serveFloats(w http.ResponseWriter, r *http.Request, name string) error {
	count, err := f.count(r)
	if err != nil {
		return err
	}
	s, err := f.newSampler(name, r.URL.Query().Get("seed"))
	if err != nil {
		return err
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = s.Float64()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"generator": name,
		"values":    values,
	})
	return nil
}
