// Command mock-jira is a tiny JIRA REST API stand-in for exercising the
// client library without a real server. It serves issue, search, project and
// serverInfo routes from JSON fixture files.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gi8lino/gojira/internal/logging"

	"github.com/containeroo/tinyflags"
	"gopkg.in/yaml.v3"
)

// Config is the mock server configuration root.
type Config struct {
	Port        int    `yaml:"port"`
	DataDir     string `yaml:"dataDir"`
	RandomDelay bool   `yaml:"randomDelay"`
	APIVersion  string `yaml:"apiVersion"` // REST API version segment, default "2"
}

// main starts the mock server.
func main() {
	var (
		flagConfigPath string
		flagDebug      bool
	)

	tf := tinyflags.NewFlagSet("mock-jira", tinyflags.ExitOnError)
	tf.StringVar(&flagConfigPath, "config", "", "Path to mock-jira config.yaml (required)").Value()
	tf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	logFormat := tf.String("log-format", "text", "Log format").Choices("text", "json").Value()

	if err := tf.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "flag parse error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.SetupLogger(logging.LogFormat(*logFormat), flagDebug, os.Stderr)

	if strings.TrimSpace(flagConfigPath) == "" {
		logger.Error("missing required --config=<path to yaml>")
		os.Exit(1)
	}

	cfg, err := loadConfig(flagConfigPath)
	if err != nil {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}

	// absolute stays absolute
	if !filepath.IsAbs(cfg.DataDir) {
		base := filepath.Dir(flagConfigPath)
		cfg.DataDir, _ = filepath.Abs(filepath.Join(base, cfg.DataDir))
	}

	srv := &mockJira{cfg: cfg, logger: logger}
	prefix := "/rest/api/" + cfg.APIVersion + "/"

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+prefix+"issue/{key}", srv.wrap(srv.handleIssue))
	mux.HandleFunc("GET "+prefix+"search", srv.wrap(srv.handleSearch))
	mux.HandleFunc("GET "+prefix+"project", srv.wrap(srv.handleProjects))
	mux.HandleFunc("GET "+prefix+"serverInfo", srv.wrap(srv.handleServerInfo))

	addr := ":" + strconv.Itoa(cfg.Port)
	logger.Info("mock JIRA listening", "addr", addr, "dataDir", cfg.DataDir)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the YAML configuration file.
func loadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}

	// Basic defaults.
	if cfg.Port == 0 {
		cfg.Port = 8081
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = "./data"
	}
	if strings.TrimSpace(cfg.APIVersion) == "" {
		cfg.APIVersion = "2"
	}

	return cfg, nil
}

// mockJira serves fixture-backed JIRA responses.
type mockJira struct {
	cfg    Config
	logger *slog.Logger
}

// wrap adds request logging and the optional random delay to a handler.
func (m *mockJira) wrap(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.cfg.RandomDelay {
			applyRandomDelay(200, 1000)
		}
		m.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"auth", redactAuth(r.Header.Get("Authorization")),
		)
		h(w, r)
	}
}

// handleIssue serves dataDir/issues/<KEY>.json.
func (m *mockJira) handleIssue(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	raw, err := os.ReadFile(filepath.Join(m.cfg.DataDir, "issues", key+".json"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Issue Does Not Exist")
		return
	}
	writeJSON(w, http.StatusOK, raw)
}

// handleSearch paginates the issues of dataDir/search.json with
// startAt/maxResults/total counters. The jql parameter is required but not
// interpreted: the fixture decides what "matches".
func (m *mockJira) handleSearch(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(r.URL.Query().Get("jql")) == "" {
		writeError(w, http.StatusBadRequest, "The jql query parameter is required")
		return
	}

	raw, err := os.ReadFile(filepath.Join(m.cfg.DataDir, "search.json"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "missing search fixture: "+err.Error())
		return
	}

	var payload struct {
		Issues []json.RawMessage `json:"issues"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		writeError(w, http.StatusInternalServerError, "invalid search fixture: "+err.Error())
		return
	}

	start := queryInt(r, "startAt", 0)
	limit := queryInt(r, "maxResults", 50)
	total := len(payload.Issues)

	// Clamp the window.
	if start > total {
		start = total
	}
	if limit <= 0 {
		limit = 1
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := payload.Issues[start:end]
	if page == nil {
		page = []json.RawMessage{}
	}
	out, _ := json.Marshal(map[string]any{
		"startAt":    start,
		"maxResults": limit,
		"total":      total,
		"issues":     page,
	})
	writeJSON(w, http.StatusOK, out)
}

// handleProjects serves dataDir/projects.json as-is.
func (m *mockJira) handleProjects(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(filepath.Join(m.cfg.DataDir, "projects.json"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "missing projects fixture: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, raw)
}

// handleServerInfo synthesizes a minimal serverInfo payload.
func (m *mockJira) handleServerInfo(w http.ResponseWriter, r *http.Request) {
	out, _ := json.Marshal(map[string]any{
		"baseUrl":        "http://localhost:" + strconv.Itoa(m.cfg.Port),
		"version":        "9.0.0-mock",
		"serverTitle":    "mock-jira",
		"buildNumber":    0,
		"serverTime":     time.Now().Format("2006-01-02T15:04:05.000-0700"),
		"deploymentType": "Server",
	})
	writeJSON(w, http.StatusOK, out)
}

// writeError writes a JIRA-style error payload.
func writeError(w http.ResponseWriter, status int, msg string) {
	out, _ := json.Marshal(map[string]any{
		"errorMessages": []string{msg},
		"errors":        map[string]string{},
	})
	writeJSON(w, status, out)
}

// writeJSON writes a JSON response with status and bytes.
func writeJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// queryInt reads a non-negative int query parameter with a default.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// redactAuth hides the credential part of an Authorization header.
func redactAuth(auth string) string {
	if auth == "" {
		return ""
	}
	scheme, _, _ := strings.Cut(auth, " ")
	return scheme + " <redacted>"
}

// applyRandomDelay sleeps for a random duration between minMs and maxMs.
func applyRandomDelay(minMs, maxMs int) {
	if maxMs <= minMs {
		maxMs = minMs + 1
	}
	delta := rand.Intn(maxMs-minMs) + minMs
	time.Sleep(time.Duration(delta) * time.Millisecond)
}
