package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/csviz/csviz-go/pkg/csviz"
	"github.com/csviz/csviz-go/pkg/csviz/models"
	"github.com/csviz/csviz-go/pkg/csviz/output"
)

// validateDatasetName rejects keys that could escape the data directory.
func validateDatasetName(name string) error {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return errors.New("invalid dataset name")
	}
	return nil
}

// handleDatasets lists the files in the data directory, the menu a rendering
// client builds its dropdown from.
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.DataDir)
	if err != nil {
		s.log.Error("dataset listing failed", "error", err)
		s.fail(w, "datasets", http.StatusInternalServerError, "cannot list datasets")
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	s.writeJSON(w, "datasets", names)
}

// handleFigure serves the plotly figure document for one dataset.
func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.loadDataset(w, r, "figure")
	if !ok {
		return
	}
	s.writeJSON(w, "figure", output.ToFigure(spec))
}

// handleSpec serves the raw chart specification for one dataset.
func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.loadDataset(w, r, "spec")
	if !ok {
		return
	}
	s.writeJSON(w, "spec", spec)
}

func (s *Server) loadDataset(w http.ResponseWriter, r *http.Request, handler string) (*models.ChartSpec, bool) {
	name := r.PathValue("name")
	if err := validateDatasetName(name); err != nil {
		s.fail(w, handler, http.StatusBadRequest, err.Error())
		return nil, false
	}

	opts := csviz.Options{Delimiter: s.cfg.Delimiter}
	spec, err := csviz.LoadCached(s.store, name, filepath.Join(s.cfg.DataDir, name), opts)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, csviz.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		s.log.Warn("dataset load failed", "dataset", name, "error", err)
		s.fail(w, handler, status, "no specification for this dataset")
		return nil, false
	}
	return spec, true
}

func (s *Server) writeJSON(w http.ResponseWriter, handler string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.fail(w, handler, http.StatusInternalServerError, "encoding failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	s.requests.WithLabelValues(handler, strconv.Itoa(http.StatusOK)).Inc()
}

func (s *Server) fail(w http.ResponseWriter, handler string, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
	s.requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
}
