package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/extract"
	"github.com/fastapply/fastapply/internal/jobs"
)

// maxUploadSize bounds resume uploads.
const maxUploadSize = 10 << 20

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract accepts a multipart resume upload and responds with the
// extracted profile.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload failed")
		return
	}

	text, err := extract.Text(extract.Document{Name: header.Filename, Data: data})
	if err != nil {
		var parseErr *extract.ParseError
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &parseErr):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.logger.Error("text extraction failed", zap.String("file", header.Filename), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "extraction failed")
		}
		return
	}

	result := s.profiles.Extract(text)
	s.logger.Info("extracted profile",
		zap.String("file", header.Filename),
		zap.Int("skills", len(result.Skills)),
	)

	writeJSON(w, http.StatusOK, result)
}

// handleSearch runs one job search. The aggregator never fails; malformed
// input is the only rejection.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req jobs.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}

	result := s.aggregator.Search(r.Context(), &req)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload) //nolint:errcheck // response is already committed
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
