// Package server exposes the text engine and the chat assistant over a JSON
// HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/readaid/internal/assistant"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"github.com/nguyentantai21042004/readaid/internal/observe"
	"github.com/nguyentantai21042004/readaid/internal/request"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

const maxBodyBytes = 1 << 20

// errSuperseded is reported when a newer request for the same field
// arrived while this one was computing.
var errSuperseded = errors.New("superseded by a newer request")

type Server struct {
	engine    textproc.Engine
	assistant *assistant.Assistant
	tracker   *request.Tracker
	metrics   *observe.Metrics
	logger    logger.Logger
	exporter  http.Handler
}

// New creates a Server. metricsHandler is served on /metrics when not nil.
func New(engine textproc.Engine, asst *assistant.Assistant, metrics *observe.Metrics, log logger.Logger, metricsHandler http.Handler) *Server {
	return &Server{
		engine:    engine,
		assistant: asst,
		tracker:   request.NewTracker(),
		metrics:   metrics,
		logger:    log,
		exporter:  metricsHandler,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/segment", s.handleSegment)
	mux.HandleFunc("/api/correct", s.handleCorrect)
	mux.HandleFunc("/api/summarize", s.handleSummarize)
	mux.HandleFunc("/api/transliterate", s.handleTransliterate)
	mux.HandleFunc("/api/process", s.handleProcess)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.exporter != nil {
		mux.Handle("/metrics", s.exporter)
	}
	return observe.Middleware(s.metrics, s.logger)(mux)
}

// --- Handlers ---

// textReq is the common request body. Field names the input the text came
// from; when set, only the newest request for that field gets a result.
type textReq struct {
	Text       string            `json:"text"`
	Field      string            `json:"field,omitempty"`
	Direction  string            `json:"direction,omitempty"`
	Budget     *summarize.Budget `json:"budget,omitempty"`
	Operations []string          `json:"operations,omitempty"`
}

type textResp struct {
	Text string `json:"text"`
}

type sentenceResp struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type segmentResp struct {
	Sentences []sentenceResp `json:"sentences"`
}

type chatReq struct {
	Message string `json:"message"`
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	s.respond(w, r, req.Field, func() any {
		sentences := s.engine.Segment(req.Text)
		resp := segmentResp{Sentences: make([]sentenceResp, len(sentences))}
		for i, st := range sentences {
			resp.Sentences[i] = sentenceResp(st)
		}
		return resp
	})
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	s.respond(w, r, req.Field, func() any {
		return textResp{Text: s.engine.Correct(req.Text)}
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	var budget summarize.Budget
	if req.Budget != nil {
		budget = *req.Budget
	}
	s.respond(w, r, req.Field, func() any {
		return textResp{Text: s.engine.Summarize(req.Text, budget)}
	})
}

func (s *Server) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	dir, err := translit.ParseDirection(req.Direction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respond(w, r, req.Field, func() any {
		return textResp{Text: s.engine.Transliterate(req.Text, dir)}
	})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	ops, err := textproc.ParseOperations(req.Operations)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respond(w, r, req.Field, func() any {
		return textResp{Text: s.engine.Run(req.Text, ops...)}
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, textResp{Text: s.assistant.Greeting()})
	case http.MethodPost:
		var req chatReq
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := textproc.ValidateInput(req.Message); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		reply := s.assistant.Reply(req.Message)
		s.metrics.RecordChatReply(r.Context(), reply.Rule)
		writeJSON(w, reply)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// --- Helpers ---

// decodeText reads a textReq from a POST body and rejects empty text.
func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (textReq, bool) {
	var req textReq
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	if err := textproc.ValidateInput(req.Text); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// respond computes the response and writes it unless a newer request for
// the same field has started in the meantime.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, field string, compute func() any) {
	if field == "" {
		writeJSON(w, compute())
		return
	}

	tok := s.tracker.Begin(field)
	resp := compute()
	if !s.tracker.Release(tok) {
		s.logger.Debug(r.Context(), "Dropping stale response for field %q", field)
		s.metrics.RecordStale(r.Context(), observe.SourceAPI)
		http.Error(w, errSuperseded.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
