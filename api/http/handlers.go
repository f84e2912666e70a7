/*
 * Copyright (c) 2011 jamra.source@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

// Package http provides HTTP handlers that expose a Lexicon for
// membership, longest-match, and fuzzy lookups over the network.
package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/jamra/lexicon/pkg/lexicon"
)

// Server wraps a Lexicon with HTTP server functionality. The wrapped
// Lexicon is immutable, so a single Server instance is safe for
// concurrent requests with no locking of its own.
type Server struct {
	lex *lexicon.Lexicon[byte]
}

// NewServer creates a new HTTP server over the given Lexicon.
func NewServer(lex *lexicon.Lexicon[byte]) *Server {
	return &Server{lex: lex}
}

func withCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}

func queryParam(r *http.Request) string {
	q := r.URL.Query().Get("q")
	if q == "" {
		q = r.URL.Query().Get("query")
	}
	return q
}

// ContainsHandler answers GET /contains?q=word with {"contains": bool}.
func (s *Server) ContainsHandler(w http.ResponseWriter, r *http.Request) {
	withCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	q := queryParam(r)
	if q == "" {
		http.Error(w, `{"error": "missing query parameter 'q' or 'query'"}`, http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]bool{"contains": s.lex.Contains([]byte(q))})
}

// LookupHandler answers GET /lookup?q=text with the longest member that is
// a prefix of text, if any.
func (s *Server) LookupHandler(w http.ResponseWriter, r *http.Request) {
	withCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	q := queryParam(r)
	if q == "" {
		http.Error(w, `{"error": "missing query parameter 'q' or 'query'"}`, http.StatusBadRequest)
		return
	}
	match, ok := s.lex.Lookup([]byte(q), 0)
	if !ok {
		http.Error(w, `{"error": "no prefix of query matches"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"end": match.End, "word": string(match.Word)})
}

// FuzzyHandler answers GET /fuzzy?q=word&distance=N with every member
// within N edits of word (distance defaults to 2).
func (s *Server) FuzzyHandler(w http.ResponseWriter, r *http.Request) {
	withCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	q := queryParam(r)
	if q == "" {
		http.Error(w, `{"error": "missing query parameter 'q' or 'query'"}`, http.StatusBadRequest)
		return
	}
	maxDistance := 2
	if raw := r.URL.Query().Get("distance"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, `{"error": "distance must be a non-negative integer"}`, http.StatusBadRequest)
			return
		}
		maxDistance = n
	}
	hits := lexicon.FuzzySearch(s.lex, []byte(q), maxDistance)
	writeJSON(w, hits)
}

// StatsHandler reports the Lexicon's word count and automaton state count.
func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	withCORS(w)
	writeJSON(w, map[string]int{"size": s.lex.Size(), "states": s.lex.Length()})
}

func writeJSON(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/contains", s.ContainsHandler)
	mux.HandleFunc("/lookup", s.LookupHandler)
	mux.HandleFunc("/fuzzy", s.FuzzyHandler)
	mux.HandleFunc("/stats", s.StatsHandler)
}

// ListenAndServe starts an HTTP server on the specified port over lex.
func ListenAndServe(port string, lex *lexicon.Lexicon[byte]) error {
	server := NewServer(lex)
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)

	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return fmt.Errorf("invalid port: %s", port)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("lexicon server listening on http://localhost%s", addr)
	log.Printf("contains endpoint: http://localhost%s/contains?q=word", addr)
	log.Printf("lookup endpoint:   http://localhost%s/lookup?q=word", addr)
	log.Printf("fuzzy endpoint:    http://localhost%s/fuzzy?q=word&distance=2", addr)

	return http.ListenAndServe(addr, mux)
}
