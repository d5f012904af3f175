package api

import (
	"net/http"

	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/decompose"
	"github.com/radix-engine/backend/internal/search"
)

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type RootNotFoundResponse struct {
	Error string `json:"error"`
	ID    string `json:"id"`
}

type WordNotFoundResponse struct {
	Error      string `json:"error"`
	Word       string `json:"word"`
	Suggestion string `json:"suggestion"`
}

type SearchResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []search.FragmentView `json:"results"`
}

type WordSearchResponse struct {
	Query string   `json:"query"`
	Count int      `json:"count"`
	Words []string `json:"words"`
}

type DecompositionResponse struct {
	*decompose.Decomposition
	ASCII string `json:"ascii"`
}

type LookupInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Example   string            `json:"example"`
}

type WordInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	WordCount int               `json:"word_count"`
	Endpoints map[string]string `json:"endpoints"`
	Example   string            `json:"example"`
}

type StatusResponse struct {
	Fragments int                   `json:"fragments"`
	Words     int                   `json:"words"`
	Sources   []corpus.SourceStatus `json:"sources"`
	Uptime    string                `json:"uptime"`
}

const apiVersion = "1.0"

// Handlers

// handleLookup serves fragment lookup by id and fragment search by text
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	params := r.URL.Query()
	lang := s.Engine.Lang(params.Get("lang"))

	if id := params.Get("id"); id != "" {
		if params.Get("related") == "true" {
			result, ok := s.Engine.LookupWithRelated(id, lang)
			if !ok {
				jsonResponse(w, http.StatusNotFound, RootNotFoundResponse{Error: "Root not found", ID: id})
				return
			}
			jsonResponse(w, http.StatusOK, result)
			return
		}

		view, ok := s.Engine.Lookup(id, lang)
		if !ok {
			jsonResponse(w, http.StatusNotFound, RootNotFoundResponse{Error: "Root not found", ID: id})
			return
		}
		jsonResponse(w, http.StatusOK, view)
		return
	}

	if q := params.Get("q"); q != "" {
		results := s.Engine.Search(q, lang)
		jsonResponse(w, http.StatusOK, SearchResponse{
			Query:   q,
			Count:   len(results),
			Results: results,
		})
		return
	}

	jsonResponse(w, http.StatusOK, LookupInfoResponse{
		Name:    "Radix Root Lookup API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"search": "/api/lookup?q={query}&lang={en|ko|vi}",
			"byId":   "/api/lookup?id={root_id}&related=true",
		},
		Example: "/api/lookup?q=bene",
	})
}

// handleWord serves word decomposition and word search
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	params := r.URL.Query()

	if query := params.Get("search"); query != "" {
		words := s.Engine.SearchWords(query)
		jsonResponse(w, http.StatusOK, WordSearchResponse{
			Query: query,
			Count: len(words),
			Words: words,
		})
		return
	}

	if q := params.Get("q"); q != "" {
		dec, ok := s.Engine.Decompose(q, params.Get("lang"))
		if !ok {
			jsonResponse(w, http.StatusNotFound, WordNotFoundResponse{
				Error:      "Word not found in academic vocabulary",
				Word:       q,
				Suggestion: "Try /api/lookup?q=" + q + " to search for roots directly",
			})
			return
		}

		ascii := s.Engine.Render(dec)
		if params.Get("format") == "ascii" {
			textResponse(w, http.StatusOK, ascii)
			return
		}
		jsonResponse(w, http.StatusOK, DecompositionResponse{Decomposition: dec, ASCII: ascii})
		return
	}

	jsonResponse(w, http.StatusOK, WordInfoResponse{
		Name:      "Radix Word Decomposition API",
		Version:   apiVersion,
		WordCount: s.Engine.WordCount(),
		Endpoints: map[string]string{
			"decompose": "/api/word?q={word}&lang={en|ko|vi}",
			"ascii":     "/api/word?q={word}&format=ascii",
			"search":    "/api/word?search={prefix}",
		},
		Example: "/api/word?q=beneficial",
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	status := s.Engine.Status()
	jsonResponse(w, http.StatusOK, StatusResponse{
		Fragments: status.Fragments,
		Words:     status.Words,
		Sources:   status.Sources,
		Uptime:    status.Uptime,
	})
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	if s.Robots == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "max-age=86400")
	textResponse(w, http.StatusOK, s.Robots.Body())
}
