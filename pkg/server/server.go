package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Action names accepted in Request.Action.
const (
	ActionComplete = "complete"
	ActionSpell    = "spell"
	ActionQuery    = "query"
	ActionCheck    = "check"
	ActionAdd      = "add"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Server handles msgpack IPC for a completer.
type Server struct {
	completer suggest.ICompleter
	config    *config.Config
	decoder   *msgpack.Decoder
	writer    *bufio.Writer
	encoder   *msgpack.Encoder
	logger    *log.Logger
	requests  int
}

// NewServer creates a server reading requests from r and writing
// responses to w.
func NewServer(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
		logger:    logger.New("server"),
	}
}

// Start sends the ready message and serves requests until the input
// stream ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "invalid msgpack request"); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// Requests returns the number of messages read so far.
func (s *Server) Requests() int {
	return s.requests
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionComplete, ActionSpell:
		return s.handleSuggest(req)
	case ActionQuery:
		return s.handleQuery(req)
	case ActionCheck:
		return s.handleCheck(req)
	case ActionAdd:
		return s.handleAdd(req)
	case ActionStats:
		stats := s.completer.Stats()
		stats["requests"] = s.requests
		return s.send(StatsResponse{ID: req.ID, Stats: stats})
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action))
	}
}

// validateQuery lowercases the query and records its capitals. A non-empty
// message means the request must be rejected.
func (s *Server) validateQuery(q string) (string, *utils.CapitalInfo, string) {
	if q == "" {
		return "", nil, "missing 'q' parameter"
	}
	if len(q) > s.config.Server.MaxQuery {
		return "", nil, fmt.Sprintf("query exceeds maximum length of %d characters", s.config.Server.MaxQuery)
	}
	lower, caps := utils.ProcessCapitals(q)
	return lower, caps, ""
}

func (s *Server) limit(requested int) int {
	switch {
	case requested < 1:
		return s.config.Server.DefaultLimit
	case requested > s.config.Server.MaxLimit:
		return s.config.Server.MaxLimit
	}
	return requested
}

func (s *Server) handleSuggest(req Request) error {
	query, caps, msg := s.validateQuery(req.Query)
	if msg != "" {
		return s.sendError(req.ID, msg)
	}

	start := time.Now()
	var result suggest.Result
	if req.Action == ActionSpell {
		result = s.completer.Correct(query, s.limit(req.Limit))
	} else {
		result = s.completer.Complete(query, s.limit(req.Limit))
	}
	elapsed := time.Since(start)

	suggestions := toSuggestions(result.Suggestions, caps, nil)
	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		Status:      result.Status.String(),
		Truncated:   result.Truncated,
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleQuery(req Request) error {
	query, caps, msg := s.validateQuery(req.Query)
	if msg != "" {
		return s.sendError(req.ID, msg)
	}

	start := time.Now()
	completion, correction := s.completer.Query(query, s.limit(req.Limit))
	elapsed := time.Since(start)

	filter := utils.NewSuggestionFilter()
	resp := QueryResponse{
		ID:          req.ID,
		Suggestions: toSuggestions(completion.Suggestions, caps, filter),
		Known:       correction == nil,
		Status:      completion.Status.String(),
	}
	if correction != nil {
		resp.Corrections = toSuggestions(correction.Suggestions, caps, filter)
	}
	resp.Count = len(resp.Suggestions) + len(resp.Corrections)
	resp.TimeTaken = elapsed.Microseconds()
	return s.send(resp)
}

func (s *Server) handleCheck(req Request) error {
	query, _, msg := s.validateQuery(req.Query)
	if msg != "" {
		return s.sendError(req.ID, msg)
	}
	freq := s.completer.Frequency(query)
	return s.send(WordResponse{ID: req.ID, Word: query, Known: freq > 0, Frequency: freq})
}

func (s *Server) handleAdd(req Request) error {
	query, _, msg := s.validateQuery(req.Query)
	if msg != "" {
		return s.sendError(req.ID, msg)
	}
	freq := s.completer.AddWord(query)
	if freq == 0 {
		return s.sendError(req.ID, fmt.Sprintf("'%s' holds no letters", req.Query))
	}
	s.logger.Debugf("Added '%s' (frequency %d)", query, freq)
	return s.send(WordResponse{ID: req.ID, Word: query, Known: true, Frequency: freq})
}

// toSuggestions converts ranked results into wire suggestions, restoring the
// query's capitals. Words rejected by filter are skipped; filter may be nil.
func toSuggestions(in []suggest.Suggestion, caps *utils.CapitalInfo, filter *utils.SuggestionFilter) []Suggestion {
	kept := make([]suggest.Suggestion, 0, len(in))
	for _, sg := range in {
		if filter == nil || filter.ShouldInclude(sg.Word) {
			kept = append(kept, sg)
		}
	}

	ranks := utils.CreateRankList(len(kept))
	out := make([]Suggestion, len(kept))
	for i, sg := range kept {
		out[i] = Suggestion{
			Word:      caps.Apply(sg.Word),
			Rank:      ranks[i],
			Frequency: sg.Frequency,
			Distance:  sg.Distance,
		}
	}
	return out
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string) error {
	s.logger.Debugf("Rejecting request %q: %s", id, message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: 400})
}
