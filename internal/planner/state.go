package planner

// StreamState is the text of the current generation and whether it is still streaming.
type StreamState struct {
	AccumulatedText string
	Active          bool
	// Generation identifies the submission that owns this state.
	Generation uint64
}

func (s *StreamState) begin() uint64 {
	s.Generation++
	s.AccumulatedText = ""
	s.Active = true
	return s.Generation
}

// owns reports whether gen may still change the state.
func (s *StreamState) owns(gen uint64) bool {
	return s.Active && s.Generation == gen
}
