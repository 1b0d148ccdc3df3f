package health

// Service encapsulates health-related checks.
type Service struct {
	CorpusSource     string
	ParserConfigured bool
}

// NewService constructs a new health service.
func NewService(corpusSource string, parserConfigured bool) *Service {
	return &Service{CorpusSource: corpusSource, ParserConfigured: parserConfigured}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	parser := "missing"
	if s.ParserConfigured {
		parser = "configured"
	}
	return map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"corpus": s.CorpusSource,
			"parser": parser,
		},
	}
}
