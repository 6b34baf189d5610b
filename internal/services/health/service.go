package health

// Service reports liveness and which completion backend is wired.
type Service struct {
	provider   string
	model      string
	configured bool
}

// Status is the health payload.
type Status struct {
	OK                   bool   `json:"ok"`
	Provider             string `json:"provider"`
	Model                string `json:"model"`
	CompletionConfigured bool   `json:"completionConfigured"`
}

// NewService constructs a new health service.
func NewService(provider, model string, configured bool) *Service {
	return &Service{provider: provider, model: model, configured: configured}
}

// Status returns the health payload. The process is healthy even without a completion backend.
func (s *Service) Status() Status {
	if s == nil {
		return Status{OK: true}
	}
	return Status{
		OK:                   true,
		Provider:             s.provider,
		Model:                s.model,
		CompletionConfigured: s.configured,
	}
}
