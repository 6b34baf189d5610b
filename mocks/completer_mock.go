package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vitae-backend/internal/llm"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, env llm.Envelope) (string, error) {
	args := m.Called(ctx, env)
	return args.String(0), args.Error(1)
}
