package mofassist

import (
	"context"

	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	chatuc "github.com/kailas-cloud/mofassist/internal/usecase/chat"
	forwarduc "github.com/kailas-cloud/mofassist/internal/usecase/forward"
	healthuc "github.com/kailas-cloud/mofassist/internal/usecase/health"
	inverseuc "github.com/kailas-cloud/mofassist/internal/usecase/inverse"
)

// --- forwardUseCase mock ---

type mockForwardUC struct {
	fn func(ctx context.Context, req forwarduc.Request) []advice.Candidate
}

func (m *mockForwardUC) Forward(ctx context.Context, req forwarduc.Request) []advice.Candidate {
	return m.fn(ctx, req)
}

// --- inverseUseCase mock ---

type mockInverseUC struct {
	fn func(ctx context.Context, req inverseuc.Request) []advice.AppSuggestion
}

func (m *mockInverseUC) Inverse(ctx context.Context, req inverseuc.Request) []advice.AppSuggestion {
	return m.fn(ctx, req)
}

// --- chatUseCase mock ---

type mockChatUC struct {
	fn func(ctx context.Context, message string) chatuc.Reply
}

func (m *mockChatUC) Reply(ctx context.Context, message string) chatuc.Reply {
	return m.fn(ctx, message)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
