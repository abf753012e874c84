package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/mocks"
)

func newTestService(gen core.TextGenerator) *Service {
	return NewService(gen, slog.New(slog.DiscardHandler))
}

func TestService_GenerateThreeReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockTextGenerator(ctrl)

	replies := []string{
		"The pasta was creamy and rich.",
		"The pasta was overcooked.",
		"The pasta was the best in town.",
	}
	cfg := core.GenerationConfig{MaxLength: 50}
	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), "The pasta was", cfg).Return(replies[0], nil),
		gen.EXPECT().Generate(gomock.Any(), "The pasta was", cfg).Return(replies[1], nil),
		gen.EXPECT().Generate(gomock.Any(), "The pasta was", cfg).Return(replies[2], nil),
	)

	set, err := newTestService(gen).Generate(context.Background(), core.UserRequest{Snippet: "The pasta was", MaxLength: 50})
	require.NoError(t, err)

	want := []core.GeneratedReview{
		{Ordinal: 1, Text: replies[0]},
		{Ordinal: 2, Text: replies[1]},
		{Ordinal: 3, Text: replies[2]},
	}
	if diff := cmp.Diff(want, set.Reviews); diff != "" {
		t.Errorf("reviews mismatch (-want +got):\n%s", diff)
	}
	for _, r := range set.Reviews {
		assert.True(t, strings.HasPrefix(r.Text, "The pasta was"))
	}
	assert.Equal(t, 50, set.Request.MaxLength)
}

func TestService_IdenticalOutputsAreAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockTextGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("Great food.", nil).Times(core.ReviewsPerRequest)

	set, err := newTestService(gen).Generate(context.Background(), core.UserRequest{Snippet: "Great", MaxLength: 5})
	require.NoError(t, err)
	assert.Len(t, set.Reviews, core.ReviewsPerRequest)
}

func TestService_ValidationSkipsGeneration(t *testing.T) {
	for _, req := range []core.UserRequest{
		{Snippet: "", MaxLength: 10},
		{Snippet: "The pasta was", MaxLength: 0},
		{Snippet: "The pasta was", MaxLength: 301},
	} {
		t.Run(fmt.Sprintf("%q/%d", req.Snippet, req.MaxLength), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockTextGenerator(ctrl) // no calls expected

			set, err := newTestService(gen).Generate(context.Background(), req)
			assert.Nil(t, set)
			assert.True(t, errors.Is(err, core.ErrValidation))
		})
	}
}

func TestService_GenerationFailureAbortsSet(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reply  string
		wantIs []error
	}{
		{
			name:   "Generation error is passed through",
			err:    fmt.Errorf("%w: model offline", core.ErrGeneration),
			wantIs: []error{core.ErrGeneration},
		},
		{
			name:   "Unclassified error becomes a generation error",
			err:    errors.New("boom"),
			wantIs: []error{core.ErrGeneration},
		},
		{
			name:   "Validation error from the pipeline is kept",
			err:    &core.ValidationError{Field: "snippet", Reason: "too long"},
			wantIs: []error{core.ErrValidation},
		},
		{
			name:   "Empty review",
			reply:  "",
			wantIs: []error{core.ErrGeneration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockTextGenerator(ctrl)
			gomock.InOrder(
				gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("The pasta was fine.", nil),
				gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.reply, tt.err),
			)

			set, err := newTestService(gen).Generate(context.Background(), core.UserRequest{Snippet: "The pasta was", MaxLength: 20})
			assert.Nil(t, set)
			for _, target := range tt.wantIs {
				assert.True(t, errors.Is(err, target), "expected %v in %v", target, err)
			}
		})
	}
}
