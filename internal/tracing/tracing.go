// Package tracing wraps provider calls in OpenTelemetry spans.
package tracing

import (
	"context"
	"time"

	voxkit "github.com/voxkit/voxkit-go"
	"github.com/voxkit/voxkit-go/utils/ptr"
	"github.com/voxkit/voxkit-go/utils/stream"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/voxkit/voxkit-go")

type modelSpan struct {
	provider  string
	modelID   string
	operation string
	startTime time.Time
	usage     *voxkit.ModelUsage
	// Time to first audio delta, in seconds
	timeToFirstDelta *float64

	span trace.Span
}

// TraceSynthesize wraps a blocking synthesis call in a span.
func TraceSynthesize(
	ctx context.Context,
	provider string,
	modelID string,
	fn func(context.Context) (*voxkit.SpeechResponse, error),
) (*voxkit.SpeechResponse, error) {
	ctx, span := newModelSpan(ctx, provider, modelID, "synthesize")
	defer span.onEnd()

	response, err := fn(ctx)
	if err != nil {
		span.onError(err)
		return nil, err
	}

	if response != nil && response.Usage != nil {
		span.onUsage(response.Usage)
	}

	return response, nil
}

// TraceSynthesizeStream wraps a streaming synthesis call; the span ends when
// the stream drains.
func TraceSynthesizeStream(
	ctx context.Context,
	provider string,
	modelID string,
	fn func(context.Context) (*voxkit.SpeechStream, error),
) (*voxkit.SpeechStream, error) {
	ctx, span := newModelSpan(ctx, provider, modelID, "synthesize_stream")

	innerStream, err := fn(ctx)
	if err != nil {
		span.onError(err)
		span.onEnd()
		return nil, err
	}

	responseCh := make(chan *voxkit.PartialSpeechResponse)
	errCh := make(chan error, 1)

	go func() {
		defer close(responseCh)
		defer close(errCh)
		defer span.onEnd()

		for innerStream.Next() {
			partial := innerStream.Current()
			if partial == nil {
				continue
			}

			span.onStreamPartial(partial)
			responseCh <- partial
		}

		if err := innerStream.Err(); err != nil {
			span.onError(err)
			errCh <- err
		}
	}()

	return stream.New(responseCh, errCh), nil
}

// TraceLyrics wraps a lyrics generation call in a span.
func TraceLyrics(
	ctx context.Context,
	provider string,
	modelID string,
	fn func(context.Context) (*voxkit.LyricsResponse, error),
) (*voxkit.LyricsResponse, error) {
	ctx, span := newModelSpan(ctx, provider, modelID, "generate_lyrics")
	defer span.onEnd()

	response, err := fn(ctx)
	if err != nil {
		span.onError(err)
		return nil, err
	}

	if response != nil && response.Usage != nil {
		span.onUsage(response.Usage)
	}

	return response, nil
}

func newModelSpan(ctx context.Context, provider, modelID, operation string) (context.Context, *modelSpan) {
	spanCtx, otelSpan := tracer.Start(ctx, "voxkit."+operation)

	return spanCtx, &modelSpan{
		provider:  provider,
		modelID:   modelID,
		operation: operation,
		startTime: time.Now(),
		span:      otelSpan,
	}
}

func (s *modelSpan) onStreamPartial(partial *voxkit.PartialSpeechResponse) {
	if partial.Usage != nil {
		s.onUsage(partial.Usage)
	}

	if partial.Delta != nil && s.timeToFirstDelta == nil {
		s.timeToFirstDelta = ptr.To(time.Since(s.startTime).Seconds())
	}
}

func (s *modelSpan) onUsage(usage *voxkit.ModelUsage) {
	if s.usage == nil {
		s.usage = &voxkit.ModelUsage{}
	}
	s.usage.Add(usage)
}

func (s *modelSpan) onError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *modelSpan) onEnd() {
	s.span.SetAttributes(
		// https://opentelemetry.io/docs/specs/semconv/gen-ai/
		attribute.String("gen_ai.operation.name", s.operation),
		attribute.String("gen_ai.provider.name", s.provider),
		attribute.String("gen_ai.request.model", s.modelID),
	)

	if s.usage != nil {
		s.span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", s.usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", s.usage.OutputTokens),
		)
	}

	if s.timeToFirstDelta != nil {
		s.span.SetAttributes(attribute.Float64("gen_ai.server.time_to_first_token", *s.timeToFirstDelta))
	}

	s.span.End()
}
