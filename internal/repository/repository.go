// Package repository holds the GORM-backed data access for each model.
// Reverse navigation (a user's posts, comments, followers) is a lookup on the
// indexed foreign-key column rather than a stored back-reference.
package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/d60-Lab/social-schema/pkg/dberr"
)

var tracer = otel.Tracer("repository")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// finish 结束 span 并把驱动错误转换为约束错误
func finish(span trace.Span, err error) error {
	defer span.End()
	if err == nil {
		return nil
	}
	err = dberr.Translate(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
