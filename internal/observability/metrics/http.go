package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/eucorp/planning/internal/observability/errors"
	"github.com/eucorp/planning/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RequestMetric captures details about a handled HTTP request for metric emission.
type RequestMetric struct {
	Method   string
	Status   int
	Duration time.Duration
}

// EmitRequest emits standardised HTTP request metrics.
func EmitRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	result := ResultSuccess
	if in.Status >= 500 {
		result = ResultError
	}

	tags := map[string]string{
		"method": in.Method,
		"status": strconv.Itoa(in.Status),
		"result": result,
	}

	sink.Count("http.request", 1, tags)

	if in.Duration > 0 {
		sink.Timing("http.duration", in.Duration, CloneTags(tags))
	}
}

// OperationMetric captures details about a service operation for metric emission.
type OperationMetric struct {
	Operation string
	Result    string
	Duration  time.Duration
	Err       error
}

// EmitOperation emits standardised service operation metrics.
func EmitOperation(sink statsd.Sink, in OperationMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"operation": in.Operation,
		"result":    in.Result,
	}

	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("operation", 1, tags)

	if in.Duration > 0 {
		sink.Timing("operation.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
