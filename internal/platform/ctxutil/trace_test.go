package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceDataRoundTrip(t *testing.T) {
	assert.Nil(t, GetTraceData(context.Background()))
	assert.Nil(t, LogFields(context.Background()))

	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t1", RequestID: "r1"})
	assert.Equal(t, "t1", GetTraceData(ctx).TraceID)
	assert.Equal(t, []interface{}{"trace_id", "t1", "request_id", "r1"}, LogFields(ctx))

	ctx = WithTraceData(context.Background(), &TraceData{RequestID: "r2"})
	assert.Equal(t, []interface{}{"request_id", "r2"}, LogFields(ctx))
}
