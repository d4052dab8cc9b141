package requestid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient/pkg/requestid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	id := requestid.New()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, requestid.New())
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("keeps existing id", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "abc")
		got, id := requestid.Ensure(ctx)
		assert.Equal(t, "abc", id)
		assert.Equal(t, ctx, got)
	})

	t.Run("generates missing id", func(t *testing.T) {
		ctx, id := requestid.Ensure(context.Background())
		assert.NotEmpty(t, id)
		assert.Equal(t, id, requestid.FromContext(ctx))
	})
}

func TestFromContext_Nil(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "req-42"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-42", attr.Value.String())
}
