package logging_test

import (
	"context"
	"testing"

	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithIntegration adds integration to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithIntegration(ctx, "payroll", "daxco")
		
		// Extract logger and verify it has the integration field
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithCompany adds company to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithCompany(ctx, 42)
		
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "fetch_employees")
		
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithStage adds stage to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "transform")
		
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]interface{}{
			"user_id": "123",
			"request_id": "abc-def",
		}
		ctx = logging.WithFields(ctx, fields)
		
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns logger from context", func(t *testing.T) {
		ctx := context.Background()
		
		// First call should create a new logger
		logger1 := logging.FromContext(ctx)
		assert.NotNil(t, logger1)
		
		// Add integration and get logger again
		ctx = logging.WithIntegration(ctx, "payroll", "daxco")
		logger2 := logging.FromContext(ctx)
		assert.NotNil(t, logger2)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithCompany(ctx, 7)
		
		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithIntegration(ctx, "payroll", "daxco")
		ctx = logging.WithCompany(ctx, 42)
		ctx = logging.WithOperation(ctx, "validate")
		ctx = logging.WithStage(ctx, "transform")
		
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})
}