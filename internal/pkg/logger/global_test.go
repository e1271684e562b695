package logger

import (
	"sync"
	"testing"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSetGlobalLogger(t *testing.T) {
	zapLogger, err := NewZapLogger(models.LoggerConfig{Level: "info"})
	assert.NoError(t, err)

	SetGlobalLogger(zapLogger)
	defer SetGlobalLogger(nil)

	assert.Same(t, zapLogger, GetGlobalLogger())
}

func TestGetGlobalLogger_DefaultInstalledOnce(t *testing.T) {
	SetGlobalLogger(nil)
	defer SetGlobalLogger(nil)

	// Concurrent first readers must all observe the same default instance
	const goroutines = 16
	loggers := make([]*ZapLogger, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	assert.NotNil(t, loggers[0])
	for i := 1; i < goroutines; i++ {
		assert.Same(t, loggers[0], loggers[i])
	}
}
