package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Setup("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Setup("barulhento"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestRelevantInDevelopment(t *testing.T) {
	assert.True(t, relevantInDevelopment(correlationIDField))
	assert.True(t, relevantInDevelopment("user_id"))
	assert.False(t, relevantInDevelopment("remote_addr"))
}

func TestForContext_AttachesCorrelationID(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	SetupTestLogger()

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("revenue-daily: calculando receita diária")

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, id, entry.Data[correlationIDField])
	}
}
