package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "ping", func() error {
		calls++
		return errors.New("down")
	}, fastConfig())

	assert.EqualError(t, err, "down")
	assert.Equal(t, 4, calls)
}
