package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/jobtracker/internal/config"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

func TestNewPostgresDBRequiresConnectionString(t *testing.T) {
	for _, url := range []string{"", "   "} {
		cfg := &config.Config{}
		cfg.Database.URL = url

		database, err := NewPostgresDB(cfg)
		assert.Nil(t, database)
		assert.ErrorIs(t, err, apperrors.ErrMissingDatabaseURL)
	}
}
