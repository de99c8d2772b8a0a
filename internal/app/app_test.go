package app

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-supabase-client/internal/logger"
	"github.com/MKhiriev/go-supabase-client/internal/mock"
	"github.com/MKhiriev/go-supabase-client/internal/supabase"
	"github.com/MKhiriev/go-supabase-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// the real handle must satisfy the interface the diagnostic depends on
var _ ProjectChecker = (*supabase.Client)(nil)

func TestNewApp_NilChecker(t *testing.T) {
	a, err := NewApp(nil, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNilChecker)
}

func TestApp_Run_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	checker := mock.NewMockProjectChecker(ctrl)
	ctx := context.Background()
	checker.EXPECT().URL().Return("https://xyzcompany.supabase.co")
	checker.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		logger.FromContext(ctx).Debug().Msg("checker sees run logger")
		return nil
	})

	a, err := NewApp(checker, models.NewAppBuildInfo("1.2.3", "", ""), log)
	require.NoError(t, err)

	require.NoError(t, a.Run(ctx))
	assert.Contains(t, buf.String(), "supabase project is healthy")
	assert.Contains(t, buf.String(), "https://xyzcompany.supabase.co")
	assert.Contains(t, buf.String(), "1.2.3")
	assert.Contains(t, buf.String(), "checker sees run logger")
}

// TestApp_Run_ContextLoggerCarriesRunFields verifies that the logger handed to
// the checker through ctx carries the url and version fields.
func TestApp_Run_ContextLoggerCarriesRunFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	checker := mock.NewMockProjectChecker(ctrl)
	checker.EXPECT().URL().Return("https://xyzcompany.supabase.co")
	checker.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		buf.Reset()
		logger.FromContext(ctx).Info().Msg("from checker")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "https://xyzcompany.supabase.co", entry["url"])
		assert.Equal(t, "2.0.0", entry["version"])
		assert.Equal(t, "test", entry["role"])
		return nil
	})

	a, err := NewApp(checker, models.NewAppBuildInfo("2.0.0", "", ""), log)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
}

// TestApp_Run_DoesNotMutateParentLogger verifies that the run fields are
// added to a child logger only.
func TestApp_Run_DoesNotMutateParentLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	checker := mock.NewMockProjectChecker(ctrl)
	checker.EXPECT().URL().Return("https://xyzcompany.supabase.co")
	checker.EXPECT().Health(gomock.Any()).Return(nil)

	a, err := NewApp(checker, models.NewAppBuildInfo("", "", ""), log)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	buf.Reset()
	log.Info().Msg("after run")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasURL := entry["url"]
	assert.False(t, hasURL)
}

func TestApp_Run_Unhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock.NewMockProjectChecker(ctrl)
	checker.EXPECT().URL().Return("https://xyzcompany.supabase.co")
	checker.EXPECT().Health(gomock.Any()).Return(supabase.ErrUnauthorized)

	a, err := NewApp(checker, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjectUnhealthy)
	assert.ErrorIs(t, err, supabase.ErrUnauthorized)
}
