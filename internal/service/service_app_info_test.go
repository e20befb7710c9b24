package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("2.5.1", "", ""), logger.Nop())

	require.NotNil(t, svc)
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-10-01", "abc123"), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_EmptyVersion_NotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1 := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	svc2 := NewAppInfoService(models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsAllFields(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-16", "deadbeef")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, info, got)
	assert.Equal(t, "2026-10-16", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}
