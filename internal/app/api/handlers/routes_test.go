package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, rt := range r.Routes() {
		set[rt.Method+" "+rt.Path] = true
	}
	return set
}

func TestRegisterAccessRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAccessRoutes(r.Group("/api/v1"), nil, nil, nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/series/:id/access"])
	require.True(t, routes["GET /api/v1/me"])
	require.True(t, routes["GET /api/v1/me/content-access"])
	require.True(t, routes["POST /api/v1/me/register"])
	require.True(t, routes["POST /api/v1/me/cancel-subscription"])
}

func TestRegisterCatalogAndOrderRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterCatalogRoutes(g, nil)
	RegisterOrderRoutes(g, nil)
	RegisterOrderWebhookRoutes(r.Group("/"), nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/series"])
	require.True(t, routes["GET /api/v1/series/:id"])
	require.True(t, routes["POST /api/v1/orders"])
	require.True(t, routes["GET /api/v1/orders"])
	require.True(t, routes["POST /webhook/paypal/order"])
}

func TestRegisterAdminRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAdminRoutes(r.Group("/api/v1/admin"), nil, nil, nil, nil, nil, nil, nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/users/list"])
	require.True(t, routes["POST /api/v1/admin/users/override_plan"])
	require.True(t, routes["POST /api/v1/admin/series"])
	require.True(t, routes["POST /api/v1/admin/orders/:id/refund"])
	require.True(t, routes["POST /api/v1/admin/newsletter/broadcast"])
	require.True(t, routes["POST /api/v1/admin/livestreams"])
	require.True(t, routes["DELETE /api/v1/admin/livestreams/:id"])
	require.True(t, routes["POST /api/v1/admin/jobs/trial_sweep"])
	require.True(t, routes["POST /api/v1/admin/jobs/paypal_sync"])
	require.True(t, routes["GET /api/v1/admin/jobs/:job/status"])
	require.True(t, routes["GET /api/v1/admin/stats/overview"])
}
