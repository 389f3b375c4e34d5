package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
	"github.com/pkordes/paid-parking/backend/spec"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the process is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetReady handles GET /readyz. It pings the database and answers 503 when
// the ping fails, so a load balancer stops routing to this instance.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.db.Ping(pingCtx); err != nil {
			s.log.WarnContext(ctx, "readiness check failed", "error", err)
			return gen.GetReady503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return gen.GetReady200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(ctx context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(spec.OpenAPI),
		ContentLength: int64(len(spec.OpenAPI)),
	}, nil
}
