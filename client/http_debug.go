package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs every outbound request and its response.
//
// It sits beneath the cache, so only real network round trips are logged.
// Dumps include the full URL and therefore the API key; keep it out of
// production. Enable with WithDebugLogging or SHOPSTYLE_DEBUG=true.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqID := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, false); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	start := time.Now()
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Dur("elapsed", time.Since(start)).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", reqID).Int("status_code", resp.StatusCode).Dur("elapsed", time.Since(start)).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether SHOPSTYLE_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("SHOPSTYLE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
