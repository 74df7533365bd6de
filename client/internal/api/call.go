package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	sserrors "github.com/shopstyle/shopstyle-go/client/internal/errors"
)

// errorBodyLimit caps how much of a failed response is read.
const errorBodyLimit = 4 << 10

// Call performs a GET against uri and returns the decoded JSON body.
//
// Transport errors are returned unchanged. Non-2xx answers become
// *errors.StatusError. An empty 2xx body yields a nil message.
func Call(ctx context.Context, httpClient HTTPClient, uri string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, sserrors.NewStatusError(http.MethodGet, uri, resp.StatusCode, body)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}
