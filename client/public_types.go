package client

import (
	"encoding/json"

	"github.com/shopstyle/shopstyle-go/client/internal/cache"
)

// Params are query parameters sent alongside pid. Values should be scalars;
// they are rendered with fmt.Sprint.
type Params map[string]any

// Response is the undecoded JSON body returned by the API. Its shape is owned
// by the upstream service.
type Response = json.RawMessage

// CacheStore persists cached responses. See NewMemoryStore and NewRedisStore.
type CacheStore = cache.Store
