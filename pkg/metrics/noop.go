package metrics

// Noop satisfies the metric interfaces consumers declare, for setups with
// metrics disabled.
type Noop struct{}

func (Noop) ObserveHTTPRequest(method, path, status string, seconds float64) {}
func (Noop) IncCacheHit(kind string)                                         {}
func (Noop) IncCacheMiss(kind string)                                        {}
func (Noop) IncIntegrationRequest(target, outcome string)                    {}
