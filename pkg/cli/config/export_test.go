package config

import "net/http"

func (x *GitHub) TransportForTest() (http.RoundTripper, error) {
	return x.transport()
}
