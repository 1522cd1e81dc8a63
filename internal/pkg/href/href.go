// Package href builds the absolute resource links attached to API rows.
package href

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

type Origin struct {
	Scheme string
	Host   string
	Port   string
}

// Format returns "<scheme>://<host>:<port>/api/<resource>/<id>".
func Format(o Origin, resource string, id int64) string {
	return o.Scheme + "://" + o.Host + ":" + o.Port + "/api/" + resource + "/" + strconv.FormatInt(id, 10)
}

// FromRequest derives the origin of an inbound request. The port is the local
// port the connection was accepted on; fallbackPort is used when the server
// did not record it (e.g. requests built in tests).
func FromRequest(r *http.Request, fallbackPort string) Origin {
	o := Origin{Scheme: "http", Port: fallbackPort}
	if r.TLS != nil {
		o.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		o.Scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}

	host := r.Host
	if h, p, err := net.SplitHostPort(host); err == nil {
		host = h
		if o.Port == "" {
			o.Port = p
		}
	}
	o.Host = host

	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		if _, p, err := net.SplitHostPort(addr.String()); err == nil {
			o.Port = p
		}
	}
	return o
}
