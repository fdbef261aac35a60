package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/five82/liftlog/internal/fitness"
)

// counterValue sums the samples of family name whose labels include want.
func counterValue(g prometheus.Gatherer, name string, want map[string]string) float64 {
	families, err := g.Gather()
	if err != nil {
		return -1
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			matched := true
			for k, v := range want {
				if labels[k] != v {
					matched = false
				}
			}
			if !matched {
				continue
			}
			if c := metric.GetCounter(); c != nil {
				total += c.GetValue()
			}
			if h := metric.GetHistogram(); h != nil {
				total += float64(h.GetSampleCount())
			}
		}
	}
	return total
}

func TestManagerObservesRequests(t *testing.T) {
	convey.Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m, err := New(WithPrometheusRegistry(reg), WithNamespace("test"))
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Successful requests count by status code", func() {
			m.ObserveRequest(fitness.RequestInfo{Method: "GET", Route: "/exercises", StatusCode: 200, Duration: 20 * time.Millisecond})
			m.ObserveRequest(fitness.RequestInfo{Method: "GET", Route: "/exercises", StatusCode: 200, Duration: 30 * time.Millisecond})
			m.ObserveRequest(fitness.RequestInfo{Method: "GET", Route: "/exercises", StatusCode: 503})

			convey.So(counterValue(reg, "test_api_requests_total", map[string]string{"route": "/exercises", "code": "200"}), convey.ShouldEqual, 2)
			convey.So(counterValue(reg, "test_api_requests_total", map[string]string{"code": "503"}), convey.ShouldEqual, 1)
			convey.So(counterValue(reg, "test_api_request_duration_seconds", map[string]string{"route": "/exercises"}), convey.ShouldEqual, 3)
		})

		convey.Convey("Transport failures are counted separately", func() {
			m.ObserveRequest(fitness.RequestInfo{Method: "PATCH", Route: "/sessions/{sessionId}/exercise/{exerciseId}/set", Err: errors.New("dial")})

			convey.So(counterValue(reg, "test_api_transport_errors_total", map[string]string{"method": "PATCH"}), convey.ShouldEqual, 1)
			convey.So(counterValue(reg, "test_api_requests_total", map[string]string{"code": "error"}), convey.ShouldEqual, 1)
		})

		convey.Convey("Registering twice on one registry fails", func() {
			_, err := New(WithPrometheusRegistry(reg), WithNamespace("test"))
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestManagerWriteTextfile(t *testing.T) {
	convey.Convey("WriteTextfile exports the registry", t, func() {
		m, err := New()
		convey.So(err, convey.ShouldBeNil)
		m.ObserveRequest(fitness.RequestInfo{Method: "GET", Route: "/templates", StatusCode: 200})

		path := filepath.Join(t.TempDir(), "liftlog.prom")
		convey.So(m.WriteTextfile(path), convey.ShouldBeNil)

		raw, err := os.ReadFile(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(raw), convey.ShouldContainSubstring, `liftlog_api_requests_total{code="200",method="GET",route="/templates"} 1`)
	})

	convey.Convey("A nil manager ignores observations", t, func() {
		var m *Manager
		convey.So(func() { m.ObserveRequest(fitness.RequestInfo{}) }, convey.ShouldNotPanic)
	})
}
