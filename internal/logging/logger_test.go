package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given a logger writing to a buffer at info level", t, func() {
		var buf bytes.Buffer
		logger, err := New(&buf, "info")
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Debug messages are filtered", func() {
			logger.Debug(context.Background(), "hidden")
			convey.So(buf.String(), convey.ShouldBeEmpty)
		})

		convey.Convey("Info messages carry fields and the caller", func() {
			logger.Info(context.Background(), "request done",
				String("method", "GET"), Int("status", 200), Err(errors.New("boom")))
			out := buf.String()
			convey.So(out, convey.ShouldContainSubstring, "msg=\"request done\"")
			convey.So(out, convey.ShouldContainSubstring, "method=GET")
			convey.So(out, convey.ShouldContainSubstring, "status=200")
			convey.So(out, convey.ShouldContainSubstring, "error=boom")
			convey.So(out, convey.ShouldContainSubstring, "source=logging/logger_test.go:")
		})

		convey.Convey("Named loggers tag the component", func() {
			logger.Named("fitness").Warn(context.Background(), "slow")
			convey.So(buf.String(), convey.ShouldContainSubstring, "component=fitness")
		})

		convey.Convey("A nil context is tolerated", func() {
			logger.Error(nil, "no ctx")
			convey.So(buf.String(), convey.ShouldContainSubstring, "no ctx")
		})
	})
}

func TestParseLevel(t *testing.T) {
	convey.Convey("ParseLevel accepts known names case-insensitively", t, func() {
		for _, name := range []string{"debug", "INFO", "", "warn", "Warning", "error"} {
			_, err := ParseLevel(name)
			convey.So(err, convey.ShouldBeNil)
		}
	})

	convey.Convey("ParseLevel rejects unknown names", t, func() {
		_, err := ParseLevel("loud")
		convey.So(err, convey.ShouldNotBeNil)
		_, err = New(&bytes.Buffer{}, "loud")
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Error(context.Background(), "dropped")
	if logger.Named("x") == nil {
		t.Fatalf("Named on Nop returned nil")
	}
}
