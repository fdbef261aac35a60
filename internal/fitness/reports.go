package fitness

import (
	"context"
	"net/http"
	"net/url"
)

// GetProgress fetches the progress aggregate for an exercise over a date range.
// The report is returned as raw JSON.
func (c *Client) GetProgress(ctx context.Context, exerciseID, start, end string) (ProgressReport, error) {
	values := url.Values{}
	values.Set("exerciseId", exerciseID)
	values.Set("start", start)
	values.Set("end", end)
	var report ProgressReport
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/reports/progress",
		rel:    withQuery(endpoint("reports", "progress"), values),
		dest:   &report,
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
